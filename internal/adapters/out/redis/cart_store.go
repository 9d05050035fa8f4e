// Package redis implements the session cart store on Redis.
// Carts are stored as JSON under a per-customer key with a TTL, so an
// abandoned cart disappears without any cleanup job.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/cart"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// CartStore keeps session carts in Redis with a sliding TTL.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartStore connects to Redis and verifies the connection.
func NewCartStore(addr string, ttl time.Duration) (*CartStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &CartStore{
		client: client,
		ttl:    ttl,
	}, nil
}

// Get retrieves the cart for the given customer.
// A missing or expired key comes back as an empty cart, not an error.
func (s *CartStore) Get(ctx context.Context, customerID kernel.UUID) (cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return cart.Cart{}, err
	}

	val, err := s.client.Get(ctx, cartKey(customerID)).Result()
	if errors.Is(err, redis.Nil) {
		return cart.NewCart(customerID)
	}
	if err != nil {
		return cart.Cart{}, errs.NewPersistenceError("get cart", err)
	}

	var dto cartDTO
	if err = json.Unmarshal([]byte(val), &dto); err != nil {
		return cart.Cart{}, errs.NewPersistenceError("decode cart", err)
	}

	return toDomain(dto)
}

// Save stores the cart and resets its TTL.
func (s *CartStore) Save(ctx context.Context, c cart.Cart) error {
	if err := c.CustomerID.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(fromDomain(c))
	if err != nil {
		return errs.NewPersistenceError("encode cart", err)
	}

	if err = s.client.Set(ctx, cartKey(c.CustomerID), data, s.ttl).Err(); err != nil {
		return errs.NewPersistenceError("save cart", err)
	}

	return nil
}

// Delete removes the cart for the given customer.
func (s *CartStore) Delete(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	if err := s.client.Del(ctx, cartKey(customerID)).Err(); err != nil {
		return errs.NewPersistenceError("delete cart", err)
	}

	return nil
}

// Close closes the Redis connection.
func (s *CartStore) Close() error {
	return s.client.Close()
}

func cartKey(customerID kernel.UUID) string {
	return "cart:" + customerID.String()
}
