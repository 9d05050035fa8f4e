package redis

import (
	"backoffice/internal/core/domain/model/cart"
	"backoffice/internal/core/domain/model/kernel"
)

// cartDTO is the JSON shape of a cart as stored in Redis.
type cartDTO struct {
	CustomerID string        `json:"customer_id"`
	Items      []cartItemDTO `json:"items"`
}

type cartItemDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func fromDomain(c cart.Cart) cartDTO {
	items := make([]cartItemDTO, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, cartItemDTO{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
		})
	}

	return cartDTO{
		CustomerID: c.CustomerID.String(),
		Items:      items,
	}
}

func toDomain(dto cartDTO) (cart.Cart, error) {
	customerID, err := kernel.UUIDFromString(dto.CustomerID)
	if err != nil {
		return cart.Cart{}, err
	}

	c, err := cart.NewCart(customerID)
	if err != nil {
		return cart.Cart{}, err
	}

	for _, item := range dto.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return cart.Cart{}, itemErr
		}
		if itemErr = c.AddItem(productID, item.Quantity); itemErr != nil {
			return cart.Cart{}, itemErr
		}
	}

	return c, nil
}
