package guard_test

import (
	"errors"
	"testing"

	"backoffice/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// by command value objects to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type restockRequest struct {
		productID string
		delta     int
		guard     guard.ConstructorGuard
	}

	var errRestockNotConstructed = errors.New("restockRequest must be created via newRestockRequest")

	newRestockRequest := func(productID string, delta int) (restockRequest, error) {
		if productID == "" {
			return restockRequest{}, errors.New("product ID is required")
		}
		if delta <= 0 {
			return restockRequest{}, errors.New("delta must be positive")
		}
		return restockRequest{
			productID: productID,
			delta:     delta,
			guard:     guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		req, err := newRestockRequest("SKU-1", 5)

		require.NoError(t, err)
		require.NoError(t, req.guard.Validate(errRestockNotConstructed))
		assert.Equal(t, "SKU-1", req.productID)
		assert.Equal(t, 5, req.delta)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		var req restockRequest // zero value

		err := req.guard.Validate(errRestockNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errRestockNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newRestockRequest("", 5)
		require.Error(t, err)

		_, err = newRestockRequest("SKU-1", 0)
		require.Error(t, err)
	})
}
