package order_test

import (
	"testing"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClient() order.Client {
	return order.Client{
		Name:    "Jordan Miles",
		Contact: "+1 555 0101",
		City:    "Austin",
		Address: "12 Main St",
	}
}

func validProducts() []order.LineItem {
	return []order.LineItem{
		{Name: "Keyboard", Price: 49.99, Quantity: 2},
		{Name: "Mouse", Price: 19.99, Quantity: 1},
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		id := kernel.NewObjectID()

		o, err := order.NewOrder(id, validClient(), order.CashOnDelivery, validProducts())

		require.NoError(t, err)
		require.NotNil(t, o)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, validClient(), o.Client())
		assert.Equal(t, order.CashOnDelivery, o.PaymentMethod())
		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.Products(), 2)
		assert.InDelta(t, 119.97, o.TotalPrice(), 0.0001)
		assert.WithinDuration(t, time.Now(), o.CreatedAt(), time.Second)
		require.NoError(t, o.Validate())
	})

	t.Run("should reject zero value identifier", func(t *testing.T) {
		o, err := order.NewOrder(kernel.ObjectID{}, validClient(), order.Online, validProducts())

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject invalid payment method", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewObjectID(), validClient(), order.PaymentMethodUnknown, validProducts())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "paymentMethod")
	})

	t.Run("should reject empty product collection", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewObjectID(), validClient(), order.Online, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "products")
	})

	t.Run("should collect all construction failures together", func(t *testing.T) {
		o, err := order.NewOrder(kernel.ObjectID{}, validClient(), order.PaymentMethodUnknown, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "ObjectID")
		assert.Contains(t, err.Error(), "paymentMethod")
		assert.Contains(t, err.Error(), "products")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with any valid status", func(t *testing.T) {
		statuses := []order.Status{
			order.Pending,
			order.Confirmed,
			order.Packed,
			order.Shipped,
			order.OutForDelivery,
			order.Delivered,
		}

		for _, status := range statuses {
			t.Run("status "+status.String(), func(t *testing.T) {
				createdAt := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)

				o, err := order.RestoreOrder(
					kernel.NewObjectID(), validClient(), order.Online, validProducts(),
					status, 119.97, createdAt,
				)

				require.NoError(t, err)
				assert.Equal(t, status, o.Status())
				assert.Equal(t, createdAt, o.CreatedAt())
			})
		}
	})

	t.Run("should preserve stored total exactly as persisted", func(t *testing.T) {
		// A stored total may legitimately disagree with the raw item sum down
		// at floating point precision; restoration must not recompute it.
		o, err := order.RestoreOrder(
			kernel.NewObjectID(), validClient(), order.Online, validProducts(),
			order.Confirmed, 119.9700000001, time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, 119.9700000001, o.TotalPrice())
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewObjectID(), validClient(), order.Online, validProducts(),
			order.Unknown, 0, time.Now(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject order not created via constructor", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare orders by identifier", func(t *testing.T) {
		id := kernel.NewObjectID()
		first, err := order.NewOrder(id, validClient(), order.Online, validProducts())
		require.NoError(t, err)
		second, err := order.RestoreOrder(id, order.Client{Name: "Other"},
			order.CashOnDelivery, validProducts(), order.Delivered, 1, time.Now())
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
	})

	t.Run("should report orders with different identifiers as not equal", func(t *testing.T) {
		first, err := order.NewOrder(kernel.NewObjectID(), validClient(), order.Online, validProducts())
		require.NoError(t, err)
		second, err := order.NewOrder(kernel.NewObjectID(), validClient(), order.Online, validProducts())
		require.NoError(t, err)

		assert.False(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(nil))
	})
}

func TestOrder_Products(t *testing.T) {
	t.Run("should return a defensive copy", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewObjectID(), validClient(), order.Online, validProducts())
		require.NoError(t, err)

		products := o.Products()
		products[0].Name = "Tampered"

		assert.Equal(t, "Keyboard", o.Products()[0].Name)
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("should confirm a Pending order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewObjectID(), validClient(), order.Online, validProducts())
		require.NoError(t, err)

		err = o.Confirm()

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should reject confirmation once the order left Pending", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewObjectID(), validClient(), order.Online, validProducts(),
			order.Shipped, 119.97, time.Now(),
		)
		require.NoError(t, err)

		err = o.Confirm()

		require.Error(t, err)
		assert.Equal(t, order.Shipped, o.Status())
	})
}

func TestOrder_ChangeStatusTo(t *testing.T) {
	t.Run("should move between post-Pending statuses in any direction", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewObjectID(), validClient(), order.Online, validProducts(),
			order.Delivered, 119.97, time.Now(),
		)
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatusTo(order.Packed))
		assert.Equal(t, order.Packed, o.Status())

		require.NoError(t, o.ChangeStatusTo(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject skipping review on a Pending order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewObjectID(), validClient(), order.Online, validProducts())
		require.NoError(t, err)

		err = o.ChangeStatusTo(order.Shipped)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject moving any order back to Pending", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewObjectID(), validClient(), order.Online, validProducts(),
			order.Confirmed, 119.97, time.Now(),
		)
		require.NoError(t, err)

		err = o.ChangeStatusTo(order.Pending)

		require.Error(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})
}

func TestOrder_ApplyContentPatch(t *testing.T) {
	newPatch := func() order.ContentPatch {
		return order.ContentPatch{
			Client:        order.Client{Name: "Riley Chen", Contact: "+1 555 0202", City: "Denver", Address: "9 Oak Ave"},
			PaymentMethod: order.CashOnDelivery,
			Products: []order.LineItem{
				{Name: "Monitor", Price: 199.99, Quantity: 1},
			},
			TotalPrice: 199.99,
		}
	}

	t.Run("should replace content and recompute total on a Pending order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewObjectID(), validClient(), order.Online, validProducts())
		require.NoError(t, err)

		err = o.ApplyContentPatch(newPatch())

		require.NoError(t, err)
		assert.Equal(t, "Riley Chen", o.Client().Name)
		assert.Equal(t, order.CashOnDelivery, o.PaymentMethod())
		assert.Len(t, o.Products(), 1)
		assert.InDelta(t, 199.99, o.TotalPrice(), 0.0001)
	})

	t.Run("should sanitize items on apply", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewObjectID(), validClient(), order.Online, validProducts())
		require.NoError(t, err)

		patch := newPatch()
		patch.Products = []order.LineItem{
			{Name: "  Monitor  ", Price: -1, Quantity: 2, ProductID: "not-a-reference"},
		}

		err = o.ApplyContentPatch(patch)

		require.NoError(t, err)
		applied := o.Products()[0]
		assert.Equal(t, "Monitor", applied.Name)
		assert.Zero(t, applied.Price)
		assert.Empty(t, applied.ProductID)
		assert.Zero(t, o.TotalPrice())
	})

	t.Run("should reject content edits once the order left Pending", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewObjectID(), validClient(), order.Online, validProducts(),
			order.Confirmed, 119.97, time.Now(),
		)
		require.NoError(t, err)

		err = o.ApplyContentPatch(newPatch())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotEditable)
		assert.Equal(t, validClient(), o.Client())
	})

	t.Run("should reject a patch with invalid items and keep current content", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewObjectID(), validClient(), order.Online, validProducts())
		require.NoError(t, err)

		patch := newPatch()
		patch.Products = []order.LineItem{{Name: "", Price: 10, Quantity: 0}}

		err = o.ApplyContentPatch(patch)

		require.Error(t, err)
		assert.True(t, order.IsValidationError(err))
		assert.Len(t, o.Products(), 2)
		assert.InDelta(t, 119.97, o.TotalPrice(), 0.0001)
	})
}
