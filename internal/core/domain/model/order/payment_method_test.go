package order_test

import (
	"fmt"
	"testing"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodFromString(t *testing.T) {
	t.Run("should normalize heterogeneous source values", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.PaymentMethod
		}{
			{"COD", order.CashOnDelivery},
			{"cod", order.CashOnDelivery},
			{"Cash on Delivery", order.CashOnDelivery},
			{"cash_on_delivery", order.CashOnDelivery},
			{"  COD  ", order.CashOnDelivery},
			{"Online", order.Online},
			{"ONLINE", order.Online},
			{"prepaid", order.Online},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %q", tc.input), func(t *testing.T) {
				method, err := order.PaymentMethodFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, method)
			})
		}
	})

	t.Run("should reject unrecognized values", func(t *testing.T) {
		invalidInputs := []string{"", "card", "cash", "bank transfer"}

		for _, input := range invalidInputs {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				method, err := order.PaymentMethodFromString(input)

				require.Error(t, err)
				assert.Equal(t, order.PaymentMethodUnknown, method)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "is not a valid payment method")
			})
		}
	})
}

func TestPaymentMethod_Validate(t *testing.T) {
	t.Run("should validate valid payment methods", func(t *testing.T) {
		require.NoError(t, order.CashOnDelivery.Validate())
		require.NoError(t, order.Online.Validate())
	})

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		invalidMethods := []order.PaymentMethod{
			order.PaymentMethodUnknown,
			order.PaymentMethod(-1),
			order.PaymentMethod(3),
		}

		for _, method := range invalidMethods {
			t.Run(fmt.Sprintf("should reject value %d", int(method)), func(t *testing.T) {
				err := method.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestPaymentMethod_String(t *testing.T) {
	t.Run("should return canonical names", func(t *testing.T) {
		assert.Equal(t, "COD", order.CashOnDelivery.String())
		assert.Equal(t, "Online", order.Online.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.PaymentMethodUnknown.String())
		assert.Equal(t, "Unknown", order.PaymentMethod(42).String())
	})
}
