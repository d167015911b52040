package commands

import (
	"errors"
	"slices"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// LineItemInput is one line-item row exactly as the operator submitted it.
// Price and quantity stay strings here: blank and malformed input is part of
// the editing workflow and is coerced inside the edit session, not rejected
// at the boundary.
type LineItemInput struct {
	Name      string
	Price     string
	Quantity  string
	ProductID string
}

// UpdateOrderCommand represents a full content update of a Pending order:
// client details, payment method, and the complete line-item collection.
//
// The command validates only what must hold before a session can run: a real
// identifier, a recognizable payment method, and at least one submitted row.
// Row-level rules are enforced when the edit session commits.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.ObjectID
	client        order.Client
	paymentMethod order.PaymentMethod
	products      []LineItemInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command carrying the full submitted
// content for one order.
func NewUpdateOrderCommand(
	orderID kernel.ObjectID,
	client order.Client,
	paymentMethod order.PaymentMethod,
	products []LineItemInput,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setProducts(products),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.client = client
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.ObjectID {
	return c.orderID
}

// Client returns the submitted customer details.
func (c UpdateOrderCommand) Client() order.Client {
	return c.client
}

// PaymentMethod returns the submitted payment method.
func (c UpdateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Products returns a copy of the submitted line-item rows.
func (c UpdateOrderCommand) Products() []LineItemInput {
	return slices.Clone(c.products)
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.ObjectID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *UpdateOrderCommand) setProducts(products []LineItemInput) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("products")
	}

	c.products = slices.Clone(products)
	return nil
}
