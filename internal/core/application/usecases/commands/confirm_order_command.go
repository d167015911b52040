package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a request to accept a Pending order for
// fulfillment. Confirmation is the only status change a Pending order can
// take; every other mutation of a Pending order is either a content edit or
// a rejection.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ObjectID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm the order with the
// given identifier. Returns an error for a zero-value identifier.
func NewConfirmOrderCommand(orderID kernel.ObjectID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmOrderCommandIsNotConstructed if validation fails.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c ConfirmOrderCommand) OrderID() kernel.ObjectID {
	return c.orderID
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.ObjectID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
