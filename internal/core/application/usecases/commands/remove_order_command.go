package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand represents a request to delete an order record outright.
// Rejecting a Pending order and discarding a reviewed one both remove the
// record the same way; there is no rejected or archived state.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.ObjectID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to remove the order with the given
// identifier. Returns an error for a zero-value identifier.
func NewRemoveOrderCommand(orderID kernel.ObjectID) (RemoveOrderCommand, error) {
	cmd := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RemoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveOrderCommandIsNotConstructed if validation fails.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to remove.
func (c RemoveOrderCommand) OrderID() kernel.ObjectID {
	return c.orderID
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.ObjectID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
