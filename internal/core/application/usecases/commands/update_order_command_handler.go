package commands

import (
	"context"

	"backoffice/internal/core/domain/services"
)

// UpdateOrderCommandHandler handles the business logic for editing a Pending
// order's content. The submitted rows are replayed through an edit session so
// every update follows the same path the interactive workflow uses: free-form
// writes with numeric coercion, validation at commit, sanitization in the
// resulting patch.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for content updates.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the content update command.
//
// Fails when the order does not exist, already left Pending, or the submitted
// rows do not survive commit validation. On any failure the persisted order
// is left untouched.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	session, err := services.StartEditSession(aggregate)
	if err != nil {
		return err
	}

	if err = replaySubmission(session, cmd); err != nil {
		return err
	}

	patch, err := session.Commit()
	if err != nil {
		return err
	}

	if err = aggregate.ApplyContentPatch(patch); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	session.Cancel()
	return nil
}

// replaySubmission writes the submitted content into the session field by
// field, first resizing the working set to match the submitted row count.
func replaySubmission(session *services.EditSession, cmd UpdateOrderCommand) error {
	client := cmd.Client()
	writes := []error{
		session.SetClientField("name", client.Name),
		session.SetClientField("contact", client.Contact),
		session.SetClientField("city", client.City),
		session.SetClientField("address", client.Address),
		session.SetPaymentMethod(cmd.PaymentMethod()),
	}
	for _, err := range writes {
		if err != nil {
			return err
		}
	}

	products := cmd.Products()
	for len(session.Products()) > len(products) {
		if err := session.RemoveLineItem(len(session.Products()) - 1); err != nil {
			return err
		}
	}
	for len(session.Products()) < len(products) {
		if err := session.AddLineItem(); err != nil {
			return err
		}
	}

	for i, row := range products {
		rowWrites := []error{
			session.SetLineItem(i, "name", row.Name),
			session.SetLineItem(i, "price", row.Price),
			session.SetLineItem(i, "quantity", row.Quantity),
			session.SetLineItem(i, "productId", row.ProductID),
		}
		for _, err := range rowWrites {
			if err != nil {
				return err
			}
		}
	}

	return nil
}
