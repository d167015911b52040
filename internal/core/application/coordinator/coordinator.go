// Package coordinator ties the order boards to the write workflow. It keeps
// an in-memory snapshot of the three boards, reloads it after every
// successful write, and gates destructive actions behind operator
// confirmation.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
)

// Snapshot is one consistent view of the three order boards.
type Snapshot struct {
	Pending     []queries.OrderResponse
	InProgress  []queries.OrderResponse
	Completed   []queries.OrderResponse
	RefreshedAt time.Time
}

type (
	// PendingOrdersReader loads the Pending board from storage.
	PendingOrdersReader interface {
		Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.OrderResponse, error)
	}

	// ReviewedOrdersReader loads every reviewed order from storage.
	ReviewedOrdersReader interface {
		Handle(ctx context.Context, query queries.GetReviewedOrdersQuery) ([]queries.OrderResponse, error)
	}

	// ConfirmOrderHandler dispatches order confirmation.
	ConfirmOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) error
	}

	// RemoveOrderHandler dispatches order removal.
	RemoveOrderHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveOrderCommand) error
	}

	// ChangeOrderStatusHandler dispatches fulfillment status changes.
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}

	// UpdateOrderHandler dispatches content updates of Pending orders.
	UpdateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) error
	}
)

// Coordinator runs the back-office order lifecycle: it owns the board
// snapshot, asks the operator for confirmation before state-changing
// actions, dispatches the corresponding command, and reloads the snapshot
// after every successful write so the boards never show stale state.
//
// The snapshot survives failed refreshes: readers keep seeing the last
// successfully loaded view.
type Coordinator struct {
	pendingReader  PendingOrdersReader
	reviewedReader ReviewedOrdersReader

	confirmHandler      ConfirmOrderHandler
	removeHandler       RemoveOrderHandler
	changeStatusHandler ChangeOrderStatusHandler
	updateHandler       UpdateOrderHandler

	confirmer ports.Confirmer
	logger    *slog.Logger

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewCoordinator wires the coordinator from its readers, command handlers,
// and the confirmation capability of the calling surface.
func NewCoordinator(
	pendingReader PendingOrdersReader,
	reviewedReader ReviewedOrdersReader,
	confirmHandler ConfirmOrderHandler,
	removeHandler RemoveOrderHandler,
	changeStatusHandler ChangeOrderStatusHandler,
	updateHandler UpdateOrderHandler,
	confirmer ports.Confirmer,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		pendingReader:       pendingReader,
		reviewedReader:      reviewedReader,
		confirmHandler:      confirmHandler,
		removeHandler:       removeHandler,
		changeStatusHandler: changeStatusHandler,
		updateHandler:       updateHandler,
		confirmer:           confirmer,
		logger:              logger,
	}
}

// Snapshot returns the last successfully loaded view of the boards.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// LoadAll refreshes the snapshot from storage.
//
// The two board queries run concurrently. If either fails the prior snapshot
// is kept in its entirety so the boards stay mutually consistent; a partial
// refresh is never published.
func (c *Coordinator) LoadAll(ctx context.Context) error {
	var (
		wg          sync.WaitGroup
		pending     []queries.OrderResponse
		reviewed    []queries.OrderResponse
		pendingErr  error
		reviewedErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		pending, pendingErr = c.pendingReader.Handle(ctx, queries.NewGetPendingOrdersQuery())
	}()
	go func() {
		defer wg.Done()
		reviewed, reviewedErr = c.reviewedReader.Handle(ctx, queries.NewGetReviewedOrdersQuery())
	}()
	wg.Wait()

	if err := errors.Join(pendingErr, reviewedErr); err != nil {
		return err
	}

	inProgress, completed := services.PartitionByStatus(reviewed,
		func(r queries.OrderResponse) order.Status { return r.Status })

	c.mu.Lock()
	c.snapshot = Snapshot{
		Pending:     pending,
		InProgress:  inProgress,
		Completed:   completed,
		RefreshedAt: time.Now(),
	}
	c.mu.Unlock()

	return nil
}

// Confirm accepts a Pending order for fulfillment after operator
// confirmation. Returns ports.ErrConfirmationDeclined when the operator
// backs out; nothing is changed in that case.
func (c *Coordinator) Confirm(ctx context.Context, id kernel.ObjectID) error {
	if err := c.confirmAction(ctx, "Are you sure you want to confirm this order?"); err != nil {
		return err
	}

	cmd, err := commands.NewConfirmOrderCommand(id)
	if err != nil {
		return err
	}

	if err = c.confirmHandler.Handle(ctx, cmd); err != nil {
		return err
	}

	c.reloadAfterWrite(ctx, "confirm", id)
	return nil
}

// Reject removes a Pending order after operator confirmation. The record is
// deleted outright; there is no rejected state to inspect later.
func (c *Coordinator) Reject(ctx context.Context, id kernel.ObjectID) error {
	if err := c.confirmAction(ctx, "Are you sure you want to reject this order?"); err != nil {
		return err
	}

	return c.remove(ctx, id, "reject")
}

// Delete removes an order record from any board after operator confirmation.
func (c *Coordinator) Delete(ctx context.Context, id kernel.ObjectID) error {
	prompt := fmt.Sprintf("Are you sure you want to delete Order #%s? This action cannot be undone.", id.Hex())
	if err := c.confirmAction(ctx, prompt); err != nil {
		return err
	}

	return c.remove(ctx, id, "delete")
}

// ChangeStatus moves a reviewed order to target after operator confirmation.
func (c *Coordinator) ChangeStatus(ctx context.Context, id kernel.ObjectID, target order.Status) error {
	prompt := fmt.Sprintf("Are you sure you want to change status to %q?", target.String())
	if err := c.confirmAction(ctx, prompt); err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target)
	if err != nil {
		return err
	}

	if err = c.changeStatusHandler.Handle(ctx, cmd); err != nil {
		return err
	}

	c.reloadAfterWrite(ctx, "change status", id)
	return nil
}

// SaveEdits persists a full content update of a Pending order. Saving edits
// is not destructive and needs no confirmation step.
func (c *Coordinator) SaveEdits(ctx context.Context, cmd commands.UpdateOrderCommand) error {
	if err := c.updateHandler.Handle(ctx, cmd); err != nil {
		return err
	}

	c.reloadAfterWrite(ctx, "update", cmd.OrderID())
	return nil
}

func (c *Coordinator) remove(ctx context.Context, id kernel.ObjectID, action string) error {
	cmd, err := commands.NewRemoveOrderCommand(id)
	if err != nil {
		return err
	}

	if err = c.removeHandler.Handle(ctx, cmd); err != nil {
		return err
	}

	c.reloadAfterWrite(ctx, action, id)
	return nil
}

// confirmAction asks the operator and maps a decline to
// ports.ErrConfirmationDeclined.
func (c *Coordinator) confirmAction(ctx context.Context, prompt string) error {
	ok, err := c.confirmer.Confirm(ctx, prompt)
	if err != nil {
		return err
	}
	if !ok {
		return ports.ErrConfirmationDeclined
	}
	return nil
}

// reloadAfterWrite refreshes the snapshot after a successful write. The
// write itself already succeeded, so a failed refresh is logged and the
// prior snapshot stays visible until the next refresh.
func (c *Coordinator) reloadAfterWrite(ctx context.Context, action string, id kernel.ObjectID) {
	if err := c.LoadAll(ctx); err != nil {
		c.logger.Warn("board refresh failed after write",
			"action", action,
			"orderId", id.Hex(),
			"error", err,
		)
	}
}
