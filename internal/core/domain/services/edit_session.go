package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrSessionIsClosed is returned when a session is used after Cancel.
	ErrSessionIsClosed = errors.New("edit session has been discarded")

	// ErrLastLineItem is returned when removal would leave the order without
	// any line items. The sole remaining item can never be removed.
	ErrLastLineItem = errors.New("the last line item cannot be removed")
)

// EditSession holds a working copy of one Pending order's editable fields:
// client details, payment method, and line items. The persisted order stays
// untouched until a committed patch is written back; cancelling the session
// discards every change.
//
// A session is exclusive to the order being edited. The workflow opens at most
// one session at a time, so the session itself carries no locking; starting a
// second session for the same order simply supersedes the first.
type EditSession struct {
	token         uuid.UUID
	orderID       kernel.ObjectID
	client        order.Client
	paymentMethod order.PaymentMethod
	products      []order.LineItem
	closed        bool
}

// StartEditSession snapshots the order's editable fields into a new working
// set. Only Pending orders can be edited; later-stage orders expose only
// their status for mutation.
func StartEditSession(o *order.Order) (*EditSession, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Pending {
		return nil, order.ErrOrderIsNotEditable
	}

	return &EditSession{
		token:         uuid.New(),
		orderID:       o.ID(),
		client:        o.Client(),
		paymentMethod: o.PaymentMethod(),
		products:      o.Products(),
	}, nil
}

// Token returns the session's unique token, used to correlate log entries
// with one editing round-trip.
func (s *EditSession) Token() uuid.UUID {
	return s.token
}

// OrderID returns the identifier of the order being edited.
func (s *EditSession) OrderID() kernel.ObjectID {
	return s.orderID
}

// Client returns the working copy of the customer details.
func (s *EditSession) Client() order.Client {
	return s.client
}

// PaymentMethod returns the working copy of the payment method.
func (s *EditSession) PaymentMethod() order.PaymentMethod {
	return s.paymentMethod
}

// Products returns a copy of the working line-item collection.
func (s *EditSession) Products() []order.LineItem {
	out := make([]order.LineItem, len(s.products))
	copy(out, s.products)
	return out
}

// Total returns the running total of the working set, unrounded.
// Use kernel.RoundMoney when rendering it.
func (s *EditSession) Total() float64 {
	return order.ComputeTotal(s.products)
}

// SetClientField writes one customer detail field in the working set.
// Field names are name, contact, city, and address. Values are free text and
// unconstrained until commit.
func (s *EditSession) SetClientField(field, value string) error {
	if s.closed {
		return ErrSessionIsClosed
	}

	switch field {
	case "name":
		s.client.Name = value
	case "contact":
		s.client.Contact = value
	case "city":
		s.client.City = value
	case "address":
		s.client.Address = value
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"field",
			fmt.Errorf("%q is not a client field", field),
		)
	}
	return nil
}

// SetPaymentMethod writes the payment method in the working set.
func (s *EditSession) SetPaymentMethod(method order.PaymentMethod) error {
	if s.closed {
		return ErrSessionIsClosed
	}
	if err := method.Validate(); err != nil {
		return err
	}

	s.paymentMethod = method
	return nil
}

// SetLineItem writes one field of one line item in the working set.
//
// Field names are name, price, quantity, and productId. Numeric fields are
// coerced on write: blank or unparsable input becomes 0, which for quantity
// leaves the row invalid until corrected. Nothing here blocks; all
// enforcement happens at commit.
func (s *EditSession) SetLineItem(index int, field, value string) error {
	if s.closed {
		return ErrSessionIsClosed
	}
	if index < 0 || index >= len(s.products) {
		return errs.NewValueIsOutOfRangeError("index", index, 0, len(s.products)-1)
	}

	switch field {
	case "name":
		s.products[index].Name = value
	case "price":
		s.products[index].Price = coerceFloat(value)
	case "quantity":
		s.products[index].Quantity = coerceInt(value)
	case "productId":
		s.products[index].ProductID = value
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"field",
			fmt.Errorf("%q is not a line item field", field),
		)
	}
	return nil
}

// AddLineItem appends a blank line item to the working set: empty name, zero
// price, quantity one, no catalog reference.
func (s *EditSession) AddLineItem() error {
	if s.closed {
		return ErrSessionIsClosed
	}

	s.products = append(s.products, order.NewLineItem())
	return nil
}

// RemoveLineItem removes the item at index from the working set.
// Removal of the sole remaining item is blocked with ErrLastLineItem.
func (s *EditSession) RemoveLineItem(index int) error {
	if s.closed {
		return ErrSessionIsClosed
	}
	if index < 0 || index >= len(s.products) {
		return errs.NewValueIsOutOfRangeError("index", index, 0, len(s.products)-1)
	}
	if len(s.products) == 1 {
		return ErrLastLineItem
	}

	s.products = append(s.products[:index], s.products[index+1:]...)
	return nil
}

// Commit validates the working set and produces the full content patch for
// persistence.
//
// On validation failure the joined item errors are returned and no patch is
// produced; the working set stays intact for correction. On success item
// names are trimmed, ill-formed catalog references are dropped, and the total
// is recomputed from the sanitized items. The session itself stays open so a
// failed persistence call can be retried without re-entering data; discard it
// with Cancel once the patch is safely written.
func (s *EditSession) Commit() (order.ContentPatch, error) {
	if s.closed {
		return order.ContentPatch{}, ErrSessionIsClosed
	}

	if err := order.ValidateLineItems(s.products); err != nil {
		return order.ContentPatch{}, err
	}

	products := make([]order.LineItem, len(s.products))
	for i, item := range s.products {
		products[i] = item.Sanitized()
	}

	return order.ContentPatch{
		Client:        s.client,
		PaymentMethod: s.paymentMethod,
		Products:      products,
		TotalPrice:    order.ComputeTotal(products),
	}, nil
}

// Cancel discards the working set without persisting anything.
// A cancelled session rejects all further operations.
func (s *EditSession) Cancel() {
	s.closed = true
	s.products = nil
}

// coerceFloat converts free-form numeric input the way a browser form does:
// blank or unparsable input becomes 0.
func coerceFloat(value string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return f
}

// coerceInt converts free-form integer input; blank or unparsable input
// becomes 0, which fails quantity validation at commit.
func coerceInt(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
