package order

import (
	"errors"
	"slices"
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIsNotEditable is returned when content edits are attempted on an order
	// that already left Pending. Only the status field is mutable after review.
	ErrOrderIsNotEditable = errors.New("only Pending orders accept content edits")
)

// Order represents a customer purchase request in the back office. It is the
// aggregate root that manages the order lifecycle from storefront checkout
// through staff review to delivery.
//
// Order follows these invariants:
//   - Must have a valid persistence-minted identifier
//   - Must hold at least one line item at all times
//   - The stored total always equals the exact sum of price × quantity
//   - Status values come only from the closed enum and transitions follow Status rules
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the persistence-assigned identifier, immutable once set
	id kernel.ObjectID

	// client holds the customer details
	client Client

	// paymentMethod records how the customer pays
	paymentMethod PaymentMethod

	// products is the ordered line-item collection; insertion order is display order
	products []LineItem

	// status is the current state in the order lifecycle
	status Status

	// totalPrice is derived from products and never independently authored
	totalPrice float64

	// createdAt is set once at checkout and never changes
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
//
// Orders normally originate at the storefront; this constructor exists for
// that boundary and for tests. The total is computed from the items, and
// createdAt is stamped with the current time.
func NewOrder(id kernel.ObjectID, client Client, paymentMethod PaymentMethod, products []LineItem) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPaymentMethod(paymentMethod),
		order.setProducts(products),
	); err != nil {
		return nil, err
	}

	order.client = client
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// Unlike NewOrder it accepts any valid status and preserves the stored total
// and creation timestamp exactly as persisted.
func RestoreOrder(
	id kernel.ObjectID,
	client Client,
	paymentMethod PaymentMethod,
	products []LineItem,
	status Status,
	totalPrice float64,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setPaymentMethod(paymentMethod),
		order.setProducts(products),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	order.client = client
	order.totalPrice = totalPrice
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.ObjectID {
	return o.id
}

// Client returns the customer details attached to the order.
func (o *Order) Client() Client {
	return o.client
}

// PaymentMethod returns the order's payment method.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Products returns a copy of the line-item collection in display order.
// The copy keeps callers from mutating aggregate state directly.
func (o *Order) Products() []LineItem {
	return slices.Clone(o.products)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the stored, unrounded order total.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Confirm accepts a Pending order for fulfillment.
//
// Returns an error if the order already left Pending. Rejection has no
// counterpart method: rejecting deletes the record at the repository.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeStatusTo moves the order to target, enforcing the Status state machine.
// Post-Pending orders may take any post-Pending status; see Status.CanTransitionTo.
func (o *Order) ChangeStatusTo(target Status) error {
	newStatus, err := o.status.ChangeTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApplyContentPatch replaces the order's editable content with a committed
// edit-session result: client details, payment method, and line items.
//
// Only Pending orders accept content edits. Items are validated and sanitized
// again at the aggregate boundary, and the total is recomputed so the stored
// value can never go stale.
func (o *Order) ApplyContentPatch(patch ContentPatch) error {
	if o.status != Pending {
		return ErrOrderIsNotEditable
	}

	if err := patch.PaymentMethod.Validate(); err != nil {
		return err
	}
	if err := ValidateLineItems(patch.Products); err != nil {
		return err
	}

	products := make([]LineItem, len(patch.Products))
	for i, item := range patch.Products {
		products[i] = item.Sanitized()
	}

	o.client = patch.Client
	o.paymentMethod = patch.PaymentMethod
	o.products = products
	o.totalPrice = ComputeTotal(products)
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.ObjectID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setPaymentMethod validates and sets the payment method.
// This is a private method used only during construction.
func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

// setProducts validates and sets the line-item collection, computing the total.
// This is a private method used only during construction.
func (o *Order) setProducts(products []LineItem) error {
	if err := ValidateLineItems(products); err != nil {
		return err
	}
	o.products = slices.Clone(products)
	o.totalPrice = ComputeTotal(products)
	return nil
}

// setStatus validates and sets the status during restoration.
// This is a private method used only during construction.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// ContentPatch is the full content update produced by a committed edit
// session: client details, payment method, sanitized line items, and the
// recomputed total. A content patch and a status change are never mixed in
// one persistence call.
type ContentPatch struct {
	Client        Client
	PaymentMethod PaymentMethod
	Products      []LineItem
	TotalPrice    float64
}

// IsValidationError reports whether err originates from line-item or enum
// validation rather than infrastructure, letting callers distinguish a
// correctable working-set problem from a persistence failure.
func IsValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) || errors.Is(err, errs.ErrValueIsRequired)
}
