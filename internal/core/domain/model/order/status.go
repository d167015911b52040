package order

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the back-office review workflow.
//
// State transitions:
//
//	Pending ──> Confirmed <──> Packed <──> Shipped <──> OutForDelivery <──> Delivered
//	   │
//	   └──> (deleted: rejection removes the record outright)
//
// Pending is the sole initial state. Once an order leaves Pending, every
// post-Pending status is reachable from every other one: the operator picks a
// target from the full list and the system applies it once confirmed. The
// permissiveness is deliberate and isolated here, so a stricter sequential
// policy could be substituted without touching callers.
//
// There is no Rejected status; rejection deletes the order record, and
// deletion is permitted from every status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at storefront checkout.
	// Only Pending orders accept content edits.
	Pending

	// Confirmed indicates staff accepted the order for fulfillment.
	Confirmed

	// Packed indicates the order has been packed for dispatch.
	Packed

	// Shipped indicates the order has left the warehouse.
	Shipped

	// OutForDelivery indicates the order is with the courier for final delivery.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// Delivered orders populate the completed bucket.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		Packed:         "Packed",
		Shipped:        "Shipped",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		Packed:         "Packed",
		Shipped:        "Shipped",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// StatusFromString parses a status from its string representation.
// Only the six enumerated values are accepted; any other input is rejected
// before it can reach persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Packed, Shipped, OutForDelivery, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status ends the fulfillment lifecycle.
// Delivered is the only terminal status; it drives the completed bucket.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// CanTransitionTo checks whether target is a legal next status without
// performing the transition.
//
// Rules:
//   - Pending is never a legal target: it is the sole initial state.
//   - From Pending, the only legal target is Confirmed (the confirm action).
//   - From any post-Pending status, every post-Pending status is legal,
//     including the current one. Progression is not enforced to be forward-only.
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("an order cannot be moved back to %s", Pending),
		)
	}

	if s == Pending && target != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not reachable from %s, a pending order can only be confirmed or rejected", target, s),
		)
	}

	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if the order already left Pending
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm, only %s orders can be confirmed", s, Pending),
		)
	}

	return Confirmed, nil
}

// ChangeTo transitions the status to target, enforcing CanTransitionTo.
//
// Returns:
//   - (target, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := s.CanTransitionTo(target); err != nil {
		return 0, err
	}

	return target, nil
}
