package order

import (
	"errors"
	"fmt"
	"strings"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// LineItem is one product entry within an order: a name, a unit price, a
// quantity, and an optional back-reference to a catalog product.
//
// Fields are exported because a line item spends most of its life as a
// free-form working value inside an edit session; ValidateLineItems and
// Sanitized enforce the committed shape.
type LineItem struct {
	// Name of the product. Required; trimmed on commit.
	Name string

	// Price is the unit price. Never a validation failure: a missing or blank
	// price is coerced to 0.
	Price float64

	// Quantity of units. Must be at least 1 to commit.
	Quantity int

	// ProductID optionally references a catalog product. It is forwarded to
	// persistence only when it is a well-formed 24-hex identifier; any other
	// value is treated as absent so persistence may mint a new identity.
	ProductID string
}

// NewLineItem returns the blank template appended when the operator adds a
// row to an edit session: empty name, zero price, quantity one, no catalog
// reference.
func NewLineItem() LineItem {
	return LineItem{Quantity: 1}
}

// Subtotal returns price × quantity for this item.
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// Sanitized returns a copy of the item in its committed shape: name trimmed,
// negative price coerced to zero, and ProductID dropped unless it is a
// well-formed identifier.
func (li LineItem) Sanitized() LineItem {
	out := li
	out.Name = strings.TrimSpace(li.Name)
	if out.Price < 0 {
		out.Price = 0
	}
	if !kernel.IsWellFormedHex(out.ProductID) {
		out.ProductID = ""
	}
	return out
}

// ValidateLineItems checks a line-item collection for commit.
//
// Validation fails when the collection is empty, when any item has an empty or
// whitespace-only name, or when any item has a quantity below 1. Price is
// never a cause of failure. All failures are reported together via a joined
// error so the operator can correct every row at once.
func ValidateLineItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("products")
	}

	var errList []error
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(fmt.Sprintf("products[%d].name", i)))
		}
		if item.Quantity <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("products[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity),
			))
		}
	}

	return errors.Join(errList...)
}

// ComputeTotal sums price × quantity across all items.
//
// The result is intentionally unrounded: committed totals store the exact sum
// so rounding error does not compound across edits. Use kernel.RoundMoney when
// rendering the value.
func ComputeTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
