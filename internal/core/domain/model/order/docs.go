// Package order provides domain entities and business logic for order management
// in the back-office system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, content, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - LineItem: The product entries within an order, with validation and totalling
//   - Client and PaymentMethod: the remaining editable order content
//
// Key business rules:
//   - Orders start Pending; only Pending orders accept content edits
//   - A Pending order is either confirmed or rejected (deleted), nothing else
//   - Post-Pending statuses are freely interchangeable until the record is deleted
//   - The stored total always equals the exact sum of price × quantity
//   - An order always holds at least one line item
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
