// Package kernel provides core domain primitives and utilities for the back-office system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - ObjectID: A value object for persistence-minted identifiers with validation
//     and comparison capabilities
//   - RoundMoney: Monetary rounding applied when amounts are rendered for display
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
