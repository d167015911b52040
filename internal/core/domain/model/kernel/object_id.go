package kernel

import (
	"fmt"

	"backoffice/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrObjectIDIsNotConstructed indicates that an ObjectID was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value ObjectID.
var ErrObjectIDIsNotConstructed = errs.NewValueIsRequiredError(
	"ObjectID must be created via NewObjectID or ObjectIDFromHex")

// ObjectID is a value object that represents a persistence-assigned identifier.
// The storefront mints identifiers as 24-character hexadecimal strings, so the
// value object wraps the bson primitive to reuse its canonical parsing and
// generation while keeping the rest of the domain decoupled from the driver.
//
// The zero value of ObjectID is invalid and must be constructed using NewObjectID
// or ObjectIDFromHex. ObjectID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Mint a new identifier
//	id := kernel.NewObjectID()
//
//	// Parse an identifier received from outside
//	id, err := kernel.ObjectIDFromHex("64f1c0c2a5b9e13d4c8a9f01")
//	if err != nil {
//	    // handle error
//	}
type ObjectID struct {
	id primitive.ObjectID
}

// NewObjectID mints a new identifier. This is the primary way to create
// identifiers for records the back office originates itself, such as line
// items added during an edit session.
func NewObjectID() ObjectID {
	return ObjectID{id: primitive.NewObjectID()}
}

// ObjectIDFromHex parses an identifier from its 24-character hexadecimal
// representation. Returns an error for any other length or for non-hex input.
// This function doubles as the well-formed-identifier predicate: an identifier
// that fails to parse here is treated as absent by the edit workflow so that
// persistence may mint a fresh one.
func ObjectIDFromHex(s string) (ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ObjectID{}, fmt.Errorf("invalid ObjectID format: %w", err)
	}

	newID := ObjectID{id: id}
	if err = newID.Validate(); err != nil {
		return ObjectID{}, err
	}

	return newID, nil
}

// IsWellFormedHex reports whether s parses as a 24-character hexadecimal
// identifier. It never allocates a domain error and is intended for filtering
// optional identifiers rather than validating required ones.
func IsWellFormedHex(s string) bool {
	id, err := primitive.ObjectIDFromHex(s)
	return err == nil && !id.IsZero()
}

// Hex returns the canonical 24-character hexadecimal representation.
// For a zero value ObjectID, this returns "000000000000000000000000".
func (o ObjectID) Hex() string {
	return o.id.Hex()
}

// String implements fmt.Stringer and is equivalent to Hex.
func (o ObjectID) String() string {
	return o.id.Hex()
}

// IsEqual compares two ObjectIDs for equality.
func (o ObjectID) IsEqual(other ObjectID) bool {
	return o.id == other.id
}

// Validate checks if the ObjectID is properly constructed.
// Returns ErrObjectIDIsNotConstructed if the ObjectID is a zero value.
func (o ObjectID) Validate() error {
	if o.id.IsZero() {
		return ErrObjectIDIsNotConstructed
	}
	return nil
}
