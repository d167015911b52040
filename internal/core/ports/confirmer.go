package ports

import (
	"context"
	"errors"
)

// ErrConfirmationDeclined signals that the operator declined a destructive or
// state-changing action at the confirmation step. The action is simply not
// performed; callers map this to a no-op outcome rather than a failure.
var ErrConfirmationDeclined = errors.New("action declined at confirmation")

// Confirmer asks for operator confirmation before a state-changing action is
// carried out. The prompt describes the action in operator terms, for example
// `Are you sure you want to confirm this order?`.
//
// Implementations decide what confirmation means for their surface: the HTTP
// adapter reads an explicit header set by the client after it showed its own
// dialog, tests use a canned answer. Ok is false when the operator declined.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (ok bool, err error)
}

// AlwaysConfirm is a Confirmer that approves every prompt. Background
// processes that have no operator attached use it where the workflow demands
// a confirmation step.
type AlwaysConfirm struct{}

// Confirm implements Confirmer.
func (AlwaysConfirm) Confirm(context.Context, string) (bool, error) {
	return true, nil
}
