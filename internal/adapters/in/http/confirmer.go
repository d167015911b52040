package http

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
)

// confirmHeader carries the operator's answer to the confirmation dialog the
// browser already showed. A mutation without it counts as declined.
const confirmHeader = "X-Confirm"

type confirmDecisionKey struct{}

// WithConfirmDecision stores the raw confirmation header value on the
// request context so the coordinator's Confirmer can read it later without
// the HTTP layer leaking into the application layer.
func WithConfirmDecision(ctx context.Context, decision string) context.Context {
	return context.WithValue(ctx, confirmDecisionKey{}, decision)
}

// ConfirmDecisionMiddleware copies the confirmation header into the request
// context for every call.
func ConfirmDecisionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := WithConfirmDecision(req.Context(), req.Header.Get(confirmHeader))
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

// HeaderConfirmer implements ports.Confirmer for the HTTP surface. The
// browser shows the prompt itself and replays the answer in the confirmation
// header, so Confirm only inspects the decision already on the context.
type HeaderConfirmer struct{}

// Confirm reports whether the request carried an affirmative confirmation
// header. A missing or unrecognized value counts as declined, never as an
// error.
func (HeaderConfirmer) Confirm(ctx context.Context, _ string) (bool, error) {
	decision, _ := ctx.Value(confirmDecisionKey{}).(string)
	switch strings.ToLower(strings.TrimSpace(decision)) {
	case "yes", "true", "1":
		return true, nil
	default:
		return false, nil
	}
}
