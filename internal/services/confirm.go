package services

import "context"

// Confirmer is the user-confirmation capability gating destructive
// operations. Presentation layers decide how (or whether) to actually ask.
type Confirmer interface {
	// Confirm returns false when the user declines; declining aborts the
	// operation with no side effect.
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// AutoConfirm approves every prompt. The JSON API uses it because an HTTP
// client has already confirmed by issuing the request.
type AutoConfirm struct{}

func (AutoConfirm) Confirm(context.Context, string) (bool, error) { return true, nil }
