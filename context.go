package goOnboard

import "context"

type checkIDContextKey struct{}
type setupAttemptContextKey struct{}

// WithCheckID attaches a validation check identifier to ctx. Every hook
// event emitted while the check runs carries it, which lets hosts correlate
// a validation with the setup flow and re-validations it spawned. The
// Engine generates one per [Engine.ValidateAccount] call when the caller
// did not.
func WithCheckID(ctx context.Context, checkID string) context.Context {
	return context.WithValue(ctx, checkIDContextKey{}, checkID)
}

func checkIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	checkID, _ := ctx.Value(checkIDContextKey{}).(string)
	return checkID
}

func withSetupAttempt(ctx context.Context, attempt int) context.Context {
	return context.WithValue(ctx, setupAttemptContextKey{}, attempt)
}

func setupAttemptFromContext(ctx context.Context) int {
	if ctx == nil {
		return 0
	}

	attempt, _ := ctx.Value(setupAttemptContextKey{}).(int)
	return attempt
}
