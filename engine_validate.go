package goOnboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrEthical07/goOnboard/internal/token"
)

// ValidateAccount describes the validateaccount operation and its observable behavior.
//
// A validation run works through three stages: obtain a user record (the
// caller's, or fetched with the cached token), evaluate whether the account
// still owes setup, and when it does, walk the user through the hosted
// setup flow and re-validate on close. The run resolves only when the
// account comes out of the chain with nothing owed.
//
// ValidateAccount may return an error when input validation, dependency calls, or security checks fail.
// ValidateAccount does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) ValidateAccount(ctx context.Context, opts ValidateOptions) error {
	if err := e.ready(); err != nil {
		return err
	}

	if checkIDFromContext(ctx) == "" {
		ctx = WithCheckID(ctx, uuid.NewString())
	}

	start := time.Now()
	err := e.validateAccount(ctx, opts)
	if e.metrics.LatencyEnabled() {
		e.metrics.Observe(MetricValidateLatency, time.Since(start))
	}

	if err != nil {
		e.metricInc(MetricValidationFailure)
		return err
	}

	e.metricInc(MetricValidationSuccess)
	e.emitHook(ctx, hookEventValidationComplete, true, nil, nil)
	return nil
}

func (e *Engine) validateAccount(ctx context.Context, opts ValidateOptions) error {
	record := opts.Data
	if record == nil {
		fetched, err := e.FetchUserData(ctx)
		if err != nil {
			return err
		}
		record = fetched

		if opts.UpdateStorage {
			if err := e.UpdateLocalSession(ctx, sessionUpdateFromRecord(record)); err != nil {
				return err
			}
		}
	}

	required, err := e.SetupRequired(ctx, record)
	if err != nil {
		return err
	}
	if !required {
		return nil
	}
	return e.runSetupFlow(ctx)
}

// EnsureValidated describes the ensurevalidated operation and its observable behavior.
//
// It consults the validation gate first; only a cold or expired gate runs a
// full [Engine.ValidateAccount]. The resulting boolean reports whether the
// account is currently considered valid.
//
// EnsureValidated may return an error when input validation, dependency calls, or security checks fail.
// EnsureValidated does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) EnsureValidated(ctx context.Context) (bool, error) {
	if err := e.ready(); err != nil {
		return false, err
	}

	ttl := e.validationTTL(ctx)

	loaded := false
	valid, err := e.cache.GetOrLoad(ctx, e.config.Cache.ValidationKey, ttl, func(loadCtx context.Context) (bool, error) {
		loaded = true
		if err := e.ValidateAccount(loadCtx, ValidateOptions{}); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return false, err
	}

	if !loaded {
		e.metricInc(MetricValidationCached)
	} else if valid {
		e.metricInc(MetricCacheRearmed)
	}
	return valid, nil
}

// validationTTL returns the gate lifetime for the next validation result.
// With clamping on, a token that expires sooner than the configured TTL
// caps the entry at its remaining life; an already expired or unreadable
// token falls through to no caching at all.
func (e *Engine) validationTTL(ctx context.Context) time.Duration {
	ttl := e.config.Cache.ValidationTTL
	if !e.config.Cache.ClampToTokenExpiry {
		return ttl
	}

	sess, err := e.readLocalSession(ctx)
	if err != nil || sess.AuthToken == "" {
		return ttl
	}

	remaining, ok := token.Remaining(sess.AuthToken, time.Now())
	if !ok {
		return ttl
	}
	if remaining < ttl {
		return remaining
	}
	return ttl
}
