package goOnboard

import "context"

// HandleLogin describes the handlelogin operation and its observable behavior.
//
// Hosts call it once per completed sign-in. An impersonated entry marks the
// skip flag before anything else, so the operator never lands in the user's
// setup. A native-passport login then drops the validation gate and
// re-arms it by validating immediately; other passports leave the gate
// untouched.
//
// HandleLogin may return an error when input validation, dependency calls, or security checks fail.
// HandleLogin does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) HandleLogin(ctx context.Context, event LoginEvent) error {
	if err := e.ready(); err != nil {
		return err
	}

	if event.ImpersonatedFrom != "" {
		if err := e.SetSkipSetup(ctx, true); err != nil {
			return err
		}
	}

	if event.Passport != PassportNative {
		return nil
	}

	if err := e.cache.Remove(ctx, e.config.Cache.ValidationKey); err != nil {
		return err
	}
	e.metricInc(MetricLoginCacheInvalidated)
	e.emitHook(ctx, hookEventLoginCacheInvalidated, true, nil, nil)

	_, err := e.EnsureValidated(ctx)
	return err
}
