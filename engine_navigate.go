package goOnboard

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// runSetupFlow opens the hosted setup surface and re-validates when it
// closes. The sharing default is suppressed for exactly the duration of the
// navigation and restored no matter how the flow ends.
func (e *Engine) runSetupFlow(ctx context.Context) error {
	if e.navigator == nil {
		e.metricInc(MetricSetupFlowFailure)
		return ErrNavigatorNotConfigured
	}

	attempt := setupAttemptFromContext(ctx) + 1
	if max := e.config.SetupFlow.MaxAttempts; max > 0 && attempt > max {
		e.metricInc(MetricSetupFlowFailure)
		return ErrSetupAttemptsExceeded
	}

	sess, err := e.readLocalSession(ctx)
	if err != nil {
		e.metricInc(MetricSetupFlowFailure)
		return err
	}
	target, err := e.setupURL(sess.AuthToken)
	if err != nil {
		e.metricInc(MetricSetupFlowFailure)
		return err
	}

	checkID := checkIDFromContext(ctx)

	if e.config.SetupFlow.DisableShare {
		prev := e.share.swapDisabled(true)
		defer e.share.SetDisabled(prev)
	}

	e.metricInc(MetricSetupFlowOpened)
	e.emitHook(ctx, hookEventSetupFlowOpened, true, nil, func() map[string]string {
		return map[string]string{"attempt": strconv.Itoa(attempt)}
	})

	err = e.navigator.OpenURL(ctx, OpenURLRequest{
		URL:          target,
		InAppBrowser: e.config.SetupFlow.InAppBrowser,
		OnClose: func(closeCtx context.Context) error {
			if closeCtx == nil {
				closeCtx = context.Background()
			}
			closeCtx = withSetupAttempt(closeCtx, attempt)
			if checkID != "" {
				closeCtx = WithCheckID(closeCtx, checkID)
			}
			return e.ValidateAccount(closeCtx, ValidateOptions{})
		},
	})
	if err != nil {
		e.metricInc(MetricSetupFlowFailure)
	}
	e.emitHook(ctx, hookEventSetupFlowClosed, err == nil, err, func() map[string]string {
		return map[string]string{"attempt": strconv.Itoa(attempt)}
	})
	return err
}

// setupURL builds the setup redirect with the cached auth token attached,
// so the hosted page starts authenticated as the current account.
func (e *Engine) setupURL(authToken string) (string, error) {
	base := e.config.SetupFlow.RedirectBase
	if base == "" {
		return "", errors.New("setup flow redirect base not configured")
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid setup flow redirect base: %v", err)
	}

	q := u.Query()
	q.Set(e.config.SetupFlow.TokenParam, authToken)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
