package goOnboard

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	"github.com/MrEthical07/goOnboard/backend"
)

// SetupRequired describes the setuprequired operation and its observable behavior.
//
// An account needs setup when any obligation on the record is live:
// two-factor linking, a profile update, unreviewed agreements, or a forced
// password change. The persisted skip flag overrides all of them, so an
// impersonating operator is never routed into the user's setup. A nil
// record imposes nothing.
//
// SetupRequired may return an error when input validation, dependency calls, or security checks fail.
// SetupRequired does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SetupRequired(ctx context.Context, record *backend.UserRecord) (bool, error) {
	if err := e.ready(); err != nil {
		return false, err
	}

	skip, err := e.readSkipSetup(ctx)
	if err != nil {
		return false, err
	}
	if skip {
		return false, nil
	}
	if record == nil {
		return false, nil
	}

	required := record.MustLinkTwoFactor ||
		record.MustUpdateProfile ||
		len(record.MustReviewAgreements) > 0 ||
		record.PasswordMustChange()
	if required {
		e.metricInc(MetricSetupRequired)
	}
	return required, nil
}

// SetSkipSetup describes the setskipsetup operation and its observable behavior.
//
// SetSkipSetup may return an error when input validation, dependency calls, or security checks fail.
// SetSkipSetup does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SetSkipSetup(ctx context.Context, skip bool) error {
	if err := e.ready(); err != nil {
		return err
	}

	if err := e.store.Set(ctx, e.config.Storage.SkipSetupKey, []byte(strconv.FormatBool(skip))); err != nil {
		return err
	}

	if skip {
		e.metricInc(MetricSkipSetupMarked)
		e.emitHook(ctx, hookEventSkipSetupMarked, true, nil, nil)
	}
	return nil
}

// readSkipSetup loads the persisted skip flag. Absent and unreadable slots
// both mean "do not skip".
func (e *Engine) readSkipSetup(ctx context.Context) (bool, error) {
	data, ok, err := e.store.Get(ctx, e.config.Storage.SkipSetupKey)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	var skip bool
	if err := json.Unmarshal(data, &skip); err != nil {
		e.logger.Warn("stored skip flag unreadable, treating as unset", zap.Error(err))
		return false, nil
	}
	return skip, nil
}
