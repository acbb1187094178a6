package goOnboard

import (
	"context"

	"github.com/MrEthical07/goOnboard/backend"
)

// FetchUserData describes the fetchuserdata operation and its observable behavior.
//
// It reads the cached auth token from local state and asks the backend for
// the current-user record. A missing session sends an empty token; the
// backend's answer for anonymous callers then surfaces as
// [backend.ErrStatus].
//
// FetchUserData may return an error when input validation, dependency calls, or security checks fail.
// FetchUserData does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) FetchUserData(ctx context.Context) (*backend.UserRecord, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}

	sess, err := e.readLocalSession(ctx)
	if err != nil {
		e.metricInc(MetricFetchFailure)
		return nil, err
	}

	record, err := e.fetcher.CurrentUser(ctx, sess.AuthToken)
	if err != nil {
		e.metricInc(MetricFetchFailure)
		return nil, err
	}
	return record, nil
}
