package goOnboard

import (
	"context"
	"errors"
	"time"

	"github.com/MrEthical07/goOnboard/backend"
	"github.com/MrEthical07/goOnboard/cache"
	"github.com/MrEthical07/goOnboard/storage"
)

const (
	hookEventValidationComplete    = "validation_complete"
	hookEventSessionSynced         = "session_synced"
	hookEventSetupFlowOpened       = "setup_flow_opened"
	hookEventSetupFlowClosed       = "setup_flow_closed"
	hookEventSkipSetupMarked       = "skip_setup_marked"
	hookEventLoginCacheInvalidated = "login_cache_invalidated"
)

// HookErrorCode defines a public type used by goOnboard APIs.
//
// HookErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HookErrorCode string

const (
	hookErrStorageUnavailable HookErrorCode = "storage_unavailable"
	hookErrCacheUnavailable   HookErrorCode = "cache_unavailable"
	hookErrBackendUnavailable HookErrorCode = "backend_unavailable"
	hookErrBackendRejected    HookErrorCode = "backend_rejected"
	hookErrNavigatorMissing   HookErrorCode = "navigator_missing"
	hookErrAttemptsExceeded   HookErrorCode = "attempts_exceeded"
	hookErrInternal           HookErrorCode = "internal_error"
)

func (e *Engine) emitHook(
	ctx context.Context,
	name string,
	success bool,
	err error,
	detailBuilder func() map[string]string,
) {
	if e == nil || e.hooks == nil {
		return
	}

	var detail map[string]string
	if detailBuilder != nil {
		detail = detailBuilder()
	}

	event := HookEvent{
		Timestamp: time.Now().UTC(),
		Name:      name,
		CheckID:   checkIDFromContext(ctx),
		Success:   success,
		Detail:    detail,
	}
	if code := hookErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.hooks.Emit(ctx, event)
}

func hookErrorCode(err error) HookErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, storage.ErrUnavailable):
		return hookErrStorageUnavailable
	case errors.Is(err, cache.ErrUnavailable):
		return hookErrCacheUnavailable
	case errors.Is(err, backend.ErrStatus):
		return hookErrBackendRejected
	case errors.Is(err, backend.ErrUnavailable):
		return hookErrBackendUnavailable
	case errors.Is(err, ErrNavigatorNotConfigured):
		return hookErrNavigatorMissing
	case errors.Is(err, ErrSetupAttemptsExceeded):
		return hookErrAttemptsExceeded
	default:
		return hookErrInternal
	}
}
