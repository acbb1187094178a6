package goOnboard

import "errors"

var (
	// ErrEngineNotReady is an exported constant or variable used by the validator engine.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrNavigatorNotConfigured is an exported constant or variable used by the validator engine.
	ErrNavigatorNotConfigured = errors.New("navigator not configured")
	// ErrSetupAttemptsExceeded is an exported constant or variable used by the validator engine.
	ErrSetupAttemptsExceeded = errors.New("setup flow attempts exceeded")
)
