package test

import (
	"context"
	"testing"

	goOnboard "github.com/MrEthical07/goOnboard"
	"github.com/MrEthical07/goOnboard/backend"
	"github.com/MrEthical07/goOnboard/cache"
	"github.com/MrEthical07/goOnboard/storage"
)

// This test intentionally guards public API compile-compat for consumers.
func TestPublicAPISurfaceCompile(t *testing.T) {
	_ = goOnboard.New

	var _ *goOnboard.Engine
	var _ goOnboard.Config
	var _ goOnboard.ValidateOptions
	var _ goOnboard.SessionUpdate
	var _ goOnboard.LoginEvent
	var _ goOnboard.LocalSession
	var _ goOnboard.UserProfile
	var _ goOnboard.ProfileUpdate
	var _ goOnboard.OpenURLRequest
	var _ goOnboard.HookEvent
	var _ goOnboard.HookSink
	var _ goOnboard.UserFetcher
	var _ goOnboard.Navigator
	var _ goOnboard.ProfileStore
	var _ *goOnboard.ShareDefaults
	var _ goOnboard.MetricsSnapshot
	var _ goOnboard.LintWarnings

	var _ error = goOnboard.ErrEngineNotReady
	var _ error = goOnboard.ErrNavigatorNotConfigured
	var _ error = goOnboard.ErrSetupAttemptsExceeded
	var _ error = storage.ErrUnavailable
	var _ error = cache.ErrUnavailable
	var _ error = backend.ErrUnavailable
	var _ error = backend.ErrStatus

	var _ func(*goOnboard.Engine, context.Context, goOnboard.ValidateOptions) error = (*goOnboard.Engine).ValidateAccount
	var _ func(*goOnboard.Engine, context.Context) (bool, error) = (*goOnboard.Engine).EnsureValidated
	var _ func(*goOnboard.Engine, context.Context, goOnboard.SessionUpdate) error = (*goOnboard.Engine).UpdateLocalSession
	var _ func(*goOnboard.Engine, context.Context, bool) error = (*goOnboard.Engine).SetSkipSetup
	var _ func(*goOnboard.Engine, context.Context, goOnboard.LoginEvent) error = (*goOnboard.Engine).HandleLogin
	var _ func(*goOnboard.Engine, context.Context) (*backend.UserRecord, error) = (*goOnboard.Engine).FetchUserData
	var _ func(*goOnboard.Engine, context.Context, *backend.UserRecord) (bool, error) = (*goOnboard.Engine).SetupRequired
}
