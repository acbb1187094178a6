package goOnboard

import (
	"context"
	"sync"

	"github.com/MrEthical07/goOnboard/backend"
)

const (
	// PassportNative is an exported constant or variable used by the validator engine.
	PassportNative = "native"
	// ProfileTypeNative is an exported constant or variable used by the validator engine.
	ProfileTypeNative = "native"
)

// LocalSession is the persisted slice of the signed-in account: the fields
// the app needs before the backend has been asked anything.
type LocalSession struct {
	UserRoleID int64  `json:"userRoleId"`
	AuthToken  string `json:"authToken"`
	Email      string `json:"email"`
}

// UserProfile is the projection handed to the host's profile store. It is
// derived, never persisted by the engine itself.
type UserProfile struct {
	Type   string `json:"type"`
	ID     int64  `json:"id"`
	Region string `json:"region"`
}

// SessionUpdate carries the account fields a caller pushes into local state
// after login or a backend fetch. Zero values mean "absent".
type SessionUpdate struct {
	ID         int64
	UserRoleID int64
	Region     string
	AuthToken  string
	Email      string
}

// ValidateOptions controls a single [Engine.ValidateAccount] run. A nil Data
// makes the engine fetch the record itself; UpdateStorage then also syncs
// the fetched fields into local state.
type ValidateOptions struct {
	Data          *backend.UserRecord
	UpdateStorage bool
}

// LoginEvent describes a completed sign-in as reported by the host app.
// ImpersonatedFrom is non-empty when an operator entered the account from
// an admin console.
type LoginEvent struct {
	Passport         string
	ImpersonatedFrom string
}

// OpenURLRequest asks the host to open a URL. OnClose, when non-nil, runs
// after the surface the host opened is dismissed; its error becomes part of
// the navigation outcome.
type OpenURLRequest struct {
	URL          string
	InAppBrowser bool
	OnClose      func(ctx context.Context) error
}

// ProfileUpdate is handed to [ProfileStore.Save]. Profile is nil when the
// account fields were too incomplete to project one.
type ProfileUpdate struct {
	Email   string
	Profile *UserProfile
}

// UserFetcher retrieves the current-user record for a cached auth token.
// [backend.Client] is the default implementation.
type UserFetcher interface {
	CurrentUser(ctx context.Context, authToken string) (*backend.UserRecord, error)
}

// Navigator is the host capability that opens URLs, typically in an in-app
// browser. Implementations must call OnClose at most once.
type Navigator interface {
	OpenURL(ctx context.Context, req OpenURLRequest) error
}

// ProfileStore is the host capability that receives profile projections,
// e.g. a support-widget identity or a crash-reporter user scope.
type ProfileStore interface {
	Save(ctx context.Context, update ProfileUpdate) error
}

// ShareDefaults is the navigation-wide sharing toggle. The engine flips it
// off for the duration of a setup flow and restores the previous value when
// the flow ends; hosts read it when rendering share affordances.
type ShareDefaults struct {
	mu       sync.Mutex
	disabled bool
}

// Disabled reports whether sharing affordances are currently suppressed.
func (s *ShareDefaults) Disabled() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disabled
}

// SetDisabled sets the suppression state.
func (s *ShareDefaults) SetDisabled(v bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.disabled = v
	s.mu.Unlock()
}

func (s *ShareDefaults) swapDisabled(v bool) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.disabled
	s.disabled = v
	return prev
}
