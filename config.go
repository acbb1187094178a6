package goOnboard

import (
	"errors"
	"net/url"
	"time"
)

// Config defines a public type used by goOnboard APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Storage   StorageConfig
	Cache     CacheConfig
	Backend   BackendConfig
	SetupFlow SetupFlowConfig
	Hooks     HookConfig
	Metrics   MetricsConfig
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig defines a public type used by goOnboard APIs.
//
// StorageConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StorageConfig struct {
	RedisPrefix  string
	SessionKey   string
	SkipSetupKey string
}

/*
====================================
CACHE CONFIG
====================================
*/

// CacheConfig defines a public type used by goOnboard APIs.
//
// CacheConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CacheConfig struct {
	ValidationKey string
	ValidationTTL time.Duration
	// ClampToTokenExpiry shortens the TTL so a cached "validated" never
	// outlives the auth token it was computed with.
	ClampToTokenExpiry bool
}

/*
====================================
BACKEND CONFIG
====================================
*/

// BackendConfig defines a public type used by goOnboard APIs.
//
// BackendConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type BackendConfig struct {
	BaseURL     string
	UserPath    string
	TokenHeader string
	TokenScheme string // "Bearer" (default); "" sends the raw token
	Timeout     time.Duration
}

/*
====================================
SETUP FLOW CONFIG
====================================
*/

// SetupFlowConfig defines a public type used by goOnboard APIs.
//
// SetupFlowConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SetupFlowConfig struct {
	RedirectBase string
	TokenParam   string
	InAppBrowser bool
	DisableShare bool
	// MaxAttempts caps how many times one validation may reopen the setup
	// surface. 0 means unlimited, matching a user who keeps closing the
	// browser without finishing setup.
	MaxAttempts int
}

/*
====================================
HOOK CONFIG
====================================
*/

// HookConfig defines a public type used by goOnboard APIs.
//
// HookConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HookConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by goOnboard APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig returns the configuration the [Builder] starts from.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			RedisPrefix:  "ob",
			SessionKey:   "account_session",
			SkipSetupKey: "skip_account_setup",
		},
		Cache: CacheConfig{
			ValidationKey:      "account_validation",
			ValidationTTL:      12 * time.Hour,
			ClampToTokenExpiry: true,
		},
		Backend: BackendConfig{
			UserPath:    "/api/v1/user/current",
			TokenHeader: "Authorization",
			TokenScheme: "Bearer",
			Timeout:     30 * time.Second,
		},
		SetupFlow: SetupFlowConfig{
			TokenParam:   "token",
			InAppBrowser: true,
			DisableShare: true,
			MaxAttempts:  0,
		},
		Hooks: HookConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Storage
	if c.Storage.SessionKey == "" {
		return errors.New("Storage SessionKey must not be empty")
	}
	if c.Storage.SkipSetupKey == "" {
		return errors.New("Storage SkipSetupKey must not be empty")
	}
	if c.Storage.SessionKey == c.Storage.SkipSetupKey {
		return errors.New("Storage SessionKey and SkipSetupKey must differ")
	}

	// Cache
	if c.Cache.ValidationKey == "" {
		return errors.New("Cache ValidationKey must not be empty")
	}
	if c.Cache.ValidationTTL <= 0 {
		return errors.New("Cache ValidationTTL must be > 0")
	}

	// Backend
	if c.Backend.BaseURL != "" {
		if _, err := url.ParseRequestURI(c.Backend.BaseURL); err != nil {
			return errors.New("Backend BaseURL must be an absolute URL")
		}
	}
	if c.Backend.Timeout < 0 {
		return errors.New("Backend Timeout must be >= 0")
	}

	// Setup flow
	if c.SetupFlow.RedirectBase != "" {
		if _, err := url.ParseRequestURI(c.SetupFlow.RedirectBase); err != nil {
			return errors.New("SetupFlow RedirectBase must be an absolute URL")
		}
	}
	if c.SetupFlow.TokenParam == "" {
		return errors.New("SetupFlow TokenParam must not be empty")
	}
	if c.SetupFlow.MaxAttempts < 0 {
		return errors.New("SetupFlow MaxAttempts must be >= 0")
	}

	// Hooks
	if c.Hooks.Enabled && c.Hooks.BufferSize <= 0 {
		return errors.New("Hooks BufferSize must be > 0 when Hooks are enabled")
	}

	return nil
}

// Config has no reference-typed fields; a value copy is a deep copy.
func cloneConfig(cfg Config) Config {
	return cfg
}
