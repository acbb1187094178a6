package goOnboard

import (
	"errors"
	"strings"
	"time"
)

// LintSeverity defines a public type used by goOnboard APIs.
//
// LintSeverity instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LintSeverity uint8

const (
	// LintInfo is an exported constant or variable used by the validator engine.
	LintInfo LintSeverity = iota
	// LintLow is an exported constant or variable used by the validator engine.
	LintLow
	// LintHigh is an exported constant or variable used by the validator engine.
	LintHigh
)

// String describes the string operation and its observable behavior.
//
// String may return an error when input validation, dependency calls, or security checks fail.
// String does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s LintSeverity) String() string {
	switch s {
	case LintInfo:
		return "INFO"
	case LintLow:
		return "LOW"
	case LintHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// LintWarning defines a public type used by goOnboard APIs.
//
// LintWarning instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LintWarning struct {
	Code     string
	Severity LintSeverity
	Message  string
}

// LintWarnings defines a public type used by goOnboard APIs.
//
// LintWarnings instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LintWarnings []LintWarning

// Codes describes the codes operation and its observable behavior.
//
// Codes may return an error when input validation, dependency calls, or security checks fail.
// Codes does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (ws LintWarnings) Codes() []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Code)
	}
	return out
}

// BySeverity describes the byseverity operation and its observable behavior.
//
// BySeverity may return an error when input validation, dependency calls, or security checks fail.
// BySeverity does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (ws LintWarnings) BySeverity(min LintSeverity) LintWarnings {
	out := make(LintWarnings, 0, len(ws))
	for _, w := range ws {
		if w.Severity >= min {
			out = append(out, w)
		}
	}
	return out
}

// AsError describes the aserror operation and its observable behavior.
//
// AsError may return an error when input validation, dependency calls, or security checks fail.
// AsError does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (ws LintWarnings) AsError(min LintSeverity) error {
	offenders := ws.BySeverity(min)
	if len(offenders) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("config lint: ")
	for i, w := range offenders {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(w.Code)
	}
	return errors.New(b.String())
}

// Lint reports questionable-but-valid settings. Unlike [Config.Validate] it
// never blocks construction; callers decide what to do with the warnings.
func (c *Config) Lint() LintWarnings {
	var ws LintWarnings

	if c.SetupFlow.RedirectBase != "" && strings.HasPrefix(c.SetupFlow.RedirectBase, "http://") {
		ws = append(ws, LintWarning{
			Code:     "insecure_redirect",
			Severity: LintHigh,
			Message:  "SetupFlow RedirectBase uses plain http; the auth token rides the query string",
		})
	}
	if c.Backend.BaseURL != "" && strings.HasPrefix(c.Backend.BaseURL, "http://") {
		ws = append(ws, LintWarning{
			Code:     "insecure_backend",
			Severity: LintHigh,
			Message:  "Backend BaseURL uses plain http; the auth token rides a request header",
		})
	}
	if c.Cache.ValidationTTL > 24*time.Hour {
		ws = append(ws, LintWarning{
			Code:     "validation_ttl_long",
			Severity: LintLow,
			Message:  "Cache ValidationTTL exceeds 24h; revoked accounts stay trusted that long",
		})
	}
	if !c.Cache.ClampToTokenExpiry {
		ws = append(ws, LintWarning{
			Code:     "clamp_disabled",
			Severity: LintLow,
			Message:  "Cache ClampToTokenExpiry is off; a cached validation may outlive the auth token",
		})
	}
	if c.Backend.Timeout == 0 {
		ws = append(ws, LintWarning{
			Code:     "timeout_disabled",
			Severity: LintLow,
			Message:  "Backend Timeout is zero; a stalled fetch blocks validation indefinitely",
		})
	}
	if !c.SetupFlow.DisableShare {
		ws = append(ws, LintWarning{
			Code:     "share_not_suppressed",
			Severity: LintLow,
			Message:  "SetupFlow DisableShare is off; share affordances stay active during setup",
		})
	}
	if c.SetupFlow.MaxAttempts == 0 {
		ws = append(ws, LintWarning{
			Code:     "unlimited_attempts",
			Severity: LintInfo,
			Message:  "SetupFlow MaxAttempts is zero; a user can reopen the setup surface forever",
		})
	}
	if !c.Hooks.Enabled {
		ws = append(ws, LintWarning{
			Code:     "hooks_disabled",
			Severity: LintInfo,
			Message:  "Hooks are disabled; validation lifecycle events are not observable",
		})
	}
	if c.Backend.TokenScheme == "" {
		ws = append(ws, LintWarning{
			Code:     "raw_token_scheme",
			Severity: LintInfo,
			Message:  "Backend TokenScheme is empty; the raw token is sent without a scheme",
		})
	}

	return ws
}
