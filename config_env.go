package goOnboard

import (
	"os"
	"strconv"
	"time"
)

// LoadEnvConfig returns [DefaultConfig] overlaid with ONBOARD_* environment
// variables. Unset or unparseable variables keep the default, so a partial
// environment never produces an invalid Config on its own.
//
// Recognized variables:
//
//	ONBOARD_BACKEND_BASE_URL     Backend.BaseURL
//	ONBOARD_BACKEND_USER_PATH    Backend.UserPath
//	ONBOARD_BACKEND_TIMEOUT      Backend.Timeout (Go duration)
//	ONBOARD_SETUP_REDIRECT_BASE  SetupFlow.RedirectBase
//	ONBOARD_SETUP_MAX_ATTEMPTS   SetupFlow.MaxAttempts
//	ONBOARD_STORAGE_PREFIX       Storage.RedisPrefix
//	ONBOARD_VALIDATION_TTL       Cache.ValidationTTL (Go duration)
func LoadEnvConfig() Config {
	cfg := DefaultConfig()

	cfg.Backend.BaseURL = getEnv("ONBOARD_BACKEND_BASE_URL", cfg.Backend.BaseURL)
	cfg.Backend.UserPath = getEnv("ONBOARD_BACKEND_USER_PATH", cfg.Backend.UserPath)
	cfg.Backend.Timeout = getEnvDuration("ONBOARD_BACKEND_TIMEOUT", cfg.Backend.Timeout)
	cfg.SetupFlow.RedirectBase = getEnv("ONBOARD_SETUP_REDIRECT_BASE", cfg.SetupFlow.RedirectBase)
	cfg.SetupFlow.MaxAttempts = getEnvInt("ONBOARD_SETUP_MAX_ATTEMPTS", cfg.SetupFlow.MaxAttempts)
	cfg.Storage.RedisPrefix = getEnv("ONBOARD_STORAGE_PREFIX", cfg.Storage.RedisPrefix)
	cfg.Cache.ValidationTTL = getEnvDuration("ONBOARD_VALIDATION_TTL", cfg.Cache.ValidationTTL)

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
