package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrUnavailable is returned when the backend cannot be reached.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrStatus is returned when the backend answers with a non-2xx status.
	ErrStatus = errors.New("backend rejected request")
)

const defaultTimeout = 30 * time.Second

// Config controls how [Client] reaches the backend. Zero-value optional
// fields fall back to defaults.
type Config struct {
	BaseURL     string
	UserPath    string
	TokenHeader string
	TokenScheme string
	Timeout     time.Duration
}

// Client fetches user records over HTTP.
type Client struct {
	baseURL     *url.URL
	userPath    string
	tokenHeader string
	tokenScheme string
	http        *http.Client
	logger      *zap.Logger
}

// NewClient creates a backend [Client]. cfg.BaseURL is required; logger may
// be nil.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("backend base URL is required")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend base URL: %v", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	userPath := cfg.UserPath
	if userPath == "" {
		userPath = "/api/v1/user/current"
	}
	tokenHeader := cfg.TokenHeader
	if tokenHeader == "" {
		tokenHeader = "Authorization"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:     base,
		userPath:    userPath,
		tokenHeader: tokenHeader,
		tokenScheme: cfg.TokenScheme,
		http:        &http.Client{Timeout: timeout},
		logger:      logger,
	}, nil
}

// CurrentUser fetches the record of the account the token belongs to. An
// empty token is sent as-is; the backend answers for anonymous callers with
// whatever status it sees fit, which surfaces here as [ErrStatus].
func (c *Client) CurrentUser(ctx context.Context, authToken string) (*UserRecord, error) {
	endpoint := c.baseURL.JoinPath(c.userPath).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.tokenHeader, c.headerValue(authToken))

	c.logger.Debug("fetching current user", zap.String("url", endpoint))

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("current user request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("current user request rejected", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrStatus, resp.StatusCode)
	}

	var record UserRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	return &record, nil
}

func (c *Client) headerValue(authToken string) string {
	if c.tokenScheme == "" {
		return authToken
	}
	return c.tokenScheme + " " + strings.TrimSpace(authToken)
}
