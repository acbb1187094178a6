package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCurrentUserSendsTokenAndDecodesRecord(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"user": {"id": 42, "userRoleId": 7, "auth_token": "tok-new", "email": "a@b.c", "legacy": false},
			"region": "eu-1",
			"mustLinkTwoFactor": true,
			"mustReviewAgreements": ["tos-2026"],
			"policy": {"password": {"mustBeChanged": true}}
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{
		BaseURL:     srv.URL,
		UserPath:    "/api/v1/user/current",
		TokenScheme: "Bearer",
	}, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	rec, err := client.CurrentUser(context.Background(), "tok-cached")
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}

	if gotPath != "/api/v1/user/current" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotAuth != "Bearer tok-cached" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if rec.User == nil || rec.User.ID != 42 || rec.User.AuthToken != "tok-new" {
		t.Fatalf("unexpected user block: %+v", rec.User)
	}
	if rec.Region != "eu-1" || !rec.MustLinkTwoFactor {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if len(rec.MustReviewAgreements) != 1 || rec.MustReviewAgreements[0] != "tos-2026" {
		t.Fatalf("unexpected agreements: %v", rec.MustReviewAgreements)
	}
	if !rec.PasswordMustChange() {
		t.Fatal("expected password change flag")
	}
}

func TestCurrentUserEmptyRecordLeavesNestingNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	rec, err := client.CurrentUser(context.Background(), "")
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if rec.User != nil || rec.Policy != nil || rec.MustReviewAgreements != nil {
		t.Fatalf("expected empty record to stay nil, got %+v", rec)
	}
	if rec.PasswordMustChange() {
		t.Fatal("expected no password obligation on empty record")
	}
	if rec.Token() != "" {
		t.Fatalf("expected empty token, got %q", rec.Token())
	}
}

func TestCurrentUserNon2xxIsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.CurrentUser(context.Background(), "expired")
	if !errors.Is(err, ErrStatus) {
		t.Fatalf("expected ErrStatus, got %v", err)
	}
}

func TestCurrentUserTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.CurrentUser(context.Background(), "tok")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCurrentUserHonorsContextCancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	done := make(chan error, 1)
	go func() {
		_, err := client.CurrentUser(ctx, "tok")
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable on cancellation, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected CurrentUser to return after cancellation")
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}, nil); err == nil {
		t.Fatal("expected error for missing base URL")
	}
}

func TestRecordAccessorsNilSafe(t *testing.T) {
	var rec *UserRecord
	if rec.PasswordMustChange() {
		t.Fatal("expected false on nil record")
	}
	if rec.Token() != "" {
		t.Fatal("expected empty token on nil record")
	}

	rec = &UserRecord{Policy: &Policy{}}
	if rec.PasswordMustChange() {
		t.Fatal("expected false when password policy absent")
	}
}
