package goOnboard

import (
	"context"
	"testing"

	"github.com/MrEthical07/goOnboard/backend"
)

func TestSetupRequiredObligations(t *testing.T) {
	tests := []struct {
		name   string
		record *backend.UserRecord
		want   bool
	}{
		{
			name:   "nil record imposes nothing",
			record: nil,
			want:   false,
		},
		{
			name:   "empty record",
			record: &backend.UserRecord{},
			want:   false,
		},
		{
			name:   "two factor linking owed",
			record: &backend.UserRecord{MustLinkTwoFactor: true},
			want:   true,
		},
		{
			name:   "profile update owed",
			record: &backend.UserRecord{MustUpdateProfile: true},
			want:   true,
		},
		{
			name:   "agreements pending",
			record: &backend.UserRecord{MustReviewAgreements: []string{"tos-2026"}},
			want:   true,
		},
		{
			name:   "agreements list empty",
			record: &backend.UserRecord{MustReviewAgreements: []string{}},
			want:   false,
		},
		{
			name: "password change forced",
			record: &backend.UserRecord{
				Policy: &backend.Policy{Password: &backend.PasswordPolicy{MustBeChanged: true}},
			},
			want: true,
		},
		{
			name:   "policy without password section",
			record: &backend.UserRecord{Policy: &backend.Policy{}},
			want:   false,
		},
		{
			name: "several obligations at once",
			record: &backend.UserRecord{
				MustLinkTwoFactor: true,
				MustUpdateProfile: true,
			},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fx := newValidatorFixture(t, validatorTestConfig())

			got, err := fx.engine.SetupRequired(context.Background(), tc.record)
			if err != nil {
				t.Fatalf("SetupRequired failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestSetupRequiredSkipFlagOverridesObligations(t *testing.T) {
	fx := newValidatorFixture(t, validatorTestConfig())
	ctx := context.Background()

	if err := fx.engine.SetSkipSetup(ctx, true); err != nil {
		t.Fatalf("SetSkipSetup failed: %v", err)
	}

	got, err := fx.engine.SetupRequired(ctx, obligatedRecord())
	if err != nil {
		t.Fatalf("SetupRequired failed: %v", err)
	}
	if got {
		t.Fatal("expected skip flag to suppress setup")
	}
}

func TestSetSkipSetupFalseRestoresEvaluation(t *testing.T) {
	fx := newValidatorFixture(t, validatorTestConfig())
	ctx := context.Background()

	if err := fx.engine.SetSkipSetup(ctx, true); err != nil {
		t.Fatalf("SetSkipSetup failed: %v", err)
	}
	if err := fx.engine.SetSkipSetup(ctx, false); err != nil {
		t.Fatalf("SetSkipSetup failed: %v", err)
	}

	got, err := fx.engine.SetupRequired(ctx, obligatedRecord())
	if err != nil {
		t.Fatalf("SetupRequired failed: %v", err)
	}
	if !got {
		t.Fatal("expected obligations to count again after clearing the flag")
	}
}

func TestSkipFlagPersistsAcrossEngineInstances(t *testing.T) {
	mr, rdb := newTestRedis(t)
	t.Cleanup(mr.Close)

	build := func() *Engine {
		engine, err := New().
			WithConfig(validatorTestConfig()).
			WithRedis(rdb).
			WithFetcher(&mockFetcher{}).
			WithProfileStore(&recordingProfileStore{}).
			Build()
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		t.Cleanup(engine.Close)
		return engine
	}

	ctx := context.Background()
	if err := build().SetSkipSetup(ctx, true); err != nil {
		t.Fatalf("SetSkipSetup failed: %v", err)
	}

	got, err := build().SetupRequired(ctx, obligatedRecord())
	if err != nil {
		t.Fatalf("SetupRequired failed: %v", err)
	}
	if got {
		t.Fatal("expected persisted skip flag to survive engine restarts")
	}
}

func TestSkipFlagCorruptValueTreatedAsUnset(t *testing.T) {
	fx := newValidatorFixture(t, validatorTestConfig())

	if err := fx.redis.Set("ob:skip_account_setup", "definitely-not-json"); err != nil {
		t.Fatalf("seed corrupt flag: %v", err)
	}

	got, err := fx.engine.SetupRequired(context.Background(), obligatedRecord())
	if err != nil {
		t.Fatalf("SetupRequired failed: %v", err)
	}
	if !got {
		t.Fatal("expected corrupt flag to be ignored")
	}
}
