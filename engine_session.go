package goOnboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/MrEthical07/goOnboard/backend"
)

// UpdateLocalSession describes the updatelocalsession operation and its observable behavior.
//
// It projects the update into a [UserProfile] for the host's profile store
// and persists the session slice, in parallel. Both writes are always
// attempted; their failures are joined, so a partial sync surfaces every
// cause at once.
//
// UpdateLocalSession may return an error when input validation, dependency calls, or security checks fail.
// UpdateLocalSession does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) UpdateLocalSession(ctx context.Context, update SessionUpdate) error {
	if err := e.ready(); err != nil {
		return err
	}

	profile := e.deriveProfile(update)
	payload, err := json.Marshal(LocalSession{
		UserRoleID: update.UserRoleID,
		AuthToken:  update.AuthToken,
		Email:      update.Email,
	})
	if err != nil {
		return fmt.Errorf("encoding local session: %v", err)
	}

	var wg sync.WaitGroup
	results := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		results[0] = e.store.Set(ctx, e.config.Storage.SessionKey, payload)
	}()
	go func() {
		defer wg.Done()
		results[1] = e.profiles.Save(ctx, ProfileUpdate{Email: update.Email, Profile: profile})
	}()
	wg.Wait()

	if err := errors.Join(results[0], results[1]); err != nil {
		e.metricInc(MetricSessionSyncFailure)
		return err
	}

	e.metricInc(MetricSessionSyncSuccess)
	e.emitHook(ctx, hookEventSessionSynced, true, nil, func() map[string]string {
		return map[string]string{
			"profile_projected": fmt.Sprintf("%t", profile != nil),
		}
	})
	return nil
}

// deriveProfile projects the native profile the host's profile store
// receives. Accounts without an ID or region produce no profile at all
// rather than a partial one.
func (e *Engine) deriveProfile(update SessionUpdate) *UserProfile {
	if update.ID == 0 || update.Region == "" {
		e.logger.Warn("account fields incomplete, skipping profile projection",
			zap.Int64("id", update.ID),
			zap.String("region", update.Region),
		)
		return nil
	}
	return &UserProfile{
		Type:   ProfileTypeNative,
		ID:     update.ID,
		Region: update.Region,
	}
}

// readLocalSession loads the persisted session slice. An absent or
// unreadable slot yields a zero [LocalSession]; the validator treats both
// the same way a fresh install is treated.
func (e *Engine) readLocalSession(ctx context.Context) (LocalSession, error) {
	var sess LocalSession

	data, ok, err := e.store.Get(ctx, e.config.Storage.SessionKey)
	if err != nil {
		return sess, err
	}
	if !ok {
		return sess, nil
	}
	if err := json.Unmarshal(data, &sess); err != nil {
		e.logger.Warn("stored session unreadable, treating as absent", zap.Error(err))
		return LocalSession{}, nil
	}
	return sess, nil
}

func sessionUpdateFromRecord(record *backend.UserRecord) SessionUpdate {
	if record == nil {
		return SessionUpdate{}
	}
	update := SessionUpdate{Region: record.Region}
	if record.User != nil {
		update.ID = record.User.ID
		update.UserRoleID = record.User.UserRoleID
		update.AuthToken = record.User.AuthToken
		update.Email = record.User.Email
	}
	return update
}
