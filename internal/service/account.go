package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"notesync/internal/credential"
	"notesync/internal/domain"
)

type AccountService struct {
	api      NoteAPI
	settings SettingsStore
	logger   *slog.Logger
	now      func() time.Time
}

func NewAccountService(api NoteAPI, settings SettingsStore, logger *slog.Logger) *AccountService {
	return &AccountService{
		api:      api,
		settings: settings,
		logger:   logger.With("component", "account"),
		now:      time.Now,
	}
}

// Validate checks the credential locally, then asks the service whether the
// integration is still bound. Any invalid result clears the stored
// credential. Remote failures count as invalid and are not retried.
func (a *AccountService) Validate(ctx context.Context, token, sessionID string) (domain.AccountStatus, error) {
	var status domain.AccountStatus

	cred := credential.Inspect(token, a.now())
	if cred.Valid() {
		integration, err := a.api.CheckIntegration(ctx, sessionID, token)
		if err != nil {
			a.logger.Warn("integration check failed", "error", err)
		} else {
			status.Valid = integration.Valid
			status.FailedTaskCount = integration.FailedTaskCount
		}
	} else {
		a.logger.Info("stored credential rejected",
			"format", cred.Format,
			"unexpired", cred.UnExpired,
			"expires_at", cred.ExpiresAt,
		)
	}

	if !status.Valid {
		if err := a.Invalidate(ctx); err != nil {
			return status, err
		}
	}
	return status, nil
}

// Invalidate clears the credential, identity and session.
func (a *AccountService) Invalidate(ctx context.Context) error {
	err := a.settings.Update(ctx, func(s *domain.Settings) error {
		s.ClearCredential()
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	a.logger.Info("credential cleared, login required")
	return nil
}

// Unbind revokes the integration remotely and forgets the credential.
func (a *AccountService) Unbind(ctx context.Context) error {
	settings, err := a.settings.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if !settings.HasCredential() {
		return domain.ErrNoCredential
	}

	if err := a.api.Unbind(ctx, settings.Token); err != nil {
		return err
	}
	return a.Invalidate(ctx)
}

// RetryFailed asks the service to re-queue tasks acknowledged as failed.
func (a *AccountService) RetryFailed(ctx context.Context) error {
	settings, err := a.settings.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if !settings.HasCredential() {
		return domain.ErrNoCredential
	}
	return a.api.RetryFailed(ctx, settings.Token)
}
