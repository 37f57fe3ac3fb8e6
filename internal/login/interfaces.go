package login

import (
	"context"

	"notesync/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type SessionAPI interface {
	IssueSession(ctx context.Context) (string, error)
	PollLoginStatus(ctx context.Context, sessionID string) (*domain.LoginStatus, error)
}

type SettingsStore interface {
	Update(ctx context.Context, fn func(*domain.Settings) error) error
}

type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

type Notifier interface {
	Notify(ctx context.Context, notice domain.Notice) error
}

// Presenter shows the pending session to the user and asks whether an
// expired session should be replaced.
type Presenter interface {
	ShowSession(ctx context.Context, sessionID, payload string) error
	OfferRetry(ctx context.Context, result *Result) bool
}
