package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"notesync/internal/domain"
	"notesync/internal/render"
)

// SettingsStore persists settings. Update is a read-modify-persist sequence;
// an error returned by fn aborts it without saving.
type SettingsStore interface {
	Load(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, fn func(s *domain.Settings) error) error
}

// NoteAPI is the part of the note service used by sync and account
// maintenance.
type NoteAPI interface {
	CheckIntegration(ctx context.Context, sessionID, token string) (*domain.IntegrationStatus, error)
	ListPendingTasks(ctx context.Context, token string) (*domain.TaskPage, error)
	FetchNoteContent(ctx context.Context, id, token string) (*domain.NoteContent, error)
	AckSuccess(ctx context.Context, id, token string) error
	AckFailure(ctx context.Context, id, token, description string) error
	Unbind(ctx context.Context, token string) error
	RetryFailed(ctx context.Context, token string) error
}

type Vault interface {
	EnsureFolder(p string) (domain.FolderResult, error)
	Exists(p string) (bool, error)
	WriteFile(p string, data []byte) error
}

type Renderer interface {
	LinkFrontMatter(props map[string]any) (string, error)
	RichTextFrontMatter(props map[string]any) (string, error)
	Document(doc render.Document) string
}

type NoteStore interface {
	Record(ctx context.Context, note *domain.SyncedNote) error
}

type RunStore interface {
	Record(ctx context.Context, run *domain.SyncRun) error
}

type Notifier interface {
	Notify(ctx context.Context, notice domain.Notice) error
}

type AccountValidator interface {
	Validate(ctx context.Context, token, sessionID string) (domain.AccountStatus, error)
	Invalidate(ctx context.Context) error
}

type NoteMaterializer interface {
	Materialize(ctx context.Context, taskID, token string) (domain.MaterializeResult, error)
}
