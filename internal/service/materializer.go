package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"notesync/internal/domain"
	"notesync/internal/render"
	"notesync/internal/vault"
)

const ackTimeout = 30 * time.Second

type Materializer struct {
	api      NoteAPI
	vault    Vault
	renderer Renderer
	settings SettingsStore
	notes    NoteStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewMaterializer creates a materializer. notes may be nil.
func NewMaterializer(
	api NoteAPI,
	vault Vault,
	renderer Renderer,
	settings SettingsStore,
	notes NoteStore,
	logger *slog.Logger,
) *Materializer {
	return &Materializer{
		api:      api,
		vault:    vault,
		renderer: renderer,
		settings: settings,
		notes:    notes,
		logger:   logger.With("component", "materializer"),
		now:      time.Now,
	}
}

// Materialize fetches one task's note, writes it into the vault and
// acknowledges the outcome upstream. A note that is already gone is not an
// error. Any other failure is acknowledged as a failure and returned.
func (m *Materializer) Materialize(ctx context.Context, taskID, token string) (domain.MaterializeResult, error) {
	var result domain.MaterializeResult

	settings, err := m.settings.Load(ctx)
	if err != nil {
		return result, fmt.Errorf("load settings: %w", err)
	}
	if !settings.Enabled {
		return result, nil
	}
	result.PluginEnabled = true

	note, err := m.api.FetchNoteContent(ctx, taskID, token)
	if err != nil {
		m.ackFailure(ctx, taskID, token, err)
		return result, err
	}
	if !note.Exists() {
		m.logger.Info("task no longer exists", "task_id", taskID)
		return result, nil
	}
	result.TaskExists = true

	path, err := m.write(settings, note)
	if err != nil {
		m.ackFailure(ctx, taskID, token, err)
		return result, fmt.Errorf("materialize task %s: %w", taskID, err)
	}
	result.Path = path
	result.Synced = true

	if err := m.api.AckSuccess(ctx, taskID, token); err != nil {
		m.logger.Warn("ack success failed", "task_id", taskID, "error", err)
	}

	if m.notes != nil {
		entry := &domain.SyncedNote{
			TaskID:    taskID,
			NoteID:    note.ID,
			Title:     note.Title,
			SuperType: note.SuperType,
			Path:      path,
			Tags:      note.Tags,
			SyncedAt:  m.now(),
		}
		if err := m.notes.Record(ctx, entry); err != nil {
			m.logger.Warn("record synced note failed", "task_id", taskID, "error", err)
		}
	}

	m.logger.Debug("note materialized", "task_id", taskID, "path", path)
	return result, nil
}

func (m *Materializer) write(settings *domain.Settings, note *domain.NoteContent) (string, error) {
	title := vault.SanitizeTitle(note.Title)

	var folder string
	switch {
	case note.SuperType == domain.SuperLink:
		folder = vault.Join(settings.RootDir, settings.LinkDir, title)
	case note.AnchoredToLink():
		folder = vault.Join(settings.RootDir, settings.LinkDir, vault.SanitizeTitle(note.RelatedContentTitle))
	default:
		folder = vault.Join(settings.RootDir, settings.RichTextDir)
	}

	if _, err := m.vault.EnsureFolder(folder); err != nil {
		return "", err
	}

	path, err := vault.UniquePath(m.vault, vault.Join(folder, title))
	if err != nil {
		return "", err
	}

	props := note.PropertyMap()
	var frontMatter string
	if note.SuperType == domain.SuperLink {
		frontMatter, err = m.renderer.LinkFrontMatter(props)
	} else {
		frontMatter, err = m.renderer.RichTextFrontMatter(props)
	}
	if err != nil {
		return "", fmt.Errorf("render front matter: %w", err)
	}

	doc := m.renderer.Document(render.Document{
		FrontMatter: frontMatter,
		Body:        note.Text,
		Tags:        note.Tags,
	})

	if err := m.vault.WriteFile(path, []byte(doc)); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// ackFailure reports a failed task. It still runs when ctx was cancelled and
// its own failure is only logged.
func (m *Materializer) ackFailure(ctx context.Context, taskID, token string, cause error) {
	ackCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ackTimeout)
	defer cancel()

	if err := m.api.AckFailure(ackCtx, taskID, token, cause.Error()); err != nil {
		m.logger.Warn("ack failure failed", "task_id", taskID, "error", err)
	}
}
