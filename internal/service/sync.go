package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"notesync/internal/config"
	"notesync/internal/domain"
	"notesync/internal/vault"
)

// SyncService drives one sync run at a time: pre-flight account check, then
// pages of pending tasks handed to the materializer one by one.
type SyncService struct {
	api          NoteAPI
	accounts     AccountValidator
	materializer NoteMaterializer
	vault        Vault
	settings     SettingsStore
	runs         RunStore
	notifier     Notifier
	logger       *slog.Logger
	config       config.SyncConfig

	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
	running atomic.Bool
}

// NewSyncService creates the orchestrator. runs and notifier may be nil.
func NewSyncService(
	api NoteAPI,
	accounts AccountValidator,
	materializer NoteMaterializer,
	vault Vault,
	settings SettingsStore,
	runs RunStore,
	notifier Notifier,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		api:          api,
		accounts:     accounts,
		materializer: materializer,
		vault:        vault,
		settings:     settings,
		runs:         runs,
		notifier:     notifier,
		logger:       logger.With("component", "sync"),
		config:       cfg,
		now:          time.Now,
		sleep:        sleepContext,
	}
}

// Sync runs one sync. Without a credential, or while another run is in
// progress, it returns skipped stats and makes no remote call. Once started,
// the in-progress flag is always cleared and the last-sync time persisted.
func (s *SyncService) Sync(ctx context.Context) (*domain.SyncStats, error) {
	stats := &domain.SyncStats{
		Outcome:   domain.OutcomeSkipped,
		StartedAt: s.now(),
	}

	if !s.running.CompareAndSwap(false, true) {
		stats.Reason = domain.ErrSyncInProgress.Error()
		s.logger.Debug("sync skipped", "reason", stats.Reason)
		return stats, nil
	}
	defer s.running.Store(false)

	var (
		settings    domain.Settings
		corrections []domain.Correction
	)
	err := s.settings.Update(ctx, func(st *domain.Settings) error {
		if !st.HasCredential() {
			return domain.ErrNoCredential
		}
		if st.Syncing {
			return domain.ErrSyncInProgress
		}
		corrections = st.ApplyDefaults()
		st.Syncing = true
		settings = *st
		return nil
	})
	switch {
	case errors.Is(err, domain.ErrNoCredential), errors.Is(err, domain.ErrSyncInProgress):
		stats.Reason = err.Error()
		s.logger.Debug("sync skipped", "reason", stats.Reason)
		return stats, nil
	case err != nil:
		return nil, fmt.Errorf("mark sync in progress: %w", err)
	}

	s.logger.Info("starting sync",
		"root_dir", settings.RootDir,
		"item_delay", s.config.ItemDelay,
	)
	s.reportCorrections(ctx, corrections)

	runErr := s.safeRun(ctx, &settings, stats)
	if runErr != nil {
		stats.Outcome = domain.OutcomeFailed
		stats.Reason = runErr.Error()
	}
	stats.Duration = s.now().Sub(stats.StartedAt)

	finishErr := s.finish(ctx, stats)
	s.report(ctx, stats)

	if err := errors.Join(runErr, finishErr); err != nil {
		return stats, fmt.Errorf("sync: %w", err)
	}
	return stats, nil
}

// ResetInProgress clears a stale in-progress flag left by a previous process.
func (s *SyncService) ResetInProgress(ctx context.Context) error {
	return s.settings.Update(ctx, func(st *domain.Settings) error {
		st.Syncing = false
		return nil
	})
}

// safeRun turns a panic inside the run into an error so the exit
// bookkeeping still happens.
func (s *SyncService) safeRun(ctx context.Context, settings *domain.Settings, stats *domain.SyncStats) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("sync panicked", "panic", r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.run(ctx, settings, stats)
}

func (s *SyncService) run(ctx context.Context, settings *domain.Settings, stats *domain.SyncStats) error {
	for _, dir := range []string{
		settings.RootDir,
		vault.Join(settings.RootDir, settings.LinkDir),
		vault.Join(settings.RootDir, settings.RichTextDir),
	} {
		if _, err := s.vault.EnsureFolder(dir); err != nil {
			return err
		}
	}

	account, err := s.accounts.Validate(ctx, settings.Token, settings.SessionID)
	if err != nil {
		return fmt.Errorf("validate account: %w", err)
	}
	stats.FailedTasks = account.FailedTaskCount
	if !account.Valid {
		s.loginRequired(ctx)
		s.abort(stats, "account or integration is no longer valid")
		return nil
	}

	for {
		current, err := s.settings.Load(ctx)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		if !current.Enabled {
			s.abort(stats, "sync disabled")
			return nil
		}

		page, err := s.api.ListPendingTasks(ctx, settings.Token)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Error("fetch task page failed", "page", stats.Pages+1, "error", err)
			s.abort(stats, "fetch task page: "+err.Error())
			return nil
		}
		stats.Pages++

		if !page.Valid {
			if err := s.accounts.Invalidate(ctx); err != nil {
				s.logger.Warn("clear revoked credential failed", "error", err)
			}
			s.loginRequired(ctx)
			s.abort(stats, "integration binding revoked")
			return nil
		}

		s.logger.Debug("fetched task page",
			"page", stats.Pages,
			"tasks", len(page.TaskIDs),
			"limit", page.Limit,
		)

		if len(page.TaskIDs) == 0 {
			stats.Outcome = domain.OutcomeCompleted
			return nil
		}

		reason, err := s.processPage(ctx, settings.Token, page.TaskIDs, stats)
		if err != nil {
			return err
		}
		if reason != "" {
			s.abort(stats, reason)
			return nil
		}

		if len(page.TaskIDs) != page.Limit {
			stats.Outcome = domain.OutcomeCompleted
			return nil
		}
	}
}

// processPage materializes tasks in order and pauses after every attempt. It
// returns a non-empty reason when the page must not be continued.
func (s *SyncService) processPage(ctx context.Context, token string, taskIDs []string, stats *domain.SyncStats) (string, error) {
	for _, id := range taskIDs {
		var stop string

		result, err := s.materializer.Materialize(ctx, id, token)
		switch {
		case err != nil:
			stats.Failed++
			s.logger.Warn("task failed", "task_id", id, "error", err)
		case !result.PluginEnabled:
			stop = "sync disabled"
		case !result.TaskExists:
			stop = "task " + id + " no longer exists"
		case result.Synced:
			stats.Succeeded++
			s.notify(ctx, domain.Notice{Kind: domain.NoticeNoteSynced, Message: "note synced", Path: result.Path})
		default:
			stop = "task " + id + " was not synced"
		}

		if err := s.sleep(ctx, s.config.ItemDelay); err != nil {
			return "", err
		}
		if stop != "" {
			return stop, nil
		}
	}
	return "", nil
}

func (s *SyncService) abort(stats *domain.SyncStats, reason string) {
	stats.Outcome = domain.OutcomeAborted
	stats.Reason = reason
}

// finish persists the run's bookkeeping. It ignores cancellation of ctx.
func (s *SyncService) finish(ctx context.Context, stats *domain.SyncStats) error {
	ctx = context.WithoutCancel(ctx)
	finishedAt := s.now()

	err := s.settings.Update(ctx, func(st *domain.Settings) error {
		st.LastSyncAt = finishedAt
		st.Syncing = false
		return nil
	})
	if err != nil {
		s.logger.Error("persist sync state failed", "error", err)
		err = fmt.Errorf("persist sync state: %w", err)
	}

	if s.runs != nil {
		if recErr := s.runs.Record(ctx, domain.RunFromStats(stats, finishedAt)); recErr != nil {
			s.logger.Warn("record sync run failed", "error", recErr)
		}
	}
	return err
}

func (s *SyncService) report(ctx context.Context, stats *domain.SyncStats) {
	s.logger.Info("sync finished",
		"outcome", stats.Outcome,
		"reason", stats.Reason,
		"pages", stats.Pages,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"failed_tasks", stats.FailedTasks,
		"duration", stats.Duration,
	)

	kind := domain.NoticeSyncCompleted
	switch stats.Outcome {
	case domain.OutcomeAborted:
		kind = domain.NoticeSyncAborted
	case domain.OutcomeFailed:
		kind = domain.NoticeSyncFailed
	}
	s.notify(ctx, domain.Notice{Kind: kind, Message: Summary(stats), Stats: stats})
}

func (s *SyncService) reportCorrections(ctx context.Context, corrections []domain.Correction) {
	for _, c := range corrections {
		s.logger.Warn("settings value replaced by default", "field", c.Field, "value", c.Value)
		s.notify(ctx, domain.Notice{
			Kind:    domain.NoticeSettingsCorrected,
			Message: fmt.Sprintf("%s was empty, using %q", c.Field, c.Value),
		})
	}
}

func (s *SyncService) loginRequired(ctx context.Context) {
	s.notify(ctx, domain.Notice{
		Kind:    domain.NoticeLoginRequired,
		Message: "credential is no longer valid, log in again",
	})
}

func (s *SyncService) notify(ctx context.Context, notice domain.Notice) {
	if s.notifier == nil {
		return
	}
	notice.Timestamp = s.now().UTC()
	if err := s.notifier.Notify(context.WithoutCancel(ctx), notice); err != nil {
		s.logger.Warn("notify failed", "kind", notice.Kind, "error", err)
	}
}

// Summary renders the user-facing status line of a run.
func Summary(stats *domain.SyncStats) string {
	var sb strings.Builder
	switch stats.Outcome {
	case domain.OutcomeSkipped:
		return "sync skipped: " + stats.Reason
	case domain.OutcomeFailed:
		sb.WriteString("sync failed: " + stats.Reason)
	case domain.OutcomeAborted:
		sb.WriteString("sync aborted: " + stats.Reason)
	}

	if sb.Len() > 0 {
		sb.WriteString("; ")
	}
	if stats.Processed() == 0 {
		sb.WriteString("no notes processed")
	} else {
		fmt.Fprintf(&sb, "%d notes synced", stats.Succeeded)
		if stats.Failed > 0 {
			fmt.Fprintf(&sb, ", %d failed", stats.Failed)
		}
	}
	if stats.FailedTasks > 0 {
		fmt.Fprintf(&sb, " (%d earlier failures can be retried)", stats.FailedTasks)
	}
	return sb.String()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
