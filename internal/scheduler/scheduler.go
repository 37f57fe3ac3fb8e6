package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"notesync/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

type SettingsLoader interface {
	Load(ctx context.Context) (*domain.Settings, error)
}

// Scheduler checks on every tick whether a sync run is due and starts it in
// the background. Manual triggers skip the interval check but still go
// through the syncer's single-flight guard.
type Scheduler struct {
	syncer   Syncer
	settings SettingsLoader
	tick     time.Duration
	logger   *slog.Logger
	now      func() time.Time

	trigger chan struct{}
	wg      sync.WaitGroup
}

func NewScheduler(syncer Syncer, settings SettingsLoader, tick time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		settings: settings,
		tick:     tick,
		logger:   logger.With("component", "scheduler"),
		now:      time.Now,
		trigger:  make(chan struct{}, 1),
	}
}

// Trigger requests a run. Requests made while one is pending are merged.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Due reports whether a timed run should start.
func Due(st *domain.Settings, now time.Time) bool {
	if !st.Enabled || st.Syncing || !st.HasCredential() {
		return false
	}
	return now.Sub(st.LastSyncAt) >= st.SyncInterval()
}

// Start blocks until ctx is done, then waits for a running sync to return.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "tick", s.tick)

	s.check(ctx)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		case <-s.trigger:
			s.logger.Info("manual sync requested")
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) check(ctx context.Context) {
	st, err := s.settings.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load settings", "error", err)
		return
	}
	if !Due(st, s.now()) {
		return
	}
	s.runSync(ctx)
}

func (s *Scheduler) runSync(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		stats, err := s.syncer.Sync(ctx)
		if err != nil {
			s.logger.Error("sync failed", "error", err)
			return
		}
		s.logger.Debug("sync returned", "outcome", stats.Outcome)
	}()
}
