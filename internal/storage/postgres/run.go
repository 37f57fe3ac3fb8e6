package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"notesync/internal/domain"
)

type RunStore struct {
	db *sqlx.DB
}

func NewRunStore(db *sqlx.DB) *RunStore {
	return &RunStore{db: db}
}

func (s *RunStore) Record(ctx context.Context, run *domain.SyncRun) error {
	query := `
		INSERT INTO sync_runs (outcome, reason, pages, succeeded, failed, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &run.ID, query,
		run.Outcome,
		run.Reason,
		run.Pages,
		run.Succeeded,
		run.Failed,
		run.StartedAt,
		run.FinishedAt,
	)
}

// Latest returns the most recent run, or nil when none was recorded.
func (s *RunStore) Latest(ctx context.Context) (*domain.SyncRun, error) {
	var run domain.SyncRun
	query := `
		SELECT id, outcome, reason, pages, succeeded, failed, started_at, finished_at
		FROM sync_runs
		ORDER BY finished_at DESC, id DESC
		LIMIT 1`

	err := s.db.GetContext(ctx, &run, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}
