package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"notesync/internal/domain"
)

// NoteStore is the ledger of materialized notes, keyed by task id.
type NoteStore struct {
	db *sqlx.DB
}

func NewNoteStore(db *sqlx.DB) *NoteStore {
	return &NoteStore{db: db}
}

func (s *NoteStore) Record(ctx context.Context, note *domain.SyncedNote) error {
	query := `
		INSERT INTO synced_notes (task_id, note_id, title, super_type, path, tags, synced_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (task_id) DO UPDATE SET
			note_id = EXCLUDED.note_id,
			title = EXCLUDED.title,
			super_type = EXCLUDED.super_type,
			path = EXCLUDED.path,
			tags = EXCLUDED.tags,
			synced_at = EXCLUDED.synced_at`

	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		note.TaskID,
		note.NoteID,
		note.Title,
		note.SuperType,
		note.Path,
		pq.Array(tags),
		note.SyncedAt,
	)
	return err
}

type noteRow struct {
	domain.SyncedNote
	Tags pq.StringArray `db:"tags"`
}

// Get returns the ledger entry of a task, or nil.
func (s *NoteStore) Get(ctx context.Context, taskID string) (*domain.SyncedNote, error) {
	var row noteRow
	query := `
		SELECT task_id, note_id, title, super_type, path, tags, synced_at
		FROM synced_notes
		WHERE task_id = $1`

	err := s.db.GetContext(ctx, &row, query, taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	note := row.SyncedNote
	note.Tags = []string(row.Tags)
	return &note, nil
}

// Count returns the number of notes in the ledger.
func (s *NoteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM synced_notes`)
	return n, err
}
