package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"notesync/internal/domain"
)

const settingsColumns = `token, user_id, user_name, avatar, session_id,
	root_dir, link_dir, rich_text_dir,
	sync_interval_minutes, last_sync_at, enabled, syncing`

// SettingsStore keeps one settings row per profile.
type SettingsStore struct {
	db      *sqlx.DB
	tm      *TransactionManager
	profile string
}

func NewSettingsStore(db *sqlx.DB, tm *TransactionManager, profile string) *SettingsStore {
	return &SettingsStore{db: db, tm: tm, profile: profile}
}

// Load returns the stored settings, or defaults for a new profile.
func (s *SettingsStore) Load(ctx context.Context) (*domain.Settings, error) {
	return s.get(ctx, GetExecutor(ctx, s.db), false)
}

// Update locks the profile row, applies fn and writes the result back in one
// transaction.
func (s *SettingsStore) Update(ctx context.Context, fn func(st *domain.Settings) error) error {
	return s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := GetExecutor(txCtx, s.db)

		st, err := s.get(txCtx, exec, true)
		if err != nil {
			return err
		}
		if err := fn(st); err != nil {
			return err
		}
		return s.put(txCtx, exec, st)
	})
}

func (s *SettingsStore) get(ctx context.Context, q sqlx.QueryerContext, forUpdate bool) (*domain.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE profile = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var st domain.Settings
	err := sqlx.GetContext(ctx, q, &st, query, s.profile)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &st, nil
}

func (s *SettingsStore) put(ctx context.Context, exec sqlx.ExecerContext, st *domain.Settings) error {
	query := `
		INSERT INTO settings (profile, ` + settingsColumns + `, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
		ON CONFLICT (profile) DO UPDATE SET
			token = EXCLUDED.token,
			user_id = EXCLUDED.user_id,
			user_name = EXCLUDED.user_name,
			avatar = EXCLUDED.avatar,
			session_id = EXCLUDED.session_id,
			root_dir = EXCLUDED.root_dir,
			link_dir = EXCLUDED.link_dir,
			rich_text_dir = EXCLUDED.rich_text_dir,
			sync_interval_minutes = EXCLUDED.sync_interval_minutes,
			last_sync_at = EXCLUDED.last_sync_at,
			enabled = EXCLUDED.enabled,
			syncing = EXCLUDED.syncing,
			updated_at = EXCLUDED.updated_at`

	_, err := exec.ExecContext(ctx, query,
		s.profile,
		st.Token,
		st.UserID,
		st.UserName,
		st.Avatar,
		st.SessionID,
		st.RootDir,
		st.LinkDir,
		st.RichTextDir,
		st.SyncIntervalMinutes,
		st.LastSyncAt,
		st.Enabled,
		st.Syncing,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
