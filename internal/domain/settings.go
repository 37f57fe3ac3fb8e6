package domain

import "time"

const (
	DefaultRootDir     = "NoteSync"
	DefaultLinkDir     = "Links"
	DefaultRichTextDir = "Notes"

	DefaultSyncIntervalMinutes = 30
)

// Settings is the persisted state shared by the sync run, the account
// validator and the login flow.
type Settings struct {
	Token     string `db:"token" yaml:"token"`
	UserID    string `db:"user_id" yaml:"user_id"`
	UserName  string `db:"user_name" yaml:"user_name"`
	Avatar    string `db:"avatar" yaml:"avatar"`
	SessionID string `db:"session_id" yaml:"session_id"`

	RootDir     string `db:"root_dir" yaml:"root_dir"`
	LinkDir     string `db:"link_dir" yaml:"link_dir"`
	RichTextDir string `db:"rich_text_dir" yaml:"rich_text_dir"`

	SyncIntervalMinutes int       `db:"sync_interval_minutes" yaml:"sync_interval_minutes"`
	LastSyncAt          time.Time `db:"last_sync_at" yaml:"last_sync_at"`
	Enabled             bool      `db:"enabled" yaml:"enabled"`
	Syncing             bool      `db:"syncing" yaml:"syncing"`
}

// NewSettings returns settings with default directories and interval.
func NewSettings() *Settings {
	return &Settings{
		RootDir:             DefaultRootDir,
		LinkDir:             DefaultLinkDir,
		RichTextDir:         DefaultRichTextDir,
		SyncIntervalMinutes: DefaultSyncIntervalMinutes,
		Enabled:             true,
	}
}

// SyncInterval returns the configured interval between timed runs.
func (s *Settings) SyncInterval() time.Duration {
	return time.Duration(s.SyncIntervalMinutes) * time.Minute
}

// HasCredential reports whether a token is stored.
func (s *Settings) HasCredential() bool {
	return s.Token != ""
}

// ClearCredential drops the token, the bound identity and the session,
// forcing a new login.
func (s *Settings) ClearCredential() {
	s.Token = ""
	s.UserID = ""
	s.UserName = ""
	s.Avatar = ""
	s.SessionID = ""
}

// Correction describes a settings field replaced by its default.
type Correction struct {
	Field string
	Value string
}

// ApplyDefaults replaces empty directory names and a non-positive interval
// with defaults and returns what it changed.
func (s *Settings) ApplyDefaults() []Correction {
	var fixed []Correction
	fix := func(field string, v *string, def string) {
		if *v == "" {
			*v = def
			fixed = append(fixed, Correction{Field: field, Value: def})
		}
	}
	fix("root_dir", &s.RootDir, DefaultRootDir)
	fix("link_dir", &s.LinkDir, DefaultLinkDir)
	fix("rich_text_dir", &s.RichTextDir, DefaultRichTextDir)

	if s.SyncIntervalMinutes <= 0 {
		s.SyncIntervalMinutes = DefaultSyncIntervalMinutes
		fixed = append(fixed, Correction{Field: "sync_interval_minutes", Value: "30"})
	}
	return fixed
}
