package publisher

import (
	"context"
	"log/slog"

	"notesync/internal/domain"
)

// Log writes notices to a structured logger. Failed and aborted runs and
// expired logins are logged as warnings.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Notify(ctx context.Context, notice domain.Notice) error {
	attrs := []any{"kind", notice.Kind}
	if notice.Path != "" {
		attrs = append(attrs, "path", notice.Path)
	}
	if st := notice.Stats; st != nil {
		attrs = append(attrs,
			"outcome", st.Outcome,
			"pages", st.Pages,
			"succeeded", st.Succeeded,
			"failed", st.Failed,
		)
	}

	level := slog.LevelInfo
	switch notice.Kind {
	case domain.NoticeSyncAborted, domain.NoticeSyncFailed, domain.NoticeLoginExpired, domain.NoticeLoginRequired:
		level = slog.LevelWarn
	case domain.NoticeNoteSynced:
		level = slog.LevelDebug
	}

	l.logger.Log(ctx, level, notice.Message, attrs...)
	return nil
}
