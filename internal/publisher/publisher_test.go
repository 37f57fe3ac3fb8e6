package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notesync/internal/domain"
)

type recorder struct {
	notices []domain.Notice
	err     error
}

func (r *recorder) Notify(_ context.Context, n domain.Notice) error {
	r.notices = append(r.notices, n)
	return r.err
}

func TestFanout_DeliversToAllAndJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	a := &recorder{err: boom}
	b := &recorder{}

	err := Fanout{a, b}.Notify(context.Background(), domain.Notice{Kind: domain.NoticeSyncCompleted})

	assert.ErrorIs(t, err, boom)
	assert.Len(t, a.notices, 1)
	assert.Len(t, b.notices, 1)
}

func TestFanout_Empty(t *testing.T) {
	assert.NoError(t, Fanout{}.Notify(context.Background(), domain.Notice{}))
}

func TestLog_Notify(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := NewLog(logger).Notify(context.Background(), domain.Notice{
		Kind:    domain.NoticeSyncAborted,
		Message: "sync aborted: task no longer exists",
		Stats:   &domain.SyncStats{Outcome: domain.OutcomeAborted, Pages: 1, Succeeded: 2},
	})
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "sync aborted: task no longer exists", entry["msg"])
	assert.Equal(t, "sync_aborted", entry["kind"])
	assert.Equal(t, "aborted", entry["outcome"])
	assert.EqualValues(t, 2, entry["succeeded"])
}

func TestNewNoticeMessage(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	msg := newNoticeMessage(domain.Notice{
		Kind:      domain.NoticeSyncCompleted,
		Message:   "done",
		Timestamp: ts,
		Stats: &domain.SyncStats{
			Outcome:   domain.OutcomeCompleted,
			Pages:     3,
			Succeeded: 50,
			Duration:  1500 * time.Millisecond,
		},
	})

	assert.Equal(t, ts, msg.Timestamp)
	require.NotNil(t, msg.Stats)
	assert.Equal(t, int64(1500), msg.Stats.DurationMS)
	assert.Equal(t, 50, msg.Stats.Succeeded)

	assert.False(t, newNoticeMessage(domain.Notice{}).Timestamp.IsZero())
}
