package domain

import "time"

type SyncOutcome string

const (
	OutcomeSkipped   SyncOutcome = "skipped"
	OutcomeCompleted SyncOutcome = "completed"
	OutcomeAborted   SyncOutcome = "aborted"
	OutcomeFailed    SyncOutcome = "failed"
)

// SyncStats holds statistics about a sync operation.
type SyncStats struct {
	Outcome     SyncOutcome
	Reason      string
	Pages       int
	Succeeded   int
	Failed      int
	FailedTasks int
	StartedAt   time.Time
	Duration    time.Duration
}

// Processed is the number of tasks that reached the materializer.
func (s *SyncStats) Processed() int {
	return s.Succeeded + s.Failed
}

// SyncRun is the persisted history row of one run.
type SyncRun struct {
	ID         int64       `db:"id"`
	Outcome    SyncOutcome `db:"outcome"`
	Reason     string      `db:"reason"`
	Pages      int         `db:"pages"`
	Succeeded  int         `db:"succeeded"`
	Failed     int         `db:"failed"`
	StartedAt  time.Time   `db:"started_at"`
	FinishedAt time.Time   `db:"finished_at"`
}

// RunFromStats converts the stats of a finished run into a history row.
func RunFromStats(stats *SyncStats, finishedAt time.Time) *SyncRun {
	return &SyncRun{
		Outcome:    stats.Outcome,
		Reason:     stats.Reason,
		Pages:      stats.Pages,
		Succeeded:  stats.Succeeded,
		Failed:     stats.Failed,
		StartedAt:  stats.StartedAt,
		FinishedAt: finishedAt,
	}
}

type NoticeKind string

const (
	NoticeSyncCompleted     NoticeKind = "sync_completed"
	NoticeSyncAborted       NoticeKind = "sync_aborted"
	NoticeSyncFailed        NoticeKind = "sync_failed"
	NoticeNoteSynced        NoticeKind = "note_synced"
	NoticeSettingsCorrected NoticeKind = "settings_corrected"
	NoticeLoginRequired     NoticeKind = "login_required"
	NoticeLoginApproved     NoticeKind = "login_approved"
	NoticeLoginExpired      NoticeKind = "login_expired"
)

// Notice is a user-visible status outcome.
type Notice struct {
	Kind      NoticeKind `json:"kind"`
	Message   string     `json:"message"`
	Stats     *SyncStats `json:"stats,omitempty"`
	Path      string     `json:"path,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}
