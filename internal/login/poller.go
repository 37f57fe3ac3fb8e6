package login

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultPollInterval = 2 * time.Second
	DefaultMaxAttempts  = 60
)

var ErrNotPolling = errors.New("login: no session is being polled")

type State int

const (
	StateIdle State = iota
	StatePolling
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePolling:
		return "polling"
	case StateResolved:
		return "resolved"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Outcome string

const (
	Approved Outcome = "approved"
	Expired  Outcome = "expired"
)

type Result struct {
	Outcome       Outcome
	QRCodeExpired bool
	SessionID     string
	Attempts      int

	Token    string
	UserID   string
	UserName string
	Avatar   string
}

// Poller exchanges a login session for a credential. It is advanced one
// status check at a time by Tick and is not safe for concurrent use.
type Poller struct {
	api         SessionAPI
	logger      *slog.Logger
	interval    time.Duration
	maxAttempts int

	state     State
	sessionID string
	attempts  int
	result    *Result
}

func NewPoller(api SessionAPI, interval time.Duration, maxAttempts int, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Poller{
		api:         api,
		logger:      logger.With("component", "login"),
		interval:    interval,
		maxAttempts: maxAttempts,
	}
}

func (p *Poller) State() State      { return p.state }
func (p *Poller) SessionID() string { return p.sessionID }
func (p *Poller) Attempts() int     { return p.attempts }

// Start discards any previous session and begins polling a new one.
func (p *Poller) Start(ctx context.Context) (string, error) {
	p.Cancel()

	sessionID, err := p.api.IssueSession(ctx)
	if err != nil {
		return "", fmt.Errorf("issue login session: %w", err)
	}

	p.state = StatePolling
	p.sessionID = sessionID
	p.logger.Info("login session issued", "session_id", sessionID)

	return sessionID, nil
}

// Retry restarts the flow with a new session.
func (p *Poller) Retry(ctx context.Context) (string, error) {
	return p.Start(ctx)
}

// Cancel returns the poller to idle without resolving it.
func (p *Poller) Cancel() {
	p.state = StateIdle
	p.sessionID = ""
	p.attempts = 0
	p.result = nil
}

// Tick performs one status check. It reports the result once the session is
// approved, invalidated or out of attempts. Poll errors count as attempts.
func (p *Poller) Tick(ctx context.Context) (*Result, bool) {
	switch p.state {
	case StateResolved:
		return p.result, true
	case StateIdle:
		return nil, false
	}

	p.attempts++

	status, err := p.api.PollLoginStatus(ctx, p.sessionID)
	switch {
	case err != nil:
		p.logger.Warn("login status check failed",
			"attempt", p.attempts,
			"error", err,
		)
	case status == nil:
		p.logger.Warn("login status check returned no status", "attempt", p.attempts)
	case status.Approved && status.Token != "":
		return p.resolve(&Result{
			Outcome:  Approved,
			Token:    status.Token,
			UserID:   status.UserID,
			UserName: status.UserName,
			Avatar:   status.Avatar,
		}), true
	case status.InvalidSessionID:
		p.logger.Info("login session invalidated", "session_id", p.sessionID)
		return p.resolve(&Result{Outcome: Expired, QRCodeExpired: true}), true
	}

	if p.attempts >= p.maxAttempts {
		p.logger.Info("login session expired", "attempts", p.attempts)
		return p.resolve(&Result{Outcome: Expired, QRCodeExpired: true}), true
	}
	return nil, false
}

// Run ticks every poll interval until the session resolves or ctx is done.
func (p *Poller) Run(ctx context.Context) (*Result, error) {
	if p.state == StateIdle {
		return nil, ErrNotPolling
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if p.state == StateResolved {
			return p.result, nil
		}

		select {
		case <-ctx.Done():
			p.Cancel()
			return nil, ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				p.Cancel()
				return nil, err
			}
			if res, done := p.Tick(ctx); done {
				return res, nil
			}
		}
	}
}

func (p *Poller) resolve(res *Result) *Result {
	res.SessionID = p.sessionID
	res.Attempts = p.attempts
	p.state = StateResolved
	p.result = res
	return res
}
