package login

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"notesync/internal/domain"
)

// Flow drives the poller through retries, stores the approved credential
// and starts one sync run.
type Flow struct {
	poller    *Poller
	settings  SettingsStore
	syncer    Syncer
	presenter Presenter
	notifier  Notifier
	scanURL   string
	logger    *slog.Logger
	now       func() time.Time
}

// NewFlow creates a login flow. syncer and notifier may be nil.
func NewFlow(
	poller *Poller,
	settings SettingsStore,
	syncer Syncer,
	presenter Presenter,
	notifier Notifier,
	scanURL string,
	logger *slog.Logger,
) *Flow {
	return &Flow{
		poller:    poller,
		settings:  settings,
		syncer:    syncer,
		presenter: presenter,
		notifier:  notifier,
		scanURL:   scanURL,
		logger:    logger.With("component", "login_flow"),
		now:       time.Now,
	}
}

// ScanPayload is the content encoded in the login QR code.
func ScanPayload(scanURL, sessionID string) string {
	if scanURL == "" {
		return sessionID
	}
	u, err := url.Parse(scanURL)
	if err != nil {
		return sessionID
	}
	q := u.Query()
	q.Set("sessionId", sessionID)
	u.RawQuery = q.Encode()
	return u.String()
}

// Login runs sessions until one is approved or the presenter declines a
// retry. The last result is returned.
func (f *Flow) Login(ctx context.Context) (*Result, error) {
	sessionID, err := f.poller.Start(ctx)
	if err != nil {
		return nil, err
	}

	for {
		if err := f.presenter.ShowSession(ctx, sessionID, ScanPayload(f.scanURL, sessionID)); err != nil {
			f.poller.Cancel()
			return nil, fmt.Errorf("show login session: %w", err)
		}

		res, err := f.poller.Run(ctx)
		if err != nil {
			return nil, err
		}

		if res.Outcome == Approved {
			return res, f.approve(ctx, res)
		}

		f.notify(ctx, domain.Notice{
			Kind:    domain.NoticeLoginExpired,
			Message: "login code expired, retry to get a new one",
		})

		if !f.presenter.OfferRetry(ctx, res) {
			return res, nil
		}

		sessionID, err = f.poller.Retry(ctx)
		if err != nil {
			return res, err
		}
	}
}

func (f *Flow) approve(ctx context.Context, res *Result) error {
	err := f.settings.Update(ctx, func(st *domain.Settings) error {
		st.Token = res.Token
		st.UserID = res.UserID
		st.UserName = res.UserName
		st.Avatar = res.Avatar
		st.SessionID = res.SessionID
		return nil
	})
	if err != nil {
		return fmt.Errorf("store credential: %w", err)
	}

	f.logger.Info("login approved", "user_id", res.UserID, "user_name", res.UserName)
	f.notify(ctx, domain.Notice{
		Kind:    domain.NoticeLoginApproved,
		Message: fmt.Sprintf("logged in as %s", res.UserName),
	})

	if f.syncer == nil {
		return nil
	}
	if _, err := f.syncer.Sync(ctx); err != nil {
		f.logger.Error("sync after login failed", "error", err)
	}
	return nil
}

func (f *Flow) notify(ctx context.Context, notice domain.Notice) {
	if f.notifier == nil {
		return
	}
	notice.Timestamp = f.now()
	if err := f.notifier.Notify(context.WithoutCancel(ctx), notice); err != nil {
		f.logger.Warn("failed to deliver notice", "kind", notice.Kind, "error", err)
	}
}
