package login_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"notesync/internal/domain"
	"notesync/internal/login"
	"notesync/internal/login/mocks"
	"notesync/internal/remote"
)

type PollerTestSuite struct {
	suite.Suite
	ctx    context.Context
	ctrl   *gomock.Controller
	api    *mocks.MockSessionAPI
	poller *login.Poller
}

func (s *PollerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.api = mocks.NewMockSessionAPI(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.poller = login.NewPoller(s.api, time.Millisecond, login.DefaultMaxAttempts, logger)
}

func (s *PollerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPollerTestSuite(t *testing.T) {
	suite.Run(t, new(PollerTestSuite))
}

func (s *PollerTestSuite) start(sessionID string) {
	s.api.EXPECT().IssueSession(gomock.Any()).Return(sessionID, nil)
	id, err := s.poller.Start(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(sessionID, id)
}

func (s *PollerTestSuite) TestStart_MovesToPolling() {
	s.Equal(login.StateIdle, s.poller.State())

	s.start("sess-1")

	s.Equal(login.StatePolling, s.poller.State())
	s.Equal("sess-1", s.poller.SessionID())
	s.Equal(0, s.poller.Attempts())
}

func (s *PollerTestSuite) TestStart_IssueErrorStaysIdle() {
	s.api.EXPECT().IssueSession(gomock.Any()).Return("", errors.New("offline"))

	_, err := s.poller.Start(s.ctx)

	s.Error(err)
	s.Equal(login.StateIdle, s.poller.State())
}

func (s *PollerTestSuite) TestTick_IdleDoesNothing() {
	res, done := s.poller.Tick(s.ctx)

	s.Nil(res)
	s.False(done)
}

func (s *PollerTestSuite) TestTick_Approved() {
	s.start("sess-1")
	s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").Return(&domain.LoginStatus{}, nil)
	s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").Return(&domain.LoginStatus{
		Approved: true,
		Token:    "tok",
		UserID:   "u1",
		UserName: "ada",
		Avatar:   "https://example.com/a.png",
	}, nil)

	res, done := s.poller.Tick(s.ctx)
	s.False(done)
	s.Nil(res)

	res, done = s.poller.Tick(s.ctx)
	s.True(done)
	s.Require().NotNil(res)
	s.Equal(login.Approved, res.Outcome)
	s.False(res.QRCodeExpired)
	s.Equal("tok", res.Token)
	s.Equal("u1", res.UserID)
	s.Equal("ada", res.UserName)
	s.Equal("sess-1", res.SessionID)
	s.Equal(2, res.Attempts)
	s.Equal(login.StateResolved, s.poller.State())
}

func (s *PollerTestSuite) TestTick_ApprovedWithoutTokenKeepsPolling() {
	s.start("sess-1")
	s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").Return(&domain.LoginStatus{Approved: true}, nil)

	res, done := s.poller.Tick(s.ctx)

	s.False(done)
	s.Nil(res)
	s.Equal(login.StatePolling, s.poller.State())
}

func (s *PollerTestSuite) TestTick_InvalidSessionExpires() {
	s.start("sess-1")
	s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").Return(&domain.LoginStatus{InvalidSessionID: true}, nil)

	res, done := s.poller.Tick(s.ctx)

	s.True(done)
	s.Require().NotNil(res)
	s.Equal(login.Expired, res.Outcome)
	s.True(res.QRCodeExpired)
	s.Equal(1, res.Attempts)
}

func (s *PollerTestSuite) TestTick_BudgetExhaustedExpires() {
	s.start("sess-1")
	s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").
		Return(&domain.LoginStatus{}, nil).
		Times(login.DefaultMaxAttempts)

	var (
		res  *login.Result
		done bool
	)
	for i := 1; i <= login.DefaultMaxAttempts; i++ {
		res, done = s.poller.Tick(s.ctx)
		if i < login.DefaultMaxAttempts {
			s.Require().False(done, "resolved early at tick %d", i)
		}
	}

	s.True(done)
	s.Require().NotNil(res)
	s.Equal(login.Expired, res.Outcome)
	s.True(res.QRCodeExpired)
	s.Equal(login.DefaultMaxAttempts, res.Attempts)
}

func (s *PollerTestSuite) TestTick_ErrorsCountTowardBudget() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.poller = login.NewPoller(s.api, time.Millisecond, 3, logger)
	s.start("sess-1")
	s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").
		Return(nil, errors.New("timeout")).
		Times(3)

	_, done := s.poller.Tick(s.ctx)
	s.False(done)
	_, done = s.poller.Tick(s.ctx)
	s.False(done)
	res, done := s.poller.Tick(s.ctx)

	s.True(done)
	s.Equal(login.Expired, res.Outcome)
	s.True(res.QRCodeExpired)
}

func (s *PollerTestSuite) TestTick_ResolvedIsSticky() {
	s.start("sess-1")
	s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").Return(&domain.LoginStatus{InvalidSessionID: true}, nil)

	first, _ := s.poller.Tick(s.ctx)
	again, done := s.poller.Tick(s.ctx)

	s.True(done)
	s.Same(first, again)
}

func (s *PollerTestSuite) TestRetry_UsesNewSession() {
	s.start("sess-1")
	s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").Return(&domain.LoginStatus{InvalidSessionID: true}, nil)
	s.poller.Tick(s.ctx)

	s.api.EXPECT().IssueSession(gomock.Any()).Return("sess-2", nil)
	id, err := s.poller.Retry(s.ctx)

	s.NoError(err)
	s.Equal("sess-2", id)
	s.Equal(login.StatePolling, s.poller.State())
	s.Equal(0, s.poller.Attempts())

	s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-2").Return(&domain.LoginStatus{}, nil)
	_, done := s.poller.Tick(s.ctx)
	s.False(done)
}

func (s *PollerTestSuite) TestRun_NotStarted() {
	_, err := s.poller.Run(s.ctx)

	s.ErrorIs(err, login.ErrNotPolling)
}

func (s *PollerTestSuite) TestRun_UntilApproved() {
	s.start("sess-1")
	gomock.InOrder(
		s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").Return(&domain.LoginStatus{}, nil).Times(2),
		s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").Return(&domain.LoginStatus{Approved: true, Token: "tok"}, nil),
	)

	res, err := s.poller.Run(s.ctx)

	s.NoError(err)
	s.Equal(login.Approved, res.Outcome)
	s.Equal(3, res.Attempts)
}

func (s *PollerTestSuite) TestRun_CancelReturnsToIdle() {
	s.start("sess-1")
	ctx, cancel := context.WithCancel(s.ctx)
	s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").DoAndReturn(
		func(context.Context, string) (*domain.LoginStatus, error) {
			cancel()
			return &domain.LoginStatus{}, nil
		},
	)

	res, err := s.poller.Run(ctx)

	s.ErrorIs(err, context.Canceled)
	s.Nil(res)
	s.Equal(login.StateIdle, s.poller.State())
	s.Empty(s.poller.SessionID())
}

func (s *PollerTestSuite) TestTick_NilStatusCountsAsAttempt() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.poller = login.NewPoller(s.api, time.Millisecond, 2, logger)
	s.start("sess-1")
	s.api.EXPECT().PollLoginStatus(gomock.Any(), "sess-1").Return(nil, nil).Times(2)

	_, done := s.poller.Tick(s.ctx)
	s.False(done)
	s.Equal(1, s.poller.Attempts())

	res, done := s.poller.Tick(s.ctx)
	s.True(done)
	s.Equal(login.Expired, res.Outcome)
}

func TestPoller_ServerErrorTickMakesOneRequest(t *testing.T) {
	var statusCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sessionId":"sess-1"}`))
	})
	mux.HandleFunc("/session/status", func(w http.ResponseWriter, r *http.Request) {
		statusCalls.Add(1)
		http.Error(w, "unavailable", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := remote.New(remote.Config{
		BaseURL:        srv.URL,
		Timeout:        5 * time.Second,
		MaxAttempts:    3,
		InitialBackoff: time.Second,
		MaxBackoff:     time.Second,
	}, logger)
	poller := login.NewPoller(client, time.Millisecond, login.DefaultMaxAttempts, logger)

	ctx := context.Background()
	_, err := poller.Start(ctx)
	require.NoError(t, err)

	started := time.Now()
	res, done := poller.Tick(ctx)

	assert.False(t, done)
	assert.Nil(t, res)
	assert.Equal(t, int32(1), statusCalls.Load())
	assert.Equal(t, 1, poller.Attempts())
	assert.Less(t, time.Since(started), time.Second)
}
