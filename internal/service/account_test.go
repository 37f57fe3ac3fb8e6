package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"notesync/internal/domain"
	"notesync/internal/service/mocks"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	api      *mocks.MockNoteAPI
	settings *mocks.MockSettingsStore
	stored   *domain.Settings
	now      time.Time

	service *AccountService
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.api = mocks.NewMockNoteAPI(s.ctrl)
	s.settings = mocks.NewMockSettingsStore(s.ctrl)
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.stored = &domain.Settings{
		Token:     "tok",
		UserID:    "u1",
		UserName:  "Ada",
		Avatar:    "a.png",
		SessionID: "sess",
		RootDir:   "root",
		Enabled:   true,
	}
	s.settings.EXPECT().Load(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (*domain.Settings, error) {
			c := *s.stored
			return &c, nil
		},
	).AnyTimes()
	s.settings.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(*domain.Settings) error) error {
			c := *s.stored
			if err := fn(&c); err != nil {
				return err
			}
			*s.stored = c
			return nil
		},
	).AnyTimes()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewAccountService(s.api, s.settings, logger)
	s.service.now = func() time.Time { return s.now }
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) token(exp time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	s.Require().NoError(err)
	return token
}

func (s *AccountServiceTestSuite) assertCleared() {
	s.Empty(s.stored.Token)
	s.Empty(s.stored.UserID)
	s.Empty(s.stored.UserName)
	s.Empty(s.stored.SessionID)
	s.Equal("root", s.stored.RootDir, "unrelated settings survive")
}

func (s *AccountServiceTestSuite) TestValidate_Valid() {
	token := s.token(s.now.Add(time.Hour))
	s.api.EXPECT().CheckIntegration(gomock.Any(), "sess", token).Return(
		&domain.IntegrationStatus{Valid: true, FailedTaskCount: 2}, nil,
	)

	status, err := s.service.Validate(context.Background(), token, "sess")

	s.NoError(err)
	s.Equal(domain.AccountStatus{Valid: true, FailedTaskCount: 2}, status)
	s.Equal("tok", s.stored.Token)
}

func (s *AccountServiceTestSuite) TestValidate_ExpiredSkipsRemote() {
	token := s.token(s.now.Add(-time.Minute))

	status, err := s.service.Validate(context.Background(), token, "sess")

	s.NoError(err)
	s.False(status.Valid)
	s.assertCleared()
}

func (s *AccountServiceTestSuite) TestValidate_Malformed() {
	status, err := s.service.Validate(context.Background(), "garbage", "sess")

	s.NoError(err)
	s.Equal(domain.AccountStatus{}, status)
	s.assertCleared()
}

func (s *AccountServiceTestSuite) TestValidate_IntegrationInactive() {
	token := s.token(s.now.Add(time.Hour))
	s.api.EXPECT().CheckIntegration(gomock.Any(), "sess", token).Return(&domain.IntegrationStatus{Valid: false}, nil)

	status, err := s.service.Validate(context.Background(), token, "sess")

	s.NoError(err)
	s.False(status.Valid)
	s.assertCleared()
}

func (s *AccountServiceTestSuite) TestValidate_RemoteErrorIsInvalid() {
	token := s.token(s.now.Add(time.Hour))
	s.api.EXPECT().CheckIntegration(gomock.Any(), "sess", token).Return(nil, errors.New("connection refused")).Times(1)

	status, err := s.service.Validate(context.Background(), token, "sess")

	s.NoError(err)
	s.Equal(domain.AccountStatus{Valid: false, FailedTaskCount: 0}, status)
	s.assertCleared()
}

func (s *AccountServiceTestSuite) TestUnbind() {
	s.api.EXPECT().Unbind(gomock.Any(), "tok").Return(nil)

	s.NoError(s.service.Unbind(context.Background()))
	s.assertCleared()
}

func (s *AccountServiceTestSuite) TestUnbind_RemoteErrorKeepsCredential() {
	s.api.EXPECT().Unbind(gomock.Any(), "tok").Return(errors.New("offline"))

	s.Error(s.service.Unbind(context.Background()))
	s.Equal("tok", s.stored.Token)
}

func (s *AccountServiceTestSuite) TestRetryFailed() {
	s.api.EXPECT().RetryFailed(gomock.Any(), "tok").Return(nil)

	s.NoError(s.service.RetryFailed(context.Background()))
}

func (s *AccountServiceTestSuite) TestRetryFailed_NoCredential() {
	s.stored.Token = ""

	s.ErrorIs(s.service.RetryFailed(context.Background()), domain.ErrNoCredential)
}
