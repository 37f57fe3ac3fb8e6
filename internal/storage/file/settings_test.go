package file

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"notesync/internal/domain"
)

type SettingsStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	fs    afero.Fs
	store *SettingsStore
}

func (s *SettingsStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.fs = afero.NewMemMapFs()
	s.store = NewSettingsStoreWithFs(s.fs, "/etc/notesync/settings.yaml", "default")
}

func TestSettingsStoreTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsStoreTestSuite))
}

func (s *SettingsStoreTestSuite) TestLoad_MissingFileGivesDefaults() {
	st, err := s.store.Load(s.ctx)
	s.NoError(err)
	s.Equal(domain.NewSettings(), st)
}

func (s *SettingsStoreTestSuite) TestUpdate_PersistsAcrossInstances() {
	last := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	err := s.store.Update(s.ctx, func(st *domain.Settings) error {
		st.Token = "tok"
		st.UserName = "ada"
		st.LastSyncAt = last
		st.Syncing = true
		return nil
	})
	s.Require().NoError(err)

	reopened := NewSettingsStoreWithFs(s.fs, "/etc/notesync/settings.yaml", "default")
	st, err := reopened.Load(s.ctx)
	s.NoError(err)
	s.Equal("tok", st.Token)
	s.Equal("ada", st.UserName)
	s.True(st.Syncing)
	s.True(last.Equal(st.LastSyncAt))
	s.Equal(domain.DefaultLinkDir, st.LinkDir)
}

func (s *SettingsStoreTestSuite) TestUpdate_ErrorLeavesFileUntouched() {
	s.Require().NoError(s.store.Update(s.ctx, func(st *domain.Settings) error {
		st.Token = "kept"
		return nil
	}))

	boom := errors.New("boom")
	err := s.store.Update(s.ctx, func(st *domain.Settings) error {
		st.Token = "lost"
		return boom
	})
	s.ErrorIs(err, boom)

	st, err := s.store.Load(s.ctx)
	s.NoError(err)
	s.Equal("kept", st.Token)
}

func (s *SettingsStoreTestSuite) TestProfilesAreIsolated() {
	other := NewSettingsStoreWithFs(s.fs, "/etc/notesync/settings.yaml", "work")

	s.Require().NoError(s.store.Update(s.ctx, func(st *domain.Settings) error {
		st.Token = "personal"
		return nil
	}))
	s.Require().NoError(other.Update(s.ctx, func(st *domain.Settings) error {
		st.Token = "work"
		return nil
	}))

	st, err := s.store.Load(s.ctx)
	s.NoError(err)
	s.Equal("personal", st.Token)

	st, err = other.Load(s.ctx)
	s.NoError(err)
	s.Equal("work", st.Token)
}

func (s *SettingsStoreTestSuite) TestLoad_ReturnsCopy() {
	s.Require().NoError(s.store.Update(s.ctx, func(st *domain.Settings) error {
		st.Token = "tok"
		return nil
	}))

	st, err := s.store.Load(s.ctx)
	s.Require().NoError(err)
	st.Token = "mutated"

	again, err := s.store.Load(s.ctx)
	s.NoError(err)
	s.Equal("tok", again.Token)
}

func (s *SettingsStoreTestSuite) TestLoad_InvalidYAML() {
	s.Require().NoError(afero.WriteFile(s.fs, "/etc/notesync/settings.yaml", []byte("profiles: [unclosed"), 0o600))

	_, err := s.store.Load(s.ctx)
	s.Error(err)
}

func (s *SettingsStoreTestSuite) TestUpdate_LeavesNoTempFiles() {
	s.Require().NoError(s.store.Update(s.ctx, func(st *domain.Settings) error { return nil }))

	entries, err := afero.ReadDir(s.fs, "/etc/notesync")
	s.NoError(err)
	s.Len(entries, 1)
	s.Equal("settings.yaml", entries[0].Name())
}
