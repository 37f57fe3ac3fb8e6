package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"notesync/internal/domain"
)

// SettingsStore keeps settings profiles in one YAML document.
type SettingsStore struct {
	fs      afero.Fs
	path    string
	profile string
	mu      sync.Mutex
}

type document struct {
	Profiles map[string]*domain.Settings `yaml:"profiles"`
}

func NewSettingsStore(path, profile string) *SettingsStore {
	return NewSettingsStoreWithFs(afero.NewOsFs(), path, profile)
}

func NewSettingsStoreWithFs(fsys afero.Fs, path, profile string) *SettingsStore {
	return &SettingsStore{fs: fsys, path: path, profile: profile}
}

// Load returns the profile's settings, or defaults when the file or the
// profile does not exist yet.
func (s *SettingsStore) Load(ctx context.Context) (*domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return s.profileOf(doc), nil
}

// Update applies fn to the profile and writes the whole document back. The
// file is left untouched when fn fails.
func (s *SettingsStore) Update(ctx context.Context, fn func(st *domain.Settings) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	st := s.profileOf(doc)
	if err := fn(st); err != nil {
		return err
	}
	doc.Profiles[s.profile] = st

	return s.write(doc)
}

func (s *SettingsStore) profileOf(doc *document) *domain.Settings {
	if st, ok := doc.Profiles[s.profile]; ok && st != nil {
		cp := *st
		return &cp
	}
	return domain.NewSettings()
}

func (s *SettingsStore) read() (*document, error) {
	doc := &document{Profiles: map[string]*domain.Settings{}}

	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", s.path, err)
	}
	if doc.Profiles == nil {
		doc.Profiles = map[string]*domain.Settings{}
	}
	return doc, nil
}

func (s *SettingsStore) write(doc *document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, ".settings-*")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("close settings: %w", err)
	}
	if err := s.fs.Chmod(tmpName, 0o600); err != nil && !errors.Is(err, os.ErrNotExist) {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("chmod settings: %w", err)
	}
	if err := s.fs.Rename(tmpName, s.path); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}
