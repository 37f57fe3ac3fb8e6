// Package vault is the local hierarchical store synced notes are written to.
// Paths are slash-separated and relative to the vault root.
package vault

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/spf13/afero"

	"notesync/internal/domain"
)

const tempFilePattern = ".notesync-tmp-*"

type Store struct {
	fs afero.Fs
}

// New returns a store rooted at dir on the local filesystem. Paths cannot
// escape dir.
func New(dir string) *Store {
	return NewWithFs(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

func NewWithFs(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

func (s *Store) real(p string) string {
	return "/" + NormalizePath(p)
}

// EnsureFolder creates the folder and its parents. An existing folder is not
// an error.
func (s *Store) EnsureFolder(p string) (domain.FolderResult, error) {
	real := s.real(p)

	info, err := s.fs.Stat(real)
	if err == nil {
		if !info.IsDir() {
			return 0, fmt.Errorf("ensure folder %s: not a directory", p)
		}
		return domain.FolderExists, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("ensure folder %s: %w", p, err)
	}

	if err := s.fs.MkdirAll(real, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return domain.FolderExists, nil
		}
		return 0, fmt.Errorf("ensure folder %s: %w", p, err)
	}
	return domain.FolderCreated, nil
}

func (s *Store) Exists(p string) (bool, error) {
	ok, err := afero.Exists(s.fs, s.real(p))
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", p, err)
	}
	return ok, nil
}

// WriteFile writes data through a temp file in the same folder and renames
// it into place.
func (s *Store) WriteFile(p string, data []byte) error {
	real := s.real(p)

	tmp, err := afero.TempFile(s.fs, path.Dir(real), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer s.fs.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := s.fs.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := s.fs.Rename(tmpName, real); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", p, err)
	}
	return nil
}

// ReadFile returns the content at p.
func (s *Store) ReadFile(p string) ([]byte, error) {
	return afero.ReadFile(s.fs, s.real(p))
}
