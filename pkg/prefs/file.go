package prefs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	ferrors "github.com/matzehuels/folio/pkg/errors"
	"github.com/matzehuels/folio/pkg/observability"
)

// FileName is the default preferences file inside DefaultDir.
const FileName = "prefs.json"

// FileStore keeps preferences as a single JSON object on disk.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates a file store at path. If path is empty it defaults to
// $XDG_CONFIG_HOME/folio/prefs.json (or ~/.config/folio/prefs.json). The
// parent directory is created if needed; the file itself is written lazily.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, ferrors.Wrap(ferrors.ErrCodeStoreUnavailable, err, "resolve config dir")
		}
		path = filepath.Join(dir, FileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeStoreUnavailable, err, "create prefs dir")
	}
	return &FileStore{path: path}, nil
}

// DefaultDir returns the folio config directory using the XDG convention.
func DefaultDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "folio"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "folio"), nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Get implements Store.
func (s *FileStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ferrors.ValidateKey(key); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	values, err := s.read()
	s.mu.RUnlock()
	if err != nil {
		observability.Prefs().OnLoad(ctx, BackendFile, key, false, err)
		return "", false, err
	}
	v, ok := values[key]
	observability.Prefs().OnLoad(ctx, BackendFile, key, ok, nil)
	return v, ok, nil
}

// Set implements Store.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ferrors.ValidateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.update(func(values map[string]string) { values[key] = value })
	observability.Prefs().OnSave(ctx, BackendFile, key, err)
	return err
}

// Delete implements Store.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	if err := ferrors.ValidateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(func(values map[string]string) { delete(values, key) })
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// read loads the JSON object. A missing file is an empty store.
func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeStoreUnavailable, err, "read %s", s.path)
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeStoreCorrupt, err, "parse %s", s.path)
	}
	return values, nil
}

// update applies fn and writes the result through a temp file rename so a
// crash never leaves a half-written file.
func (s *FileStore) update(fn func(map[string]string)) error {
	values, err := s.read()
	if ferrors.Is(err, ferrors.ErrCodeStoreCorrupt) {
		values = map[string]string{}
	} else if err != nil {
		return err
	}
	fn(values)

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInternal, err, "encode prefs")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".prefs-*.json")
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeStoreUnavailable, err, "write %s", s.path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return ferrors.Wrap(ferrors.ErrCodeStoreUnavailable, err, "write %s", s.path)
	}
	if err := tmp.Close(); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeStoreUnavailable, err, "write %s", s.path)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeStoreUnavailable, err, "write %s", s.path)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
