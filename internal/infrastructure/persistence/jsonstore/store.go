// Package jsonstore persists application documents as JSON files in the
// per-application config directory.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bnema/fastbrowser/internal/domain/repository"
	"github.com/bnema/fastbrowser/internal/logging"
)

// Document names.
const (
	ConfigDocument  = "config.json"
	SessionDocument = "tabs.json"
	HistoryDocument = "history.json"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	corruptSuffix = ".corrupt"
)

// Store reads and writes whole JSON documents under a single directory.
// Access to each document is serialized: in-process by a per-document
// semaphore, across processes by an advisory file lock where supported.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*semaphore.Weighted
}

// New creates a store rooted at dir. The directory is created on first use.
func New(dir string) *Store {
	return &Store{
		dir:   dir,
		locks: make(map[string]*semaphore.Weighted),
	}
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path of a document.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// EnsureDir creates the store directory. Succeeds if it already exists.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("create %s: %w: %w", s.dir, repository.ErrIOFailure, err)
	}
	return nil
}

// Lock acquires exclusive access to a document until the returned func is called.
func (s *Store) Lock(ctx context.Context, name string) (func(), error) {
	sem := s.semaphore(name)
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("lock %s: %w", name, err)
	}

	if err := s.EnsureDir(); err != nil {
		sem.Release(1)
		return nil, err
	}

	unlockFile, err := lockFile(ctx, filepath.Join(s.dir, "."+name+".lock"))
	if err != nil {
		sem.Release(1)
		return nil, fmt.Errorf("lock %s: %w: %w", name, repository.ErrIOFailure, err)
	}

	return func() {
		unlockFile()
		sem.Release(1)
	}, nil
}

func (s *Store) semaphore(name string) *semaphore.Weighted {
	s.mu.Lock()
	defer s.mu.Unlock()

	sem, ok := s.locks[name]
	if !ok {
		sem = semaphore.NewWeighted(1)
		s.locks[name] = sem
	}
	return sem
}

// Load decodes a document into v. If v implements Validate() error, a
// validation failure is reported as corrupt data.
// Returns repository.ErrNotFound, ErrCorruptData or ErrIOFailure (wrapped).
func (s *Store) Load(ctx context.Context, name string, v any) error {
	unlock, err := s.Lock(ctx, name)
	if err != nil {
		return err
	}
	defer unlock()

	return s.load(ctx, name, v)
}

func (s *Store) load(ctx context.Context, name string, v any) error {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("document", name).Msg("document not found")
			return fmt.Errorf("load %s: %w", name, repository.ErrNotFound)
		}
		return fmt.Errorf("load %s: %w: %w", name, repository.ErrIOFailure, err)
	}

	if err := decode(data, v); err != nil {
		return fmt.Errorf("load %s: %w: %w", name, repository.ErrCorruptData, err)
	}

	log.Debug().Str("document", name).Int("bytes", len(data)).Msg("document loaded")
	return nil
}

// validator is implemented by document types that check their shape after decoding.
type validator interface {
	Validate() error
}

func decode(data []byte, v any) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("empty document")
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return errors.New("null document")
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return err
	}
	if val, ok := v.(validator); ok {
		return val.Validate()
	}
	return nil
}

// Save encodes v as compact JSON and replaces the document atomically.
func (s *Store) Save(ctx context.Context, name string, v any) error {
	unlock, err := s.Lock(ctx, name)
	if err != nil {
		return err
	}
	defer unlock()

	return s.save(ctx, name, v)
}

func (s *Store) save(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	if err := atomicWriteFile(s.Path(name), data, filePerm); err != nil {
		return fmt.Errorf("save %s: %w: %w", name, repository.ErrIOFailure, err)
	}

	logging.FromContext(ctx).Debug().Str("document", name).Int("bytes", len(data)).Msg("document saved")
	return nil
}

// WriteRaw replaces a document with pre-encoded bytes, atomically and under the document lock.
func (s *Store) WriteRaw(ctx context.Context, name string, data []byte) error {
	unlock, err := s.Lock(ctx, name)
	if err != nil {
		return err
	}
	defer unlock()

	if err := atomicWriteFile(s.Path(name), data, filePerm); err != nil {
		return fmt.Errorf("save %s: %w: %w", name, repository.ErrIOFailure, err)
	}
	return nil
}

// Remove deletes a document. No-op if it does not exist.
func (s *Store) Remove(ctx context.Context, name string) error {
	unlock, err := s.Lock(ctx, name)
	if err != nil {
		return err
	}
	defer unlock()

	if err := os.Remove(s.Path(name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w: %w", name, repository.ErrIOFailure, err)
	}
	logging.FromContext(ctx).Debug().Str("document", name).Msg("document removed")
	return nil
}

// Update performs a read-modify-write of a document under its lock.
// v is decoded from the document, then mutate is called with found=false if
// the document was missing or corrupt (mutate must then start from empty).
// A corrupt document is moved aside to "<name>.corrupt" before being replaced.
// The document is rewritten only when mutate reports a change.
func (s *Store) Update(ctx context.Context, name string, v any, mutate func(found bool) (bool, error)) error {
	log := logging.FromContext(ctx)

	unlock, err := s.Lock(ctx, name)
	if err != nil {
		return err
	}
	defer unlock()

	found := true
	if err := s.load(ctx, name, v); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			found = false
		case errors.Is(err, repository.ErrCorruptData):
			found = false
			log.Error().Err(err).Str("document", name).Msg("corrupt document, starting from empty")
			if qerr := s.quarantine(name); qerr != nil {
				return qerr
			}
		default:
			return err
		}
	}

	changed, err := mutate(found)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.save(ctx, name, v)
}

func (s *Store) quarantine(name string) error {
	if err := os.Rename(s.Path(name), s.Path(name+corruptSuffix)); err != nil {
		return fmt.Errorf("quarantine %s: %w: %w", name, repository.ErrIOFailure, err)
	}
	return nil
}
