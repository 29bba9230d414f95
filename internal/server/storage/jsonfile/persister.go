package jsonfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/iudanet/licauth/internal/server/storage"
)

// Persister stores the snapshot as a single JSON document on disk
type Persister struct {
	path string
	mu   sync.Mutex
}

// Compile-time check that Persister implements storage.Persister
var _ storage.Persister = (*Persister)(nil)

// New creates a persister for the document at path.
// The file is created on first save; its directory must exist
func New(path string) *Persister {
	return &Persister{path: path}
}

// Path returns the document location
func (p *Persister) Path() string {
	return p.path
}

// Load reads the document. A missing or empty file yields an empty snapshot
func (p *Persister) Load(ctx context.Context) (*storage.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", p.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return storage.NewSnapshot(), nil
	}

	snapshot, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p.path, err)
	}

	return snapshot, nil
}

// Save writes the document to a temporary file in the same directory and renames
// it over the previous one, so a crash never leaves a half-written document
func (p *Persister) Save(ctx context.Context, snapshot *storage.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var buf bytes.Buffer
	if err := Encode(&buf, snapshot); err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(p.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Удаляем временный файл при любой ошибке до rename
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, p.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", p.path, err)
	}
	committed = true

	// fsync каталога, чтобы rename пережил падение; ошибка не критична
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return nil
}

// Close is a no-op; the document is not held open between calls
func (p *Persister) Close() error {
	return nil
}
