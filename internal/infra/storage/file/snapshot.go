// Package file stores the bot snapshot as a JSON document on the local disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gabapcia/kaspawatch/internal/snapshot"
)

// DefaultPath is the snapshot location used when none is configured.
const DefaultPath = "wallets_data.json"

// Storage implements snapshot.Storage over a single file.
type Storage struct {
	path string
}

var _ snapshot.Storage = (*Storage)(nil)

// New creates a Storage writing to path. An empty path selects DefaultPath.
func New(path string) *Storage {
	if path == "" {
		path = DefaultPath
	}

	return &Storage{
		path: path,
	}
}

// Save writes doc atomically: the document is written to a temporary file in
// the same directory, flushed, and renamed over the previous one.
func (s *Storage) Save(ctx context.Context, doc snapshot.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return writeAtomic(s.path, data)
}

// writeAtomic writes data to a temporary file in the directory of path,
// flushes it, and renames it over path.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

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

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}

	return nil
}

// Load reads and decodes the snapshot file.
func (s *Storage) Load(ctx context.Context) (snapshot.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return snapshot.Snapshot{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return snapshot.Snapshot{}, snapshot.ErrSnapshotNotFound
		}

		return snapshot.Snapshot{}, err
	}

	var doc snapshot.Snapshot
	if err := json.Unmarshal(data, &doc); err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("%w: %w", snapshot.ErrMalformedSnapshot, err)
	}

	return doc, nil
}
