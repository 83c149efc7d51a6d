package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/gabapcia/kaspawatch/internal/snapshot"
)

// leaseRecord is the content of the lock file next to the snapshot.
type leaseRecord struct {
	Owner     string    `json:"owner"`
	ExpiresAt time.Time `json:"expires_at"`
}

var _ snapshot.Lease = (*Storage)(nil)

// leasePath returns the lock file path, "<snapshot path>.lock".
func (s *Storage) leasePath() string {
	return s.path + ".lock"
}

// Acquire implements snapshot.Lease with an exclusively created lock file.
// An expired lock file is removed and the creation retried once.
func (s *Storage) Acquire(ctx context.Context, owner string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(leaseRecord{Owner: owner, ExpiresAt: time.Now().Add(ttl)})
	if err != nil {
		return fmt.Errorf("encode lease: %w", err)
	}

	for range 2 {
		f, err := os.OpenFile(s.leasePath(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			_, writeErr := f.Write(data)
			return errors.Join(writeErr, f.Close())
		}

		if !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("create lease: %w", err)
		}

		held, err := s.readLease(ttl)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return fmt.Errorf("read lease: %w", err)
		}

		if held.Owner == owner {
			return writeAtomic(s.leasePath(), data)
		}

		if time.Now().Before(held.ExpiresAt) {
			return snapshot.ErrLeaseHeld
		}

		if err := os.Remove(s.leasePath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove expired lease: %w", err)
		}
	}

	return snapshot.ErrLeaseHeld
}

// Release implements snapshot.Lease.
func (s *Storage) Release(ctx context.Context, owner string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	held, err := s.readLease(0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	if held.Owner != owner {
		return nil
	}

	if err := os.Remove(s.leasePath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove lease: %w", err)
	}

	return nil
}

// readLease decodes the lock file. A lock file that cannot be decoded is
// one being written by its creator; it counts as held for ttl after its
// last modification.
func (s *Storage) readLease(ttl time.Duration) (leaseRecord, error) {
	data, err := os.ReadFile(s.leasePath())
	if err != nil {
		return leaseRecord{}, err
	}

	var held leaseRecord
	if err := json.Unmarshal(data, &held); err != nil {
		info, statErr := os.Stat(s.leasePath())
		if statErr != nil {
			return leaseRecord{}, statErr
		}

		return leaseRecord{ExpiresAt: info.ModTime().Add(ttl)}, nil
	}

	return held, nil
}
