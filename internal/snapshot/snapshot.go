// Package snapshot persists and restores the bot state: the watch list and
// the per-address notified transaction ids.
//
// The state is saved as a single JSON document:
//
//	{
//	  "wallets": {"<chat id>": ["kaspa:...", ...]},
//	  "notified_transactions": {"kaspa:...": ["<tx id>", ...]}
//	}
//
// Storage backends only move the document around; building it from the
// in-memory state and seeding the state back from it is done by Persister.
package snapshot

import (
	"context"
	"errors"
)

var (
	// ErrSnapshotNotFound is returned by Storage.Load when nothing was saved yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrMalformedSnapshot is returned when a stored document cannot be decoded.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)

// Snapshot is the persisted document.
type Snapshot struct {
	Wallets              map[string][]string `json:"wallets"`
	NotifiedTransactions map[string][]string `json:"notified_transactions"`
}

// Storage saves and loads the whole snapshot document.
type Storage interface {
	// Save replaces the stored document with s.
	Save(ctx context.Context, s Snapshot) error

	// Load returns the stored document.
	// Returns ErrSnapshotNotFound if nothing was saved yet and
	// ErrMalformedSnapshot if the stored content cannot be decoded.
	Load(ctx context.Context) (Snapshot, error)
}
