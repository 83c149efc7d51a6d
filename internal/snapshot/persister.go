package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/kaspawatch/internal/pkg/logger"
	"github.com/gabapcia/kaspawatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/kaspawatch/internal/txdedup"
	"github.com/gabapcia/kaspawatch/internal/watchlist"
)

// Persister writes the in-memory state to a Storage after every mutation and
// seeds it back at startup.
type Persister interface {
	// Persist saves the current state. Failures are logged and returned;
	// the in-memory state stays authoritative until the next successful save.
	Persist(ctx context.Context) error

	// Restore replaces the in-memory state with the stored one. Missing or
	// malformed content resets the state to empty instead of failing.
	Restore(ctx context.Context)
}

type persister struct {
	// mu serializes building and saving a document so a save never
	// replaces a newer one.
	mu sync.Mutex

	storage  Storage
	wallets  *watchlist.WatchList
	notified *txdedup.Store
	retry    retry.Retry
}

var _ Persister = (*persister)(nil)

// Option configures the persister.
type Option func(*persister)

// WithRetry overrides the retry policy applied to Storage.Save.
func WithRetry(r retry.Retry) Option {
	return func(p *persister) {
		p.retry = r
	}
}

// NewPersister creates a Persister for the given state.
func NewPersister(storage Storage, wallets *watchlist.WatchList, notified *txdedup.Store, opts ...Option) *persister {
	p := &persister{
		storage:  storage,
		wallets:  wallets,
		notified: notified,
		retry:    retry.New(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Persist implements Persister.
func (p *persister) Persist(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	doc := Snapshot{
		Wallets:              p.wallets.Export(),
		NotifiedTransactions: p.notified.Export(),
	}

	err := p.retry.Execute(ctx, func() error {
		return p.storage.Save(ctx, doc)
	})
	if err != nil {
		logger.Error(ctx, "failed to save snapshot", "error", err)
		return err
	}

	logger.Debug(ctx, "snapshot saved", "subscribers", len(doc.Wallets), "addresses", len(doc.NotifiedTransactions))
	return nil
}

// Restore implements Persister.
func (p *persister) Restore(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	doc, err := p.storage.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrSnapshotNotFound) {
			logger.Info(ctx, "no snapshot found, starting with an empty state")
		} else {
			logger.Error(ctx, "failed to load snapshot, starting with an empty state", "error", err)
		}

		p.reset()
		return
	}

	wallets, err := parseWallets(doc.Wallets)
	if err != nil {
		logger.Error(ctx, "invalid snapshot content, starting with an empty state", "error", err)
		p.reset()
		return
	}

	p.wallets.Restore(wallets)
	p.notified.Restore(doc.NotifiedTransactions)

	logger.Info(ctx, "snapshot restored", "subscribers", len(wallets), "addresses", len(doc.NotifiedTransactions))
}

func (p *persister) reset() {
	p.wallets.Restore(nil)
	p.notified.Restore(nil)
}

func parseWallets(doc map[string][]string) (map[watchlist.Subscriber][]watchlist.Address, error) {
	wallets := make(map[watchlist.Subscriber][]watchlist.Address, len(doc))
	for key, addresses := range doc {
		sub, err := watchlist.ParseSubscriber(key)
		if err != nil {
			return nil, fmt.Errorf("%w: subscriber key %q: %w", ErrMalformedSnapshot, key, err)
		}

		list := make([]watchlist.Address, len(addresses))
		for i, address := range addresses {
			list[i] = watchlist.Address(address)
		}

		wallets[sub] = list
	}

	return wallets, nil
}
