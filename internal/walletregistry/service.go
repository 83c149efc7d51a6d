package walletregistry

import (
	"context"

	"github.com/gabapcia/kaspawatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/kaspawatch/internal/txclassify"
	"github.com/gabapcia/kaspawatch/internal/watchlist"
)

// TransactionFetcher returns the recent transactions of an address.
type TransactionFetcher interface {
	FetchTransactions(ctx context.Context, address string) ([]txclassify.Transaction, error)
}

// NotifiedStore records transactions that must not produce a notification.
type NotifiedStore interface {
	SeedAsNotified(address string, txIDs []string)
}

// Persister saves the current state after a mutation.
type Persister interface {
	Persist(ctx context.Context) error
}

// Service defines the interface for registering and unregistering
// wallets that should be actively monitored for transaction activity.
type Service interface {
	// StartWatching registers address for sub.
	//
	// The current backlog of the address is marked as notified before the
	// address becomes visible to the wallet monitor, so only transactions
	// that happen afterwards are reported.
	//
	// Returns ErrInvalidAddress if validation fails and
	// watchlist.ErrAlreadyWatched if sub already watches address.
	StartWatching(ctx context.Context, sub watchlist.Subscriber, address string) error

	// StopWatching unregisters address for sub. The notified history of the
	// address is kept, so watching it again does not replay old transactions.
	//
	// Returns watchlist.ErrNotWatched if sub does not watch address.
	StopWatching(ctx context.Context, sub watchlist.Subscriber, address string) error

	// ListWatched returns the addresses of sub in the order they were added.
	ListWatched(ctx context.Context, sub watchlist.Subscriber) []watchlist.Address
}

// service is the concrete implementation of the Service interface.
type service struct {
	wallets   *watchlist.WatchList
	notified  NotifiedStore
	fetcher   TransactionFetcher
	persister Persister
	retry     retry.Retry
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// Option configures the service.
type Option func(*service)

// WithRetry overrides the retry policy of the backlog fetch.
func WithRetry(r retry.Retry) Option {
	return func(s *service) {
		s.retry = r
	}
}

// New creates a new instance of the walletregistry service.
func New(wallets *watchlist.WatchList, notified NotifiedStore, fetcher TransactionFetcher, persister Persister, opts ...Option) *service {
	s := &service{
		wallets:   wallets,
		notified:  notified,
		fetcher:   fetcher,
		persister: persister,
		retry:     retry.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}
