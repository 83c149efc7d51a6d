// Package walletmonitor polls the watched Kaspa addresses and notifies their
// subscribers about every transaction seen for the first time.
//
// The service alternates between an idle wait and a cycle. A cycle walks a
// snapshot of the watch list, fetches each address's recent transactions,
// classifies them, skips the ones already notified, and dispatches the rest.
// A failing fetch or dispatch only affects its own address or transaction.
// Any other cycle failure, including a panic, puts the service in a longer
// backoff before the next idle wait.
package walletmonitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/kaspawatch/internal/pkg/logger"
	"github.com/gabapcia/kaspawatch/internal/pkg/x/chflow"
	"github.com/gabapcia/kaspawatch/internal/txclassify"
	"github.com/gabapcia/kaspawatch/internal/watchlist"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/kaspawatch/internal/walletmonitor"

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrCycleFault wraps a panic recovered from a cycle.
	ErrCycleFault = errors.New("wallet monitor cycle fault")
)

// WalletSource provides the watched (subscriber, address) pairs.
type WalletSource interface {
	Snapshot() []watchlist.Entry
}

// TransactionFetcher returns the recent transactions of an address.
type TransactionFetcher interface {
	FetchTransactions(ctx context.Context, address string) ([]txclassify.Transaction, error)
}

// NotifiedStore remembers which transactions were already notified.
type NotifiedStore interface {
	IsNotified(address, txID string) bool
	MarkNotified(address, txID string)
}

// Dispatcher delivers one notification. A nil error means delivered.
type Dispatcher interface {
	Dispatch(ctx context.Context, sub watchlist.Subscriber, address watchlist.Address, tx txclassify.Transaction, c txclassify.Classification) error
}

// Persister saves the current state after a mutation.
type Persister interface {
	Persist(ctx context.Context) error
}

// Service defines the wallet monitor lifecycle.
type Service interface {
	// Start launches the polling loop in the background.
	// Returns ErrServiceAlreadyStarted if the service is already running.
	Start(ctx context.Context) error

	// Close stops the polling loop and waits for it to return.
	// It is safe to call Close even if the service was never started.
	Close()

	// RunCycle performs a single pass over the watched addresses.
	RunCycle(ctx context.Context) error
}

type closeFunc func()

type config struct {
	pollInterval            time.Duration
	backoffInterval         time.Duration
	maxTransactionsPerFetch int
	notificationPause       time.Duration
	addressPause            time.Duration
}

// Option configures the service.
type Option func(*config)

// WithPollInterval sets the idle wait between cycles.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithBackoffInterval sets the wait after a failed cycle.
func WithBackoffInterval(d time.Duration) Option {
	return func(c *config) {
		c.backoffInterval = d
	}
}

// WithMaxTransactionsPerFetch bounds how many fetched transactions are examined per address.
func WithMaxTransactionsPerFetch(n int) Option {
	return func(c *config) {
		c.maxTransactionsPerFetch = n
	}
}

// WithNotificationPause sets the pause after each notification attempt,
// whether or not it was delivered.
func WithNotificationPause(d time.Duration) Option {
	return func(c *config) {
		c.notificationPause = d
	}
}

// WithAddressPause sets the pause after each address of a cycle.
func WithAddressPause(d time.Duration) Option {
	return func(c *config) {
		c.addressPause = d
	}
}

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	cfg        config
	wallets    WalletSource
	fetcher    TransactionFetcher
	notified   NotifiedStore
	dispatcher Dispatcher
	persister  Persister

	tracer  trace.Tracer
	metrics metrics
}

var _ Service = (*service)(nil)

// New creates a wallet monitor.
//
// Defaults: 30s poll interval, 60s backoff, 20 transactions per fetch,
// 500ms pause after a notification and 1s pause after an address.
func New(wallets WalletSource, fetcher TransactionFetcher, notified NotifiedStore, dispatcher Dispatcher, persister Persister, opts ...Option) *service {
	cfg := config{
		pollInterval:            30 * time.Second,
		backoffInterval:         60 * time.Second,
		maxTransactionsPerFetch: 20,
		notificationPause:       500 * time.Millisecond,
		addressPause:            1 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cfg:        cfg,
		wallets:    wallets,
		fetcher:    fetcher,
		notified:   notified,
		dispatcher: dispatcher,
		persister:  persister,
		tracer:     otel.Tracer(instrumentationName),
		metrics:    newMetrics(otel.Meter(instrumentationName)),
	}
}

// Start implements Service.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		s.run(ctx)
	}()

	s.closeFunc = func() {
		cancel()
		<-done
	}
	s.isStarted = true
	return nil
}

// Close implements Service.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// run drives the idle wait, cycle and backoff states until ctx is done.
func (s *service) run(ctx context.Context) {
	logger.Info(ctx, "wallet monitor started", "poll.interval", s.cfg.pollInterval)
	defer logger.Info(ctx, "wallet monitor stopped")

	for {
		if !chflow.Sleep(ctx, s.cfg.pollInterval) {
			return
		}

		err := s.RunCycle(ctx)
		if err == nil {
			continue
		}

		if ctx.Err() != nil {
			return
		}

		logger.Error(ctx, "wallet monitor cycle failed, backing off",
			"error", err,
			"backoff.interval", s.cfg.backoffInterval,
		)

		if !chflow.Sleep(ctx, s.cfg.backoffInterval) {
			return
		}
	}
}
