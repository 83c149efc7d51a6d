package snapshot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/kaspawatch/internal/pkg/logger"

	"github.com/google/uuid"
)

var (
	// ErrLeaseHeld is returned by Lease.Acquire when another process owns an
	// unexpired lease, typically a running `kaspawatch start`.
	ErrLeaseHeld = errors.New("snapshot is owned by another kaspawatch process")

	// ErrGuardAlreadyStarted is returned if Guard.Start is called more than once.
	ErrGuardAlreadyStarted = errors.New("snapshot guard already started")
)

// DefaultLeaseTTL is how long an acquired lease lasts without renewal.
const DefaultLeaseTTL = 30 * time.Second

// Lease makes a single process the writer of the stored snapshot.
type Lease interface {
	// Acquire takes the lease for owner until ttl elapses. Acquiring a lease
	// already held by owner extends it.
	// Returns ErrLeaseHeld if a different owner holds an unexpired lease.
	Acquire(ctx context.Context, owner string, ttl time.Duration) error

	// Release gives the lease up. It is a no-op if owner does not hold it.
	Release(ctx context.Context, owner string) error
}

// Guard owns the snapshot lease for the lifetime of a process role.
//
// Start acquires the lease, then reloads the state from storage so it builds
// on the last document written by the previous owner. The lease is renewed
// in the background every third of its TTL until Close releases it.
type Guard struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc func()

	lease     Lease
	persister Persister
	owner     string
	ttl       time.Duration
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithLeaseTTL overrides DefaultLeaseTTL.
func WithLeaseTTL(ttl time.Duration) GuardOption {
	return func(g *Guard) {
		g.ttl = ttl
	}
}

// NewGuard creates a Guard with a random owner id.
func NewGuard(lease Lease, persister Persister, opts ...GuardOption) *Guard {
	g := &Guard{
		lease:     lease,
		persister: persister,
		owner:     uuid.NewString(),
		ttl:       DefaultLeaseTTL,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Start acquires the lease and restores the state.
// Returns ErrLeaseHeld if another process owns the snapshot.
func (g *Guard) Start(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.isStarted {
		return ErrGuardAlreadyStarted
	}

	ctx = logger.Derive(ctx, "lease.owner", g.owner)

	if err := g.lease.Acquire(ctx, g.owner, g.ttl); err != nil {
		return err
	}

	g.persister.Restore(ctx)

	renewCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	go func() {
		defer close(done)
		g.renew(renewCtx)
	}()

	g.closeFunc = func() {
		cancel()
		<-done

		if err := g.lease.Release(context.WithoutCancel(ctx), g.owner); err != nil {
			logger.Warn(ctx, "failed to release snapshot lease", "error", err)
		}
	}
	g.isStarted = true

	logger.Debug(ctx, "snapshot lease acquired", "lease.ttl", g.ttl)
	return nil
}

// Close stops the renewal and releases the lease.
// It is safe to call Close even if the guard was never started.
func (g *Guard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closeFunc != nil {
		g.closeFunc()
	}

	g.closeFunc = nil
	g.isStarted = false
}

func (g *Guard) renew(ctx context.Context) {
	ticker := time.NewTicker(max(g.ttl/3, time.Millisecond))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := g.lease.Acquire(ctx, g.owner, g.ttl); err != nil && ctx.Err() == nil {
			logger.Error(ctx, "failed to renew snapshot lease", "error", err)
		}
	}
}
