package walletmonitor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/kaspawatch/internal/pkg/logger"
	"github.com/gabapcia/kaspawatch/internal/pkg/x/chflow"
	"github.com/gabapcia/kaspawatch/internal/txclassify"
	"github.com/gabapcia/kaspawatch/internal/watchlist"
)

// RunCycle implements Service.
//
// It works on a snapshot of the watch list taken when the cycle starts.
// Fetch and dispatch failures are logged and skipped. A panic is recovered
// and returned as ErrCycleFault; cancellation of ctx is returned as is.
func (s *service) RunCycle(ctx context.Context) (err error) {
	ctx = logger.Derive(ctx, "cycle.id", newCycleID())
	ctx, span := s.tracer.Start(ctx, "walletmonitor.RunCycle")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCycleFault, r)
		}

		if err != nil && ctx.Err() == nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.metrics.cycleFaults.Add(ctx, 1)
		}
	}()

	s.metrics.cycles.Add(ctx, 1)

	entries := s.wallets.Snapshot()
	span.SetAttributes(attribute.Int("wallets.count", len(entries)))
	logger.Debug(ctx, "wallet monitor cycle started", "wallets.count", len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.checkWallet(ctx, entry)

		if !chflow.Sleep(ctx, s.cfg.addressPause) {
			return ctx.Err()
		}
	}

	return nil
}

// checkWallet notifies entry's subscriber about the new transactions of its address.
func (s *service) checkWallet(ctx context.Context, entry watchlist.Entry) {
	address := string(entry.Address)
	ctx = logger.Derive(ctx, "wallet.subscriber", entry.Subscriber, "wallet.address", address)

	txs, err := s.fetcher.FetchTransactions(ctx, address)
	if err != nil {
		s.metrics.fetchFailures.Add(ctx, 1)
		logger.Warn(ctx, "failed to fetch wallet transactions, skipping until next cycle", "error", err)
		return
	}

	for _, tx := range txs[:min(len(txs), s.cfg.maxTransactionsPerFetch)] {
		c, err := txclassify.Classify(address, tx)
		if err != nil {
			logger.Debug(ctx, "transaction skipped", "transaction.id", tx.ID, "reason", err)
			continue
		}

		if s.notified.IsNotified(address, tx.ID) {
			continue
		}

		s.notify(ctx, entry, tx, c)

		// Paced after every attempt, delivered or not.
		if !chflow.Sleep(ctx, s.cfg.notificationPause) {
			return
		}
	}
}

// notify dispatches the notification of tx and, once delivered, marks it and
// persists the state. An undelivered transaction is retried next cycle.
func (s *service) notify(ctx context.Context, entry watchlist.Entry, tx txclassify.Transaction, c txclassify.Classification) {
	ctx, span := s.tracer.Start(ctx, "walletmonitor.notify", trace.WithAttributes(
		attribute.String("transaction.id", tx.ID),
		attribute.String("transaction.direction", c.Direction.String()),
	))
	defer span.End()

	if err := s.dispatcher.Dispatch(ctx, entry.Subscriber, entry.Address, tx, c); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.dispatchFailures.Add(ctx, 1)
		logger.Warn(ctx, "failed to dispatch notification, retrying next cycle", "transaction.id", tx.ID, "error", err)
		return
	}

	s.notified.MarkNotified(string(entry.Address), tx.ID)
	s.metrics.notifications.Add(ctx, 1)
	logger.Info(ctx, "notification delivered",
		"transaction.id", tx.ID,
		"transaction.direction", c.Direction.String(),
		"transaction.amount", c.Amount,
	)

	_ = s.persister.Persist(ctx)
}

// newCycleID returns a time-ordered id for log correlation.
func newCycleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
