package walletregistry

import (
	"context"
	"errors"
	"strings"

	"github.com/gabapcia/kaspawatch/internal/pkg/logger"
	"github.com/gabapcia/kaspawatch/internal/pkg/validator"
	"github.com/gabapcia/kaspawatch/internal/txclassify"
	"github.com/gabapcia/kaspawatch/internal/watchlist"
)

// MaxBacklogSeed bounds how many backlog transactions are seeded on add.
const MaxBacklogSeed = 50

// ErrInvalidAddress is returned for addresses without the kaspa: prefix.
var ErrInvalidAddress = errors.New("invalid kaspa address")

// WalletIdentifier identifies a watched wallet: a subscriber and one of its addresses.
type WalletIdentifier struct {
	Subscriber watchlist.Subscriber
	Address    string `validate:"required,kaspa_address"`
}

// buildWalletIdentifier trims and validates the input.
func buildWalletIdentifier(sub watchlist.Subscriber, address string) (WalletIdentifier, error) {
	id := WalletIdentifier{
		Subscriber: sub,
		Address:    strings.TrimSpace(address),
	}

	if err := validator.Validate(id); err != nil {
		return id, errors.Join(ErrInvalidAddress, err)
	}

	return id, nil
}

// StartWatching implements Service.
func (s *service) StartWatching(ctx context.Context, sub watchlist.Subscriber, address string) error {
	id, err := buildWalletIdentifier(sub, address)
	if err != nil {
		return err
	}

	ctx = logger.Derive(ctx, "wallet.subscriber", id.Subscriber, "wallet.address", id.Address)

	if s.wallets.Contains(id.Subscriber, watchlist.Address(id.Address)) {
		return watchlist.ErrAlreadyWatched
	}

	s.seedBacklog(ctx, id.Address)

	if err := s.wallets.Add(id.Subscriber, watchlist.Address(id.Address)); err != nil {
		return err
	}

	logger.Info(ctx, "wallet registered")
	s.persist(ctx)
	return nil
}

// seedBacklog marks the current transactions of address as notified.
// A failing fetch is logged and the address is registered anyway; its
// backlog may then be notified by the first cycle.
func (s *service) seedBacklog(ctx context.Context, address string) {
	var txs []txclassify.Transaction
	err := s.retry.Execute(ctx, func() error {
		var err error
		txs, err = s.fetcher.FetchTransactions(ctx, address)
		return err
	})
	if err != nil {
		logger.Warn(ctx, "failed to fetch backlog, registering without seeding", "error", err)
		return
	}

	txs = txs[:min(len(txs), MaxBacklogSeed)]

	ids := make([]string, len(txs))
	for i, tx := range txs {
		ids[i] = tx.ID
	}

	s.notified.SeedAsNotified(address, ids)
	logger.Debug(ctx, "backlog seeded", "transactions.count", len(ids))
}

// StopWatching implements Service.
func (s *service) StopWatching(ctx context.Context, sub watchlist.Subscriber, address string) error {
	address = strings.TrimSpace(address)

	if err := s.wallets.Remove(sub, watchlist.Address(address)); err != nil {
		return err
	}

	ctx = logger.Derive(ctx, "wallet.subscriber", sub, "wallet.address", address)
	logger.Info(ctx, "wallet unregistered")
	s.persist(ctx)
	return nil
}

// ListWatched implements Service.
func (s *service) ListWatched(_ context.Context, sub watchlist.Subscriber) []watchlist.Address {
	return s.wallets.List(sub)
}

// persist saves the state. Failures are already logged by the persister and
// do not undo the in-memory change.
func (s *service) persist(ctx context.Context) {
	_ = s.persister.Persist(ctx)
}
