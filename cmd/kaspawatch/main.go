// Command kaspawatch runs the Kaspa wallet monitor Telegram bot and its
// operator commands.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gabapcia/kaspawatch/internal/config"
	"github.com/gabapcia/kaspawatch/internal/handlers/cli"
	telegramhandler "github.com/gabapcia/kaspawatch/internal/handlers/telegram"
	"github.com/gabapcia/kaspawatch/internal/infra/kaspa"
	"github.com/gabapcia/kaspawatch/internal/infra/storage/file"
	"github.com/gabapcia/kaspawatch/internal/infra/storage/redis"
	"github.com/gabapcia/kaspawatch/internal/infra/telegram"
	"github.com/gabapcia/kaspawatch/internal/notify"
	"github.com/gabapcia/kaspawatch/internal/pkg/logger"
	"github.com/gabapcia/kaspawatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/kaspawatch/internal/pkg/transport/http"
	"github.com/gabapcia/kaspawatch/internal/pkg/transport/restjson"
	"github.com/gabapcia/kaspawatch/internal/snapshot"
	"github.com/gabapcia/kaspawatch/internal/txdedup"
	"github.com/gabapcia/kaspawatch/internal/walletmonitor"
	"github.com/gabapcia/kaspawatch/internal/walletregistry"
	"github.com/gabapcia/kaspawatch/internal/watchlist"
)

// longPollGrace is added to the getUpdates timeout to get the HTTP timeout.
const longPollGrace = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg); err != nil {
		logger.Error(context.Background(), "kaspawatch exited with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	_ = logger.Sync()
}

func run(ctx context.Context, cfg config.Config) error {
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName,
			telemetry.WithEndpoint(cfg.Telemetry.Endpoint),
			telemetry.WithInsecure(cfg.Telemetry.Insecure),
		)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}

		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn(ctx, "failed to shut down telemetry", "error", err)
			}
		}()
	}

	storage, closer, err := newSnapshotStorage(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("init snapshot storage: %w", err)
	}
	defer closer.Close()

	var (
		wallets   = watchlist.New()
		notified  = txdedup.New()
		persister = snapshot.NewPersister(storage, wallets, notified)
		guard     = snapshot.NewGuard(storage, persister, snapshot.WithLeaseTTL(cfg.Storage.LeaseTTL))
	)
	// list reads this state; commands that write restore again once the
	// guard holds the lease.
	persister.Restore(ctx)

	kaspaHTTP := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.Kaspa.Timeout),
		transporthttp.WithRetryMax(cfg.Kaspa.RetryMax),
	)
	fetcher := kaspa.NewClient(restjson.NewClient(kaspaHTTP.StandardClient(), cfg.Kaspa.BaseURL))

	botHTTP := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.Telegram.PollTimeout + longPollGrace),
	)
	bot := telegram.NewClient(restjson.NewClient(botHTTP.StandardClient(), telegram.BotURL(cfg.Telegram.BaseURL, cfg.Telegram.Token)))

	registry := walletregistry.New(wallets, notified, fetcher, persister)

	monitor := walletmonitor.New(wallets, fetcher, notified,
		notify.New(bot, notify.WithExplorerURL(cfg.Kaspa.ExplorerURL)),
		persister,
		walletmonitor.WithPollInterval(cfg.Monitor.PollInterval),
		walletmonitor.WithBackoffInterval(cfg.Monitor.BackoffInterval),
		walletmonitor.WithMaxTransactionsPerFetch(cfg.Monitor.MaxTransactionsPerFetch),
		walletmonitor.WithNotificationPause(cfg.Monitor.NotificationPause),
		walletmonitor.WithAddressPause(cfg.Monitor.AddressPause),
	)

	chat := telegramhandler.New(bot, registry,
		telegramhandler.WithPollTimeout(cfg.Telegram.PollTimeout),
		telegramhandler.WithErrorBackoff(cfg.Telegram.ErrorBackoff),
	)

	requireToken := cli.Check(func(context.Context) error {
		return cfg.Telegram.RequireToken()
	})

	return cli.Run(ctx, registry, guard, requireToken, monitor, chat)
}

// snapshotBackend stores the snapshot and guards it against concurrent writers.
type snapshotBackend interface {
	snapshot.Storage
	snapshot.Lease
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newSnapshotStorage opens the configured snapshot backend.
func newSnapshotStorage(ctx context.Context, cfg config.Storage) (snapshotBackend, io.Closer, error) {
	switch cfg.Backend {
	case config.StorageBackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}

		return client, client, nil
	default:
		return file.New(cfg.FilePath), nopCloser{}, nil
	}
}
