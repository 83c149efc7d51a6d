package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/kaspawatch/internal/walletregistry"
	"github.com/gabapcia/kaspawatch/internal/watchlist"

	"github.com/urfave/cli/v3"
)

func chatFlag() *cli.Int64Flag {
	return &cli.Int64Flag{
		Name:     "chat",
		Usage:    "Telegram chat id the wallet belongs to",
		Required: true,
	}
}

// startWatchingWalletCommand returns a CLI command that registers a wallet
// address for a chat. The backlog of the address is seeded first, so only
// new transactions are notified. The command holds guard while it runs and
// fails if a `start` instance holds it.
//
// Usage example:
//
//	kaspawatch watch --chat 123456 --address kaspa:qz7ulu4c...
func startWatchingWalletCommand(wr walletregistry.Service, guard Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register a wallet to be monitored for transaction activity on behalf of a chat.",
		Usage:       "Registers a wallet address for watching. Must provide both chat and address. The bot must be stopped; use /add in the chat while it runs.",
		Flags: []cli.Flag{
			chatFlag(),
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to start watching",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chat    = watchlist.Subscriber(c.Int64("chat"))
				address = c.String("address")
			)

			return exclusively(ctx, guard, func() error {
				return wr.StartWatching(ctx, chat, address)
			})
		},
	}
}

// stopWatchingWalletCommand returns a CLI command that unregisters a wallet
// address from a chat. Like watch, it runs under guard.
//
// Usage example:
//
//	kaspawatch unwatch --chat 123456 --address kaspa:qz7ulu4c...
func stopWatchingWalletCommand(wr walletregistry.Service, guard Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Unregister a wallet from being monitored on behalf of a chat.",
		Usage:       "Stops watching a wallet address. Must provide both chat and address. The bot must be stopped; use /remove in the chat while it runs.",
		Flags: []cli.Flag{
			chatFlag(),
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to stop watching",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				chat    = watchlist.Subscriber(c.Int64("chat"))
				address = c.String("address")
			)

			return exclusively(ctx, guard, func() error {
				return wr.StopWatching(ctx, chat, address)
			})
		},
	}
}

// listWatchedWalletsCommand returns a CLI command that prints the wallets of
// a chat, one per line, in the order they were added.
//
// Usage example:
//
//	kaspawatch list --chat 123456
func listWatchedWalletsCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List the wallets monitored on behalf of a chat.",
		Usage:       "Prints the watched wallet addresses of a chat.",
		Flags: []cli.Flag{
			chatFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			w := c.Root().Writer

			for _, address := range wr.ListWatched(ctx, watchlist.Subscriber(c.Int64("chat"))) {
				if _, err := fmt.Fprintln(w, address); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
