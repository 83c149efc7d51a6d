package cli

import (
	"context"
	"os"

	"github.com/gabapcia/kaspawatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the kaspawatch CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs the wallet monitor and the chat bot until interrupted.
//   - `watch`: Registers a wallet for a chat.
//   - `unwatch`: Unregisters a wallet from a chat.
//   - `list`: Prints the wallets watched by a chat.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - wr: The walletregistry service implementation used by wallet commands.
//   - guard: Holds the snapshot lease. `start`, `watch` and `unwatch` run
//     under it, so a wallet command fails while the bot is running.
//   - services: The background services started, in order, by the start command.
func Run(ctx context.Context, wr walletregistry.Service, guard Service, services ...Service) error {
	return newApp(wr, guard, services...).Run(ctx, os.Args)
}

func newApp(wr walletregistry.Service, guard Service, services ...Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "kaspawatch",
		Description:           "Command-line interface for managing and running the Kaspa wallet monitor.",
		Usage:                 "kaspawatch [command] [flags]",
		Commands: []*cli.Command{
			startCommand(guard, services...),
			startWatchingWalletCommand(wr, guard),
			stopWatchingWalletCommand(wr, guard),
			listWatchedWalletsCommand(wr),
		},
	}
}
