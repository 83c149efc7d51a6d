package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// Service is a background service with a start/close lifecycle.
type Service interface {
	Start(ctx context.Context) error
	Close()
}

// Check is a Service that only verifies a precondition when started.
type Check func(ctx context.Context) error

// Start runs the check.
func (c Check) Start(ctx context.Context) error {
	return c(ctx)
}

// Close is a no-op.
func (Check) Close() {}

// startCommand returns a CLI command that starts guard and then every
// service in order, and keeps them running until an interrupt (SIGINT or
// SIGTERM) is received or ctx is done. Services are closed in reverse order,
// guard last.
//
// Usage example:
//
//	kaspawatch start
func startCommand(guard Service, services ...Service) *cli.Command {
	services = append([]Service{guard}, services...)


	return &cli.Command{
		Name:        "start",
		Description: "Starts the wallet monitor and the Telegram bot.",
		Usage:       "Runs the monitor and the bot. Terminates gracefully on Ctrl+C or termination signals. Only one instance may run per snapshot.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			for i, s := range services {
				if err := s.Start(ctx); err != nil {
					closeAll(services[:i])
					return err
				}
			}
			defer closeAll(services)

			select {
			case <-quit:
			case <-ctx.Done():
			}

			return nil
		},
	}
}

// exclusively runs fn while guard is started.
func exclusively(ctx context.Context, guard Service, fn func() error) error {
	if err := guard.Start(ctx); err != nil {
		return err
	}
	defer guard.Close()

	return fn()
}

func closeAll(services []Service) {
	for i := len(services) - 1; i >= 0; i-- {
		services[i].Close()
	}
}
