// Package telegram exposes the wallet registry as a Telegram chat bot.
//
// The service long polls the Bot API for new messages and answers the
// commands /start, /help, /add, /list and /remove, the buttons of the reply
// keyboard, and plain text starting with "kaspa:", which is handled as /add.
package telegram

import (
	"context"
	"errors"
	"sync"
	"time"

	botapi "github.com/gabapcia/kaspawatch/internal/infra/telegram"
	"github.com/gabapcia/kaspawatch/internal/pkg/logger"
	"github.com/gabapcia/kaspawatch/internal/pkg/x/chflow"
	"github.com/gabapcia/kaspawatch/internal/walletregistry"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Bot is the subset of the Bot API used by the handler.
type Bot interface {
	Send(ctx context.Context, msg botapi.OutgoingMessage) error
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]botapi.Update, error)
}

// Service defines the chat handler lifecycle.
type Service interface {
	// Start launches the update loop in the background.
	// Returns ErrServiceAlreadyStarted if the service is already running.
	Start(ctx context.Context) error

	// Close stops the update loop and waits for it to return.
	// It is safe to call Close even if the service was never started.
	Close()
}

type closeFunc func()

type config struct {
	pollTimeout  time.Duration
	errorBackoff time.Duration
}

// Option configures the service.
type Option func(*config)

// WithPollTimeout sets how long a single getUpdates call may wait for messages.
func WithPollTimeout(d time.Duration) Option {
	return func(c *config) {
		c.pollTimeout = d
	}
}

// WithErrorBackoff sets the wait after a failed getUpdates call.
func WithErrorBackoff(d time.Duration) Option {
	return func(c *config) {
		c.errorBackoff = d
	}
}

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	cfg      config
	bot      Bot
	registry walletregistry.Service
}

var _ Service = (*service)(nil)

// New creates a chat handler answering through bot and acting on registry.
//
// Defaults: 30s poll timeout, 5s backoff after a failed poll.
func New(bot Bot, registry walletregistry.Service, opts ...Option) *service {
	cfg := config{
		pollTimeout:  30 * time.Second,
		errorBackoff: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		cfg:      cfg,
		bot:      bot,
		registry: registry,
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

// run polls for updates until ctx is done. Updates are acknowledged by
// moving the offset past them, whether or not handling succeeded.
func (s *service) run(ctx context.Context) {
	logger.Info(ctx, "chat handler started")
	defer logger.Info(ctx, "chat handler stopped")

	var offset int64
	for {
		updates, err := s.bot.GetUpdates(ctx, offset, s.cfg.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			logger.Warn(ctx, "failed to poll chat updates", "error", err, "backoff.interval", s.cfg.errorBackoff)
			if !chflow.Sleep(ctx, s.cfg.errorBackoff) {
				return
			}

			continue
		}

		for _, u := range updates {
			offset = max(offset, u.UpdateID+1)

			if u.Message == nil || u.Message.Text == "" {
				continue
			}

			s.handleMessage(logger.Derive(ctx, "update.id", u.UpdateID), *u.Message)
		}

		if ctx.Err() != nil {
			return
		}
	}
}
