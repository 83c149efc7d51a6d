// Package notify renders transaction alerts and delivers them to subscribers.
package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/kaspawatch/internal/txclassify"
	"github.com/gabapcia/kaspawatch/internal/watchlist"
)

const (
	// DefaultExplorerURL is the block explorer linked from every alert.
	DefaultExplorerURL = "https://explorer.kaspa.org"

	sompiExponent = -8
	timeLayout    = "2006-01-02 15:04:05"
)

var (
	// ErrInvalidTransaction is returned for transactions that cannot be rendered.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrDeliveryFailed wraps the error reported by the MessageSender.
	ErrDeliveryFailed = errors.New("notification delivery failed")
)

// MessageSender delivers a text message to a chat.
type MessageSender interface {
	// SendMessage sends text, formatted as Markdown, to chatID.
	// A nil error means the message was accepted.
	SendMessage(ctx context.Context, chatID int64, text string, disablePreview bool) error
}

// Dispatcher sends one alert per call.
type Dispatcher interface {
	// Dispatch formats and sends the alert for tx to sub. A nil error means
	// the alert was delivered; only then may the caller mark tx as notified.
	Dispatch(ctx context.Context, sub watchlist.Subscriber, address watchlist.Address, tx txclassify.Transaction, c txclassify.Classification) error
}

type config struct {
	explorerURL string
}

// Option configures the dispatcher.
type Option func(*config)

// WithExplorerURL overrides the block explorer base URL.
func WithExplorerURL(url string) Option {
	return func(c *config) {
		if url != "" {
			c.explorerURL = strings.TrimRight(url, "/")
		}
	}
}

type dispatcher struct {
	cfg    config
	sender MessageSender
}

var _ Dispatcher = (*dispatcher)(nil)

// New creates a Dispatcher delivering through sender.
func New(sender MessageSender, opts ...Option) *dispatcher {
	cfg := config{
		explorerURL: DefaultExplorerURL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &dispatcher{
		cfg:    cfg,
		sender: sender,
	}
}

// Dispatch implements Dispatcher.
func (d *dispatcher) Dispatch(ctx context.Context, sub watchlist.Subscriber, address watchlist.Address, tx txclassify.Transaction, c txclassify.Classification) error {
	if len(tx.Outputs) == 0 {
		return fmt.Errorf("%w: %s has no outputs", ErrInvalidTransaction, tx.ID)
	}

	text := d.render(string(address), tx, c)
	if err := d.sender.SendMessage(ctx, int64(sub), text, true); err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}

	return nil
}

func (d *dispatcher) render(address string, tx txclassify.Transaction, c txclassify.Classification) string {
	from, to := c.Counterparty, address
	icon := "📥"
	if c.Direction == txclassify.Outgoing {
		from, to = address, c.Counterparty
		icon = "📤"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔔 *%s %s Transaction Detected!*\n\n", icon, c.Direction)
	fmt.Fprintf(&b, "💰 *Amount:* %s KAS\n", FormatKAS(c.Amount))
	fmt.Fprintf(&b, "📤 *From:* `%s`\n", ShortenAddress(from))
	fmt.Fprintf(&b, "📥 *To:* `%s`\n", ShortenAddress(to))
	fmt.Fprintf(&b, "🔗 *TX Hash:* `%s`\n", ShortenTxID(tx.ID))
	fmt.Fprintf(&b, "🕒 *Time:* %s\n\n", FormatBlockTime(tx.BlockTime))
	fmt.Fprintf(&b, "[View on Explorer](%s/txs/%s)", d.cfg.explorerURL, tx.ID)

	return b.String()
}

// FormatKAS renders an amount of sompi as KAS with 8 decimal places.
func FormatKAS(sompi int64) string {
	return decimal.New(sompi, sompiExponent).StringFixed(-sompiExponent)
}

// ShortenAddress keeps the first 15 and last 10 characters of addresses
// longer than 30 characters.
func ShortenAddress(address string) string {
	if len(address) <= 30 {
		return address
	}

	return address[:15] + "..." + address[len(address)-10:]
}

// ShortenTxID keeps the first 16 characters of a transaction id.
func ShortenTxID(id string) string {
	if len(id) <= 16 {
		return id
	}

	return id[:16] + "..."
}

// FormatBlockTime renders a block time in milliseconds as a UTC timestamp.
func FormatBlockTime(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(timeLayout) + " UTC"
}
