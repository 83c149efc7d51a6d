// Package telegram is a minimal Telegram Bot API client covering what the bot
// needs: sending Markdown messages (optionally with a reply keyboard) and
// long polling for updates.
package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/kaspawatch/internal/notify"
	"github.com/gabapcia/kaspawatch/internal/pkg/transport/restjson"
)

// DefaultBaseURL is the public Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// ParseModeMarkdown selects the legacy Markdown formatting of the Bot API.
const ParseModeMarkdown = "Markdown"

// ErrAPIError is returned when the Bot API answers with ok=false or a non-2xx status.
var ErrAPIError = errors.New("telegram api error")

type (
	// Chat is the conversation a message belongs to.
	Chat struct {
		ID int64 `json:"id"`
	}

	// Message is an incoming chat message.
	Message struct {
		MessageID int64  `json:"message_id"`
		Chat      Chat   `json:"chat"`
		Text      string `json:"text"`
	}

	// Update is an incoming Bot API update. Only message updates are used.
	Update struct {
		UpdateID int64    `json:"update_id"`
		Message  *Message `json:"message,omitempty"`
	}

	// OutgoingMessage is a message to send.
	OutgoingMessage struct {
		ChatID         int64
		Text           string
		ParseMode      string
		DisablePreview bool
		Keyboard       [][]string // reply keyboard rows; nil keeps the current keyboard
	}
)

type (
	keyboardButton struct {
		Text string `json:"text"`
	}

	replyKeyboardMarkup struct {
		Keyboard       [][]keyboardButton `json:"keyboard"`
		ResizeKeyboard bool               `json:"resize_keyboard"`
	}

	sendMessageRequest struct {
		ChatID                int64                `json:"chat_id"`
		Text                  string               `json:"text"`
		ParseMode             string               `json:"parse_mode,omitempty"`
		DisableWebPagePreview bool                 `json:"disable_web_page_preview,omitempty"`
		ReplyMarkup           *replyKeyboardMarkup `json:"reply_markup,omitempty"`
	}

	getUpdatesRequest struct {
		Offset         int64    `json:"offset,omitempty"`
		Timeout        int      `json:"timeout"`
		AllowedUpdates []string `json:"allowed_updates"`
	}

	// apiResponse is the envelope of every Bot API response.
	apiResponse struct {
		OK          bool            `json:"ok"`
		Description string          `json:"description"`
		ErrorCode   int             `json:"error_code"`
		Result      json.RawMessage `json:"result"`
	}
)

// Err returns an error if the envelope reports a failure.
func (r apiResponse) Err() error {
	if r.OK {
		return nil
	}

	return fmt.Errorf("%w: [%d] %s", ErrAPIError, r.ErrorCode, r.Description)
}

type client struct {
	conn restjson.Client
}

// Compile-time assertion that client can deliver notifications.
var _ notify.MessageSender = (*client)(nil)

// NewClient creates a Bot API client. conn must be rooted at
// {DefaultBaseURL}/bot{token}.
func NewClient(conn restjson.Client) *client {
	return &client{
		conn: conn,
	}
}

// BotURL returns the API root for token.
func BotURL(baseURL, token string) string {
	return fmt.Sprintf("%s/bot%s", baseURL, token)
}

func (c *client) call(ctx context.Context, method string, in, result any) error {
	var res apiResponse
	if err := c.conn.Post(ctx, "/"+method, in, &res); err != nil {
		var statusErr *restjson.StatusError
		if errors.As(err, &statusErr) {
			return fmt.Errorf("%w: %s: %w", ErrAPIError, method, err)
		}

		return err
	}

	if err := res.Err(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	if result == nil {
		return nil
	}

	return json.Unmarshal(res.Result, result)
}

// Send delivers msg.
func (c *client) Send(ctx context.Context, msg OutgoingMessage) error {
	req := sendMessageRequest{
		ChatID:                msg.ChatID,
		Text:                  msg.Text,
		ParseMode:             msg.ParseMode,
		DisableWebPagePreview: msg.DisablePreview,
	}

	if msg.Keyboard != nil {
		markup := &replyKeyboardMarkup{ResizeKeyboard: true}
		for _, row := range msg.Keyboard {
			buttons := make([]keyboardButton, len(row))
			for i, text := range row {
				buttons[i] = keyboardButton{Text: text}
			}

			markup.Keyboard = append(markup.Keyboard, buttons)
		}

		req.ReplyMarkup = markup
	}

	return c.call(ctx, "sendMessage", req, nil)
}

// SendMessage implements notify.MessageSender with Markdown formatting.
func (c *client) SendMessage(ctx context.Context, chatID int64, text string, disablePreview bool) error {
	return c.Send(ctx, OutgoingMessage{
		ChatID:         chatID,
		Text:           text,
		ParseMode:      ParseModeMarkdown,
		DisablePreview: disablePreview,
	})
}

// GetUpdates long polls for message updates with an id of at least offset.
// The server holds the request for up to timeout when nothing is pending, so
// the HTTP client timeout must be longer than timeout.
func (c *client) GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
	req := getUpdatesRequest{
		Offset:         offset,
		Timeout:        int(timeout / time.Second),
		AllowedUpdates: []string{"message"},
	}

	var updates []Update
	if err := c.call(ctx, "getUpdates", req, &updates); err != nil {
		return nil, err
	}

	return updates, nil
}
