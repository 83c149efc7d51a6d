package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	botapi "github.com/gabapcia/kaspawatch/internal/infra/telegram"
	"github.com/gabapcia/kaspawatch/internal/pkg/logger"
	"github.com/gabapcia/kaspawatch/internal/pkg/validator"
	"github.com/gabapcia/kaspawatch/internal/walletregistry"
	"github.com/gabapcia/kaspawatch/internal/watchlist"
)

// parseCommand splits "/cmd@bot arg1 arg2" into "cmd" and its arguments.
// ok is false when text is not a command.
func parseCommand(text string) (cmd string, args []string, ok bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil, false
	}

	cmd = strings.TrimPrefix(fields[0], "/")
	cmd, _, _ = strings.Cut(cmd, "@")

	return strings.ToLower(cmd), fields[1:], true
}

// handleMessage answers a single chat message. Messages that are neither a
// known command, a keyboard button nor an address are ignored.
func (s *service) handleMessage(ctx context.Context, msg botapi.Message) {
	sub := watchlist.Subscriber(msg.Chat.ID)
	ctx = logger.Derive(ctx, "chat.id", sub)

	r, ok := s.route(ctx, sub, msg.Text)
	if !ok {
		return
	}

	out := botapi.OutgoingMessage{
		ChatID:   msg.Chat.ID,
		Text:     r.text,
		Keyboard: r.keyboard,
	}
	if r.markdown {
		out.ParseMode = botapi.ParseModeMarkdown
	}

	if err := s.bot.Send(ctx, out); err != nil {
		logger.Warn(ctx, "failed to reply to chat message", "error", err)
	}
}

func (s *service) route(ctx context.Context, sub watchlist.Subscriber, text string) (reply, bool) {
	if cmd, args, ok := parseCommand(text); ok {
		switch cmd {
		case "start":
			return reply{text: welcomeText, markdown: true, keyboard: mainKeyboard}, true
		case "help":
			return markdown(helpText), true
		case "add":
			return s.addWallet(ctx, sub, args), true
		case "list":
			return s.listWallets(ctx, sub), true
		case "remove":
			return s.removeWallet(ctx, sub, args), true
		default:
			return reply{}, false
		}
	}

	text = strings.TrimSpace(text)
	switch {
	case text == ButtonAddWallet:
		return markdown(addPromptText), true
	case text == ButtonListWallets:
		return s.listWallets(ctx, sub), true
	case text == ButtonRemoveWallet:
		return markdown(removePromptText), true
	case text == ButtonHelp:
		return markdown(helpText), true
	case strings.HasPrefix(text, validator.KaspaAddressPrefix):
		return s.addWallet(ctx, sub, []string{text}), true
	default:
		return reply{}, false
	}
}

func (s *service) addWallet(ctx context.Context, sub watchlist.Subscriber, args []string) reply {
	if len(args) == 0 {
		return plain(addUsageText)
	}

	address := strings.TrimSpace(args[0])

	err := s.registry.StartWatching(ctx, sub, address)
	switch {
	case err == nil:
		logger.Info(ctx, "wallet added from chat", "wallet.address", address)
		return markdown(fmt.Sprintf(addedFormat, codeSpanSafe(address)))
	case errors.Is(err, walletregistry.ErrInvalidAddress):
		return plain(invalidAddressText)
	case errors.Is(err, watchlist.ErrAlreadyWatched):
		return markdown(fmt.Sprintf(alreadyWatchedFormat, codeSpanSafe(address)))
	default:
		logger.Error(ctx, "failed to add wallet from chat", "wallet.address", address, "error", err)
		return plain(internalErrorText)
	}
}

func (s *service) listWallets(ctx context.Context, sub watchlist.Subscriber) reply {
	addresses := s.registry.ListWatched(ctx, sub)
	if len(addresses) == 0 {
		return plain(emptyListText)
	}

	return markdown(walletListText(addresses))
}

func (s *service) removeWallet(ctx context.Context, sub watchlist.Subscriber, args []string) reply {
	if len(s.registry.ListWatched(ctx, sub)) == 0 {
		return plain(nothingToRemoveText)
	}

	if len(args) == 0 {
		return plain(removeUsageText)
	}

	address := strings.TrimSpace(args[0])

	err := s.registry.StopWatching(ctx, sub, address)
	switch {
	case err == nil:
		logger.Info(ctx, "wallet removed from chat", "wallet.address", address)
		return markdown(fmt.Sprintf(removedFormat, codeSpanSafe(address)))
	case errors.Is(err, watchlist.ErrNotWatched):
		return plain(notWatchedText)
	default:
		logger.Error(ctx, "failed to remove wallet from chat", "wallet.address", address, "error", err)
		return plain(internalErrorText)
	}
}
