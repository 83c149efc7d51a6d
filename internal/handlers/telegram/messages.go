package telegram

import (
	"fmt"
	"strings"

	"github.com/gabapcia/kaspawatch/internal/notify"
	"github.com/gabapcia/kaspawatch/internal/watchlist"
)

// Reply keyboard buttons.
const (
	ButtonAddWallet    = "📝 Add Wallet"
	ButtonListWallets  = "📋 List Wallets"
	ButtonRemoveWallet = "❌ Remove Wallet"
	ButtonHelp         = "ℹ️ Help"
)

var mainKeyboard = [][]string{
	{ButtonAddWallet, ButtonListWallets},
	{ButtonRemoveWallet, ButtonHelp},
}

const exampleAddress = "kaspa:qz7ulu4c25dh7fzec9zjyrmlhnkzrg4wmf89q37g3d5x3y2uzlsvg3q3x8n4m"

const (
	welcomeText = "🚀 *Welcome to Kaspa Wallet Monitor Bot!*\n\n" +
		"This bot monitors your Kaspa wallet addresses and notifies you " +
		"of incoming transactions.\n\n" +
		"Use the buttons below to:\n" +
		"• Add wallet addresses to monitor\n" +
		"• View your monitored wallets\n" +
		"• Remove wallets from monitoring\n\n" +
		"Get started by adding a wallet address!"

	helpText = "📖 *Kaspa Wallet Monitor - Help*\n\n" +
		"*Commands:*\n" +
		"/start - Start the bot\n" +
		"/add <address> - Add a Kaspa wallet address\n" +
		"/list - List all monitored wallets\n" +
		"/remove <address> - Remove a wallet address\n" +
		"/help - Show this help message\n\n" +
		"*Wallet Address Format:*\n" +
		"Kaspa addresses start with 'kaspa:' followed by the address\n" +
		"Example: " + exampleAddress + "\n\n" +
		"*Notifications:*\n" +
		"You'll receive instant notifications when:\n" +
		"• KAS tokens are received\n" +
		"• Tokens are sent from your wallet\n\n" +
		"Each notification includes:\n" +
		"• Transaction amount\n" +
		"• From/To addresses\n" +
		"• Transaction hash\n" +
		"• Direct link to explorer"

	addUsageText = "📝 Please provide a wallet address:\n\n" +
		"Usage: /add <kaspa_address>\n" +
		"Example: /add " + exampleAddress + "\n\n" +
		"Or send me the wallet address directly."

	addPromptText = "📝 *Add a Kaspa Wallet*\n\n" +
		"Send me the wallet address using:\n" +
		"/add <kaspa_address>\n\n" +
		"Example:\n" +
		"/add " + exampleAddress

	invalidAddressText = "❌ Invalid Kaspa address format!\n\n" +
		"Kaspa addresses must start with 'kaspa:'\n" +
		"Please try again with a valid address."

	alreadyWatchedFormat = "⚠️ This wallet is already being monitored!\n\n" +
		"Address: `%s`"

	addedFormat = "✅ *Wallet added successfully!*\n\n" +
		"Address: `%s`\n\n" +
		"You'll now receive notifications for all transactions to this address."

	emptyListText = "📭 You're not monitoring any wallets yet.\n\n" +
		"Use /add <address> to start monitoring a wallet!"

	nothingToRemoveText = "📭 You're not monitoring any wallets."

	removeUsageText = "📝 Please provide the wallet address to remove:\n\n" +
		"Usage: /remove <kaspa_address>"

	removePromptText = "❌ *Remove a Wallet*\n\n" +
		"Use: /remove <kaspa_address>"

	removedFormat = "✅ *Wallet removed successfully!*\n\n" +
		"Address: `%s`\n\n" +
		"You'll no longer receive notifications for this wallet."

	notWatchedText = "❌ This wallet is not in your monitoring list."

	internalErrorText = "⚠️ Something went wrong, please try again later."
)

// reply is an answer to a chat message. Texts carrying user input or
// underscores are sent as plain text.
type reply struct {
	text     string
	markdown bool
	keyboard [][]string
}

func plain(text string) reply {
	return reply{text: text}
}

func markdown(text string) reply {
	return reply{text: text, markdown: true}
}

// codeSpanSafe removes the backticks from s so it cannot close the
// surrounding code span. Legacy Markdown has no escape inside entities.
func codeSpanSafe(s string) string {
	return strings.ReplaceAll(s, "`", "")
}

// walletListText renders the numbered, shortened list of addresses.
func walletListText(addresses []watchlist.Address) string {
	var b strings.Builder
	b.WriteString("📋 *Your Monitored Wallets:*\n\n")

	for i, address := range addresses {
		fmt.Fprintf(&b, "%d. `%s`\n", i+1, codeSpanSafe(notify.ShortenAddress(string(address))))
	}

	fmt.Fprintf(&b, "\n💡 Total: %d wallet(s)", len(addresses))
	return b.String()
}
