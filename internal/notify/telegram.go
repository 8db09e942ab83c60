// Package notify posts the daily ticket digest to a Telegram channel.
package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"TicketForge/internal/engine"
)

// TelegramNotifier sends a best-effort digest per generation run. A nil
// notifier is a no-op so the pipeline works without a configured bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *logrus.Logger
}

// NewTelegramNotifier creates the notifier, or nil when the token is rejected.
func NewTelegramNotifier(token string, chatID int64, logger *logrus.Logger) *TelegramNotifier {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		logger.WithError(err).Warn("telegram bot init failed, notifications disabled")
		return nil
	}
	bot.Debug = false
	if _, err := bot.GetMe(); err != nil {
		logger.WithError(err).Warn("telegram bot unreachable, notifications disabled")
		return nil
	}
	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}
}

// SendTicketSet posts one message covering the three tickets.
func (n *TelegramNotifier) SendTicketSet(ts *engine.TicketSet) {
	if n == nil {
		return
	}
	msg := tgbotapi.NewMessage(n.chatID, formatDigest(ts))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.WithError(err).Warn("telegram digest send failed")
	}
}

var ticketTitles = map[engine.TicketType]string{
	engine.TicketSafe:    "SAFE",
	engine.TicketFun:     "FUN",
	engine.TicketJackpot: "JACKPOT",
}

func formatDigest(ts *engine.TicketSet) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Tickets %s*\n", ts.Date.Format("2006-01-02"))
	for _, t := range ts.Tickets() {
		fmt.Fprintf(&b, "\n*%s* %s\n", ticketTitles[t.Type], strings.Repeat("⭐", t.Stars))
		if len(t.Combos) == 0 {
			b.WriteString("_not enough data_\n")
			continue
		}
		for _, c := range t.Combos {
			fmt.Fprintf(&b, "%s (%s)\n", c.MatchLabel, c.Kickoff.Format("15:04"))
			for _, leg := range c.Legs {
				fmt.Fprintf(&b, "  • %s @%.2f (%.0f%%)\n", leg.Label, leg.Odds, leg.Proba)
			}
		}
		fmt.Fprintf(&b, "Combined: @%.2f, %.2f%%\n", t.CombinedOdds, t.CombinedProba)
	}
	return b.String()
}
