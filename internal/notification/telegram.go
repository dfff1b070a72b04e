package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"

	"github.com/hithereguys123/Creative-Clicks/internal/domain"
)

// TelegramNotifier pings the studio owner's chat when a visitor acts.
// Notifications are best effort: a lost message never fails the action
// that triggered it.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	strategy retry.Strategy
	logger   logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	n := &TelegramNotifier{
		chatID: chatID,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		logger: logger,
	}

	if token == "" || chatID == 0 {
		logger.Warn("telegram bot token or chat id is empty, notifications disabled")
		return n, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	n.bot = bot

	return n, nil
}

func (n *TelegramNotifier) NotifyBookingPlaced(ctx context.Context, snapshot domain.BookingSnapshot) {
	text := fmt.Sprintf(
		"*New booking request*\n\n"+
			"Client: %s (%s)\n"+
			"Event: %s on %s\n"+
			"Services: %s\n"+
			"Estimated hours: %d",
		snapshot.ClientName, snapshot.ClientEmail,
		snapshot.EventType, snapshot.EventDate.Format("02.01.2006"),
		strings.Join(snapshot.Services, ", "),
		snapshot.EstimatedHours,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyRegistrationStarted(ctx context.Context, workshop domain.Workshop, draft domain.RegistrationDraft) {
	text := fmt.Sprintf(
		"*Workshop registration started*\n\n"+
			"Workshop: %s\n"+
			"Participant: %s (%s)",
		workshop.Title,
		draft.ParticipantName, draft.ParticipantEmail,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyContactReceived(ctx context.Context, msg domain.ContactMessage) {
	text := fmt.Sprintf(
		"*New contact message*\n\n"+
			"From: %s (%s)\n"+
			"Subject: %s\n\n"+
			"%s",
		msg.Name, msg.Email, msg.Subject, msg.Message,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	err := retry.Do(func() error {
		_, err := n.bot.Send(msg)
		return err
	}, n.strategy)
	if err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
