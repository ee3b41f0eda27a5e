package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes booking lifecycle events to the ops chat.
// Participant-facing delivery (email/push) lives in the notification
// subsystem outside this service.
type TelegramNotifier struct {
	bot       *tgbotapi.BotAPI
	opsChatID int64
	logger    logger.Logger
}

func NewTelegramNotifier(token string, opsChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, opsChatID: opsChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking confirmed*\n\n"+"Booking: %s\n"+"Lesson: %s, %d min\n"+"Starts (UTC): %s\n"+"Total: %s",
		b.ID, b.LessonType, b.DurationMinutes,
		b.ScheduledStart.Format("02.01.2006 15:04"),
		b.TotalPrice.StringFixed(2),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, refund decimal.Decimal) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Booking: %s\n"+"Was scheduled (UTC): %s\n"+"Refund due: %s",
		b.ID,
		b.ScheduledStart.Format("02.01.2006 15:04"),
		refund.StringFixed(2),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyTeacherSuspensionTriggered(ctx context.Context, teacherID string, absences int) {
	text := fmt.Sprintf(
		"*Teacher absence threshold reached*\n\n"+"Teacher: %s\n"+"Absences: %d\n"+"Review for suspension.",
		teacherID, absences,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil || n.opsChatID == 0 {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	msg := tgbotapi.NewMessage(n.opsChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.LogAttrs(ctx, logger.ErrorLevel, "failed to send telegram notification",
			logger.String("error", err.Error()),
		)
	}
}
