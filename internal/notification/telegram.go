package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hoaht-8203/Badminton-Court-Management-System-sub003/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// PaymentLookup re-reads payment state for a notification.
type PaymentLookup interface {
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
}

// TelegramNotifier posts payment activity to the cashier chat.
type TelegramNotifier struct {
	bot      messageSender
	chatID   int64
	payments PaymentLookup
	logger   logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, payments PaymentLookup, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, cashier notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, payments: payments, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, payments: payments, logger: logger}, nil
}

func (n *TelegramNotifier) Name() string { return "telegram" }

// Deliver implements events.Sink. Only payment related events reach the cashier.
func (n *TelegramNotifier) Deliver(ctx context.Context, e domain.Event) error {
	var text string
	switch e.Name {
	case domain.EventPaymentCreated:
		text = n.paymentText(ctx, "*New payment hold*", e.PaymentIDs)
	case domain.EventPaymentUpdated:
		text = n.paymentText(ctx, "*Payment updated*", e.PaymentIDs)
	case domain.EventPaymentsCancelled:
		text = fmt.Sprintf("*Payment holds expired*\n\nCancelled: %d\n%s",
			len(e.PaymentIDs), strings.Join(e.PaymentIDs, "\n"))
	case domain.EventBookingsExpired:
		text = fmt.Sprintf("*Bookings released*\n\nBookings: %s", strings.Join(e.BookingIDs, ", "))
	default:
		return nil
	}

	return n.send(ctx, text)
}

func (n *TelegramNotifier) paymentText(ctx context.Context, title string, ids []string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")

	for _, id := range ids {
		p, err := n.payments.GetPayment(ctx, id)
		if err != nil {
			fmt.Fprintf(&b, "\nPayment `%s`", id)
			continue
		}
		fmt.Fprintf(&b, "\nPayment `%s`\nBooking: `%s`\nAmount: %d\nStatus: `%s`\nExpires (UTC): %s\n",
			p.ID, p.BookingID, p.Amount, p.Status, p.ExpiresAtUTC.UTC().Format("02.01.2006 15:04"))
	}
	return b.String()
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return nil
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return nil
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return nil
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	start := time.Now()
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("%w: telegram send: %w", domain.ErrNotifyTransient, err)
	}

	n.logger.Debug("cashier notified",
		logger.Int64("chat_id", n.chatID),
		logger.Duration("took", time.Since(start)),
	)
	return nil
}
