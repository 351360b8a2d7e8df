package telegram

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/VladPetriv/busbooker/pkg/notify"
	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoutil"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxMessageLength is the maximum length of a telegram message in characters.
const maxMessageLength = 4096

type telegramSink struct {
	api    *telego.Bot
	chatID int64
}

var _ notify.Sink = (*telegramSink)(nil)

// Options represents options that required for creating new instance of telegram sink.
type Options struct {
	// Token represents telegram bot token.
	Token string
	// ChatID represents a chat to which notifications are sent.
	ChatID int64
}

// New creates a new notification sink that forwards notifications to a telegram chat.
func New(opts Options) (*telegramSink, error) {
	bot, err := telego.NewBot(opts.Token, telego.WithDefaultLogger(false, true))
	if err != nil {
		return nil, fmt.Errorf("init bot instance: %w", err)
	}

	return &telegramSink{
		api:    bot,
		chatID: opts.ChatID,
	}, nil
}

func (t *telegramSink) Send(ctx context.Context, notification notify.Notification) error {
	for _, part := range splitMessage(formatNotification(notification), maxMessageLength) {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, err := t.api.SendMessage(telegoutil.Message(telegoutil.ID(t.chatID), part))
		if err != nil {
			return fmt.Errorf("send message: %w", err)
		}
	}

	return nil
}

var titleCaser = cases.Title(language.English)

func formatNotification(notification notify.Notification) string {
	notificationType := notification.Type
	if notificationType == "" {
		notificationType = notify.TypeInfo
	}

	return fmt.Sprintf("%s %s: %s", iconOf(notificationType), titleCaser.String(string(notificationType)), notification.Message)
}

func iconOf(notificationType notify.Type) string {
	switch notificationType {
	case notify.TypeError:
		return "❌"
	case notify.TypeWarning:
		return "⚠️"
	case notify.TypeSuccess:
		return "✅"
	default:
		return "ℹ️"
	}
}

// splitMessage splits text into parts of at most maxLength characters without breaking runes.
func splitMessage(text string, maxLength int) []string {
	if utf8.RuneCountInString(text) <= maxLength {
		return []string{text}
	}

	var (
		parts []string
		runes = []rune(text)
	)
	for len(runes) > 0 {
		end := min(maxLength, len(runes))
		parts = append(parts, string(runes[:end]))
		runes = runes[end:]
	}

	return parts
}
