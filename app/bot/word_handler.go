package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// WordHandler handles word requests
type WordHandler struct {
	neverPassthorugh
}

// Match returns true if message is a text
func (h WordHandler) Match(u tgbotapi.Update) bool {
	return u.Message != nil && u.Message.Chat != nil && u.Message.Text != "" && !u.Message.IsCommand()
}

// Handle records word and sends back the appended block
func (h WordHandler) Handle(ctx context.Context, b Bot, u tgbotapi.Update) {
	word := strings.ToLower(strings.TrimSpace(u.Message.Text))
	if strings.ContainsAny(word, " \t\n") {
		_, _ = b.Send(tgbotapi.NewMessage(u.Message.Chat.ID, "Sorry, only single words are supported"))
		return
	}
	_, block, err := b.Recorder().Record(ctx, word)
	if err != nil {
		log.Error().Err(err).Str("word", word).Int64("chat", u.Message.Chat.ID).Msg("failed to record word")
		_, _ = b.Send(tgbotapi.NewMessage(u.Message.Chat.ID, "Sorry, I couldn't look this word up"))
		return
	}
	_, _ = b.Send(tgbotapi.NewMessage(u.Message.Chat.ID, block))
}
