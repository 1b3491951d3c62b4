package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Handler interface {
	Handle(ctx context.Context, b Bot, u tgbotapi.Update)
	Passthrough(tgbotapi.Update) bool
	Match(u tgbotapi.Update) bool
}

// TelegramBot handles Telegram API intragration and updates handling
type TelegramBot struct {
	UserName string
	api      *tgbotapi.BotAPI
	recorder WordRecorder
	handlers []Handler
	allowed  map[int64]bool
}

// isAllowed reports whether update author may use the bot, empty list allows everyone
func (b *TelegramBot) isAllowed(u tgbotapi.Update) bool {
	if len(b.allowed) == 0 {
		return true
	}
	var user *tgbotapi.User
	switch {
	case u.Message != nil:
		user = u.Message.From
	case u.CallbackQuery != nil:
		user = u.CallbackQuery.From
	}
	return user != nil && b.allowed[user.ID]
}

func (b *TelegramBot) processUpdate(u tgbotapi.Update) {
	if !b.isAllowed(u) {
		log.Warn().Int("update", u.UpdateID).Msg("update from not allowed user")
		return
	}
	ctx := context.Background()
	for _, handler := range b.handlers {
		if handler.Match(u) {
			handler.Handle(ctx, b, u)
			if !handler.Passthrough(u) {
				break
			}
		}
	}
}

func (b *TelegramBot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	for u := range updates {
		b.processUpdate(u)
	}
}

func (b *TelegramBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	message, err := b.api.Send(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to send")
	}
	return message, err
}

func (b *TelegramBot) Recorder() WordRecorder {
	return b.recorder
}

func NewTelegramBot(token string, recorder WordRecorder, allowed []int64, handlers []Handler) (*TelegramBot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize bot")
	}
	log.Info().Str("username", botAPI.Self.UserName).Msg("telegram bot initialized")
	allowedUsers := make(map[int64]bool, len(allowed))
	for _, id := range allowed {
		allowedUsers[id] = true
	}
	return &TelegramBot{
		UserName: botAPI.Self.UserName,
		api:      botAPI,
		recorder: recorder,
		handlers: handlers,
		allowed:  allowedUsers,
	}, nil
}
