package bot

import (
	"context"

	"github.com/MotionP/obsidian-english-words/app/lookup"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// WordRecorder records looked up words into the document
type WordRecorder interface {
	Record(ctx context.Context, word string) (lookup.WordResult, string, error)
}

// Bot describes bot for handlers
type Bot interface {
	Send(tgbotapi.Chattable) (tgbotapi.Message, error)
	Recorder() WordRecorder
}

// neverPassthorugh implements Passthrough with always false
type neverPassthorugh struct{}

// Passthrough always returns false
func (h neverPassthorugh) Passthrough(u tgbotapi.Update) bool {
	return false
}
