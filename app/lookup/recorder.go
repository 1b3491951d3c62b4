package lookup

import (
	"context"

	"github.com/MotionP/obsidian-english-words/app/config"
	"github.com/MotionP/obsidian-english-words/app/db"
)

// Looker looks up a single word
type Looker interface {
	LookupWord(ctx context.Context, word string, credentials string) (WordResult, error)
}

// Recorder looks words up and appends them to the configured document
type Recorder struct {
	Looker   Looker
	Storage  db.Storage
	Settings config.Settings
}

// Record returns parsed result and the block appended to the document.
// The document is not touched when the lookup fails
func (r *Recorder) Record(ctx context.Context, word string) (WordResult, string, error) {
	result, err := r.Looker.LookupWord(ctx, word, r.Settings.Credentials)
	if err != nil {
		return WordResult{}, "", err
	}
	block := Format(result)
	if err := db.Append(r.Storage, r.Settings.DocumentPath, block); err != nil {
		return result, block, err
	}
	return result, block, nil
}

// Document returns current text of the configured document
func (r *Recorder) Document() (string, error) {
	return r.Storage.Read(r.Settings.DocumentPath)
}
