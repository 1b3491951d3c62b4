package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/MotionP/obsidian-english-words/app/clients/gigachat"
	"github.com/MotionP/obsidian-english-words/app/clients/transport"
	"github.com/MotionP/obsidian-english-words/app/db"
	"github.com/MotionP/obsidian-english-words/app/lookup"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// WordResponse represents recorded word in API response
type WordResponse struct {
	Result lookup.WordResult `json:"result"`
	Block  string            `json:"block"`
}

// wordsService implements methods for words API
type wordsService struct {
	recorder WordRecorder
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.WriteHeader(status)
	if _, err := w.Write([]byte(text)); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

// isLookupFailure reports whether err happened while talking to GigaChat
func isLookupFailure(err error) bool {
	var (
		authErr   *gigachat.AuthError
		lookupErr *lookup.LookupError
		netErr    *transport.NetworkError
	)
	return errors.As(err, &authErr) || errors.As(err, &lookupErr) || errors.As(err, &netErr)
}

// AddWord looks word up and appends it to the document
func (s wordsService) AddWord(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(chi.URLParam(r, "word"))
	if word == "" || strings.ContainsAny(word, " \t\n") {
		writeText(w, http.StatusBadRequest, "only single words are supported")
		return
	}
	client, _ := r.Context().Value(ctxClientKey).(string)
	result, block, err := s.recorder.Record(r.Context(), word)
	if err != nil {
		log.Error().Err(err).Str("word", word).Str("client", client).Msg("failed to record word")
		if isLookupFailure(err) {
			writeText(w, http.StatusBadGateway, err.Error())
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	response, jerr := json.Marshal(WordResponse{Result: result, Block: block})
	if jerr != nil {
		log.Error().Err(jerr).Str("word", word).Msg("failed to marshal word response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if _, err := w.Write(response); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}

// GetDocument returns current document text
func (s wordsService) GetDocument(w http.ResponseWriter, r *http.Request) {
	text, err := s.recorder.Document()
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeText(w, http.StatusNotFound, "document not found")
			return
		}
		log.Error().Err(err).Msg("failed to read document")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if _, err := w.Write([]byte(text)); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}
