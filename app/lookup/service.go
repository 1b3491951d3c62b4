package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/MotionP/obsidian-english-words/app/clients/gigachat"
	"github.com/MotionP/obsidian-english-words/app/clients/transport"
)

const (
	defaultModel       = "GigaChat"
	defaultTemperature = 0.3
)

// ErrNoCompletions is returned when chat response has no choices
var ErrNoCompletions = errors.New("no completions returned")

// ErrNoContent is returned when the first choice has no message.content
var ErrNoContent = errors.New("no message.content in completion")

// LookupError is returned when chat response can't be turned into a result
type LookupError struct {
	Word string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %s: %v", e.Word, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// ChatClient describes GigaChat API used by Service
type ChatClient interface {
	AccessToken(ctx context.Context, credentials string) (string, error)
	Complete(ctx context.Context, token string, r gigachat.ChatRequest) (gigachat.ChatResponse, error)
}

// Service looks words up with a chat model
type Service struct {
	client      ChatClient
	Model       string
	Temperature float64
}

// LookupWord fetches a fresh token and asks the model about word.
// Token errors are returned as is
func (s *Service) LookupWord(ctx context.Context, word string, credentials string) (WordResult, error) {
	token, err := s.client.AccessToken(ctx, credentials)
	if err != nil {
		return WordResult{}, err
	}
	resp, err := s.client.Complete(ctx, token, s.request(word))
	if err != nil {
		var netErr *transport.NetworkError
		if errors.As(err, &netErr) {
			return WordResult{}, err
		}
		return WordResult{}, &LookupError{Word: word, Err: err}
	}
	if len(resp.Choices) == 0 {
		return WordResult{}, &LookupError{Word: word, Err: ErrNoCompletions}
	}
	msg := resp.Choices[0].Message
	if msg == nil || msg.Content == nil {
		return WordResult{}, &LookupError{Word: word, Err: ErrNoContent}
	}
	return Parse(*msg.Content), nil
}

func (s *Service) request(word string) gigachat.ChatRequest {
	return gigachat.ChatRequest{
		Model:       s.Model,
		Temperature: s.Temperature,
		Messages: []gigachat.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(word)},
		},
	}
}

// NewService creates service with default model settings
func NewService(client ChatClient) *Service {
	return &Service{client: client, Model: defaultModel, Temperature: defaultTemperature}
}
