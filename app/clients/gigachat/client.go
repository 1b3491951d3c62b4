package gigachat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MotionP/obsidian-english-words/app/clients/transport"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultAuthURL is the OAuth endpoint issuing access tokens
	DefaultAuthURL = "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"
	// DefaultChatURL is the chat completions endpoint
	DefaultChatURL = "https://gigachat.devices.sberbank.ru/api/v1/chat/completions"

	scope = "GIGACHAT_API_PERS"
)

// AuthError is returned when the token endpoint response has no access token.
// Body holds the raw response for diagnostics
type AuthError struct {
	Body string
}

func (e *AuthError) Error() string {
	return "gigachat auth failed: " + e.Body
}

// Doer executes HTTP requests
type Doer interface {
	Do(ctx context.Context, r transport.Request) (transport.Response, error)
}

// Client implements integration with GigaChat API
// docs: https://developers.sber.ru/docs/ru/gigachat/api/reference/rest/gigachat-api
type Client struct {
	AuthURL string
	ChatURL string
	http    Doer
}

// AccessToken exchanges credentials for a short-lived bearer token
func (c *Client) AccessToken(ctx context.Context, credentials string) (string, error) {
	resp, err := c.http.Do(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    c.AuthURL,
		Headers: map[string]string{
			"Content-Type":  "application/x-www-form-urlencoded",
			"Accept":        "application/json",
			"Authorization": "Basic " + credentials,
			"RqUID":         uuid.NewString(),
		},
		Body: "scope=" + scope,
	})
	if err != nil {
		return "", err
	}
	var token TokenResponse
	if err := json.Unmarshal([]byte(resp.Body), &token); err != nil || token.AccessToken == "" {
		log.Error().
			Int("status", resp.Status).
			Str("body", resp.Body).
			Msg("no access token in gigachat oauth response")
		return "", &AuthError{Body: resp.Body}
	}
	return token.AccessToken, nil
}

// Complete sends chat completion request
func (c *Client) Complete(ctx context.Context, token string, r ChatRequest) (ChatResponse, error) {
	var result ChatResponse
	body, err := json.Marshal(r)
	if err != nil {
		return result, fmt.Errorf("marshal request: %w", err)
	}
	resp, err := c.http.Do(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    c.ChatURL,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Accept":        "application/json",
			"Authorization": "Bearer " + token,
		},
		Body: string(body),
	})
	if err != nil {
		return result, err
	}
	if resp.Status != http.StatusOK {
		log.Error().
			Int("status", resp.Status).
			Str("body", resp.Body).
			Msg("unsuccessful response from gigachat API")
		return result, fmt.Errorf("unsuccessful API response %v", resp.Status)
	}
	if err := json.Unmarshal([]byte(resp.Body), &result); err != nil {
		return ChatResponse{}, fmt.Errorf("unmarshal response: %w", err)
	}
	return result, nil
}

// NewClient creates client for default GigaChat endpoints
func NewClient(doer Doer) *Client {
	return &Client{AuthURL: DefaultAuthURL, ChatURL: DefaultChatURL, http: doer}
}
