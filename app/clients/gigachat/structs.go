package gigachat

// TokenResponse describes OAuth endpoint response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Message is a single chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest describes chat completions request body
type ChatRequest struct {
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Messages    []Message `json:"messages"`
}

// ChatResponse describes chat completions response
type ChatResponse struct {
	Choices []Choice `json:"choices"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
}

// Reply is a completion message, fields are nil when absent
type Reply struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

// Choice holds a single completion
type Choice struct {
	Message      *Reply `json:"message"`
	Index        int    `json:"index"`
	FinishReason string `json:"finish_reason"`
}
