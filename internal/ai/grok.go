package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	apperrors "taralog/internal/errors"
)

// GrokClient calls the xAI chat completions endpoint. The API is
// OpenAI-compatible, so any /v1/chat/completions server works for local
// testing.
type GrokClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

var _ Interpreter = (*GrokClient)(nil)

// NewGrokClient builds an xAI interpretation client. baseURL should include
// the /v1 prefix, e.g. "https://api.x.ai/v1".
func NewGrokClient(baseURL, apiKey, model string) *GrokClient {
	return &GrokClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		model:      strings.TrimSpace(model),
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// Interpret implements Interpreter using the chat completions API. Every
// upstream failure mode (auth, rate limit, network, empty output) collapses
// into ErrInterpretation; the cause is attached for logging only.
func (g *GrokClient) Interpret(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if g.model == "" {
		return "", fmt.Errorf("%w: model not configured", apperrors.ErrInterpretation)
	}

	messages := make([]chatMessage, 0, 2)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: userMessage})

	body, err := json.Marshal(chatRequest{Model: g.model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInterpretation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInterpretation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInterpretation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp chatErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Error.Message != "" {
			return "", fmt.Errorf("%w: %s", apperrors.ErrInterpretation, errResp.Error.Message)
		}
		return "", fmt.Errorf("%w: %s", apperrors.ErrInterpretation, resp.Status)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", apperrors.ErrInterpretation, err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", apperrors.ErrInterpretation)
	}
	text := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", apperrors.ErrInterpretation)
	}
	return text, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
