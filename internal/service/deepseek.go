package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"essay_coach_backend/internal/config"
)

// DeepSeekProvider talks to the DeepSeek API through its OpenAI-compatible
// chat-completions endpoint.
type DeepSeekProvider struct {
	cfg    config.DeepSeekConfig
	client *http.Client
}

func NewDeepSeekProvider(cfg config.DeepSeekConfig, client *http.Client) *DeepSeekProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.deepseek.com"
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-chat"
	}
	c := *client
	c.Timeout = cfg.Timeout
	return &DeepSeekProvider{cfg: cfg, client: &c}
}

func (p *DeepSeekProvider) Name() string { return "deepseek" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (p *DeepSeekProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if p.cfg.APIKey == "" {
		return "", fmt.Errorf("DEEPSEEK_API_KEY is not configured")
	}

	messages := []chatMessage{}
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, chatMessage{Role: "user", Content: userPrompt})

	reqBody := chatCompletionRequest{
		Model:       p.cfg.Model,
		Messages:    messages,
		Temperature: 0.2,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("DeepSeek API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", fmt.Errorf("DeepSeek API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("DeepSeek returned no choices")
	}
	content := result.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("DeepSeek returned empty response")
	}
	return content, nil
}
