// Package ai holds the client for the OpenAI-compatible chat
// completions endpoint used by document Q&A. The model is a black box:
// the service sends keyword-matched snippets as context and returns
// the model's answer verbatim.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/condomanager/condomanager-api/internal/config"
)

var ErrNotConfigured = errors.New("AI service not configured")

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type Client struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey: cfg.AIAPIKey,
		apiURL: cfg.AIAPIURL,
		model:  cfg.AIModel,
		client: &http.Client{Timeout: cfg.AITimeout},
	}
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Answer asks the model a question grounded on the given document
// context.
func (c *Client) Answer(ctx context.Context, docContext, question string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf("Context:\n%s\n\nQuestion: %s\nAnswer:", docContext, question)
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You answer questions about condominium documents using only the provided context."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.2,
		MaxTokens:   600,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("AI request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("AI request failed: status %d: %s", resp.StatusCode, raw)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("AI response contained no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
