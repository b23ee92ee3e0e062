// Package advice supplies the one-liner shown above the todo list. With an
// API key configured it asks an OpenAI-compatible model; otherwise it falls
// back to the public advice-slip endpoint.
package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const advicePrompt = "Give one short, practical piece of life advice in a single sentence. Reply with the sentence only."

type Client struct {
	ai      *openai.Client
	model   string
	http    *http.Client
	slipURL string
}

// New builds a client. apiKey may be empty, in which case only the slip
// endpoint is used.
func New(apiKey, baseURL, model, slipURL string) *Client {
	c := &Client{
		model:   model,
		http:    &http.Client{Timeout: 10 * time.Second},
		slipURL: slipURL,
	}
	if apiKey != "" {
		config := openai.DefaultConfig(apiKey)
		config.BaseURL = baseURL
		c.ai = openai.NewClientWithConfig(config)
	}
	return c
}

// Advice returns a single advice line. Failures are returned as-is and never
// cached; the caller decides how to surface them.
func (c *Client) Advice(ctx context.Context) (string, error) {
	if c.ai != nil {
		return c.generate(ctx)
	}
	return c.fetchSlip(ctx)
}

func (c *Client) generate(ctx context.Context) (string, error) {
	resp, err := c.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: advicePrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("advice generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("advice generation returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *Client) fetchSlip(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.slipURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch advice: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advice endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		Slip struct {
			Advice string `json:"advice"`
		} `json:"slip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode advice: %w", err)
	}
	return payload.Slip.Advice, nil
}
