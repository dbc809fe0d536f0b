package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultBaseURL is the Discord webhook endpoint prefix.
const DefaultBaseURL = "https://discord.com/api/webhooks"

// Client executes Discord webhooks. It is stateless apart from the base
// URL; webhook id and token arrive with each call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Discord webhook client.
func NewClient() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
}

// SetBaseURL overrides the default Discord webhook URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// Execute posts a message to the webhook identified by id and token.
// Discord answers 204 on success; no retry is attempted on failure.
func (c *Client) Execute(ctx context.Context, webhookID, webhookToken string, msg WebhookMessage) error {
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, webhookID, webhookToken)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook message: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to execute discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("discord webhook error %d: %s", resp.StatusCode, string(raw))
	}

	return nil
}
