package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/salonops/backoffice/internal/config"
)

// Notifier posts short text notifications to a chat channel.
type Notifier interface {
	PostText(ctx context.Context, text string) error
}

// WebhookClient is a resty-backed Notifier that targets a Slack-compatible
// incoming webhook.
type WebhookClient struct {
	httpClient *resty.Client
	webhookURL string
}

// NewWebhookClient builds a webhook notifier using the provided configuration values.
func NewWebhookClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		webhookURL: cfg.WebhookURL,
	}
}

// PostText delivers the text payload to the configured webhook.
func (c *WebhookClient) PostText(ctx context.Context, text string) error {
	payload := map[string]any{"text": text}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.webhookURL)
	if err != nil {
		return fmt.Errorf("post webhook notification: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
