// Package slack delivers reminders through a Slack incoming webhook.
package slack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/slack-go/slack"
)

type WebhookNotifier struct {
	url        string
	httpClient *http.Client
}

func NewWebhookNotifier(url string, httpClient *http.Client) *WebhookNotifier {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &WebhookNotifier{url: url, httpClient: httpClient}
}

// Send posts msg to the webhook. A rejected webhook (404, 403) is reported
// as permanent; everything else is a single delivery failure.
func (n *WebhookNotifier) Send(ctx context.Context, msg *slack.WebhookMessage) error {
	err := slack.PostWebhookCustomHTTPContext(ctx, n.url, n.httpClient, msg)
	if err == nil {
		return nil
	}

	var statusErr slack.StatusCodeError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusForbidden, http.StatusNotFound, http.StatusGone:
			return fmt.Errorf("%w: webhook rejected message for %s: %w", domain.ErrPermanent, msg.Channel, err)
		}
	}

	return fmt.Errorf("failed to post message to %s: %w", msg.Channel, err)
}
