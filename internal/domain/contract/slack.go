package contract

import (
	"context"

	"github.com/slack-go/slack"
)

//go:generate mockgen -package mocks -source=slack.go -destination=../../../mocks/slack.go

// SlackClient defines the Slack Web API calls the bot needs.
// *slack.Client satisfies it.
type SlackClient interface {
	GetUserInfoContext(ctx context.Context, userID string) (*slack.User, error)
	GetUsersContext(ctx context.Context, options ...slack.GetUsersOption) ([]slack.User, error)
}

// Notifier delivers a single outbound message
type Notifier interface {
	Send(ctx context.Context, msg *slack.WebhookMessage) error
}
