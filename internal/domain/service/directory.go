package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/diegoclair/adhan-bot/internal/domain/contract"
	"github.com/diegoclair/adhan-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

// Slack API error codes that no retry can fix
var permanentSlackErrors = map[string]bool{
	"invalid_auth":     true,
	"not_authed":       true,
	"account_inactive": true,
	"token_revoked":    true,
	"token_expired":    true,
	"missing_scope":    true,
}

// Slack API error codes for a user that no longer exists
var missingUserErrors = map[string]bool{
	"user_not_found":   true,
	"user_not_visible": true,
	"users_not_found":  true,
}

type directory struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	log         zerolog.Logger
}

func newDirectory(dm contract.DataManager, slackClient contract.SlackClient, log zerolog.Logger) *directory {
	return &directory{
		dm:          dm,
		slackClient: slackClient,
		log:         log,
	}
}

// ListRecipients resolves every active member against Slack and refreshes
// their cached names. Members Slack no longer knows are left out.
func (d *directory) ListRecipients(ctx context.Context) ([]entity.Recipient, error) {
	members, err := d.dm.Recipient().GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load members: %w", domain.ErrFetch, err)
	}

	recipients := make([]entity.Recipient, 0, len(members))
	for _, member := range members {
		user, err := d.slackClient.GetUserInfoContext(ctx, member.SlackUserID)
		if err != nil {
			if isMissingUser(err) {
				d.log.Warn().Err(err).Str("user", member.SlackUserID).Msg("skipping member unknown to slack")
				continue
			}
			return nil, classifySlackError(err, "failed to get user info for "+member.SlackUserID)
		}

		if user.Deleted {
			d.log.Warn().Str("user", member.SlackUserID).Msg("skipping deleted slack user")
			continue
		}

		userName, displayName := user.Name, displayNameOf(user)
		if userName != member.SlackUserName || displayName != member.DisplayName {
			if err := d.dm.Recipient().UpdateNames(ctx, member.SlackUserID, userName, displayName); err != nil {
				d.log.Warn().Err(err).Str("user", member.SlackUserID).Msg("failed to refresh cached names")
			}
			member.SlackUserName = userName
			member.DisplayName = displayName
		}

		recipients = append(recipients, *member)
	}

	return recipients, nil
}

// classifySlackError wraps err as permanent for auth failures and as a
// transient fetch failure otherwise.
func classifySlackError(err error, msg string) error {
	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) && permanentSlackErrors[slackErr.Err] {
		return fmt.Errorf("%w: %s: %w", domain.ErrPermanent, msg, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrFetch, msg, err)
}

func isMissingUser(err error) bool {
	var slackErr slack.SlackErrorResponse
	return errors.As(err, &slackErr) && missingUserErrors[slackErr.Err]
}

// displayNameOf picks the friendliest name Slack has for user
func displayNameOf(user *slack.User) string {
	switch {
	case user.Profile.DisplayName != "":
		return user.Profile.DisplayName
	case user.Profile.RealName != "":
		return user.Profile.RealName
	case user.RealName != "":
		return user.RealName
	default:
		return user.Name
	}
}
