package service

import (
	"context"
	"errors"

	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/diegoclair/adhan-bot/internal/domain/contract"
	"github.com/diegoclair/adhan-bot/internal/domain/entity"
	"github.com/diegoclair/adhan-bot/internal/metrics"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

type Broadcaster struct {
	notifier contract.Notifier
	limiter  *rate.Limiter
	log      zerolog.Logger
}

// NewBroadcaster paces deliveries at ratePerSec messages per second.
// A non-positive rate disables pacing.
func NewBroadcaster(notifier contract.Notifier, ratePerSec float64, log zerolog.Logger) *Broadcaster {
	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}

	return &Broadcaster{
		notifier: notifier,
		limiter:  rate.NewLimiter(limit, 1),
		log:      log,
	}
}

// Broadcast sends the reminder for label to every recipient, one message
// each, and returns how many were delivered. A failed delivery never stops
// the others; a cancelled ctx does.
func (b *Broadcaster) Broadcast(ctx context.Context, label string, recipients []entity.Recipient) int {
	var delivered, failed int

	for i := range recipients {
		recipient := &recipients[i]

		if err := b.limiter.Wait(ctx); err != nil {
			b.log.Warn().Err(err).Str("label", label).
				Int("remaining", len(recipients)-i).
				Msg("broadcast interrupted")
			break
		}

		if err := b.notifier.Send(ctx, ReminderMessage(label, recipient)); err != nil {
			failed++
			metrics.Deliveries.WithLabelValues("failed").Inc()

			evt := b.log.Warn()
			if errors.Is(err, domain.ErrPermanent) {
				evt = b.log.Error()
			}
			evt.Err(err).Str("label", label).Str("recipient", recipient.SlackUserID).Msg("failed to deliver reminder")
			continue
		}

		delivered++
		metrics.Deliveries.WithLabelValues("ok").Inc()
	}

	b.log.Info().Str("label", label).
		Int("delivered", delivered).
		Int("failed", failed).
		Int("recipients", len(recipients)).
		Msg("broadcast finished")

	return delivered
}

// ReminderMessage builds the payload sent to one recipient.
func ReminderMessage(label string, recipient *entity.Recipient) *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Channel: recipient.SlackUserID,
		Text:    domain.ReminderText,
		Attachments: []slack.Attachment{{
			Fields: []slack.AttachmentField{{
				Title: label + ": " + domain.ReminderAttachment + " @" + recipient.Mention(),
			}},
		}},
	}
}
