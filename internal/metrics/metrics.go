// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Broadcasts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adhan_bot_broadcasts_total",
		Help: "Broadcasts started, by event label",
	}, []string{"label"})

	Deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adhan_bot_deliveries_total",
		Help: "Messages sent to recipients, by result",
	}, []string{"result"})

	SkippedEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adhan_bot_skipped_events_total",
		Help: "Events not broadcast, by reason",
	}, []string{"reason"})

	FetchErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adhan_bot_fetch_errors_total",
		Help: "Failed fetches of recipients or time tables, by source",
	}, []string{"source"})

	NextDeadline = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "adhan_bot_next_deadline_seconds",
		Help: "Unix time of the next scheduled broadcast or cycle start",
	})

	Recipients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "adhan_bot_recipients",
		Help: "Recipients in the current cycle snapshot",
	})

	loopState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "adhan_bot_state",
		Help: "1 for the current scheduler loop state, 0 otherwise",
	}, []string{"state"})
)

var states = []entity.State{
	entity.StateFetching,
	entity.StateWaitingForEvent,
	entity.StateNotifying,
	entity.StateResting,
	entity.StateFailed,
	entity.StateStopped,
}

// SetState flags s as the current loop state.
func SetState(s entity.State) {
	for _, st := range states {
		v := 0.0
		if st == s {
			v = 1
		}
		loopState.WithLabelValues(string(st)).Set(v)
	}
}

func SetNextDeadline(t time.Time) {
	if t.IsZero() {
		NextDeadline.Set(0)
		return
	}
	NextDeadline.Set(float64(t.Unix()))
}
