package contract

import (
	"context"
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain/entity"
)

//go:generate mockgen -package mocks -source=repo.go -destination=../../../mocks/repo.go

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Recipient() RecipientRepo
	Trigger() TriggerRepo
}

// RecipientRepo defines the contract for the recipient cache
type RecipientRepo interface {
	Upsert(ctx context.Context, recipient *entity.Recipient) error
	GetBySlackID(ctx context.Context, slackUserID string) (*entity.Recipient, error)
	GetActive(ctx context.Context) ([]*entity.Recipient, error)
	UpdateNames(ctx context.Context, slackUserID, userName, displayName string) error
	SetActive(ctx context.Context, slackUserID string, active bool) error
}

// TriggerRepo defines the contract for the broadcast history
type TriggerRepo interface {
	Create(ctx context.Context, trigger *entity.Trigger) error
	HasFired(ctx context.Context, day, label string) (bool, error)
	ListByDay(ctx context.Context, day string) ([]*entity.Trigger, error)
	DeleteBefore(ctx context.Context, before time.Time) (int64, error)
}
