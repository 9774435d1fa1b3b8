package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain/contract"
	"github.com/diegoclair/adhan-bot/internal/domain/entity"
)

type triggerRepo struct {
	db dbConn
}

func newTriggerRepo(db dbConn) contract.TriggerRepo {
	return &triggerRepo{db: db}
}

func (r *triggerRepo) Create(ctx context.Context, trigger *entity.Trigger) error {
	query := `
		INSERT INTO triggers (cycle_id, day, label, deadline, fired_at, delivered, failed)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		trigger.CycleID,
		trigger.Day,
		trigger.Label,
		trigger.Deadline.UTC(),
		trigger.FiredAt.UTC(),
		trigger.Delivered,
		trigger.Failed,
	)
	if err != nil {
		return fmt.Errorf("failed to create trigger: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	trigger.ID = id
	return nil
}

func (r *triggerRepo) HasFired(ctx context.Context, day, label string) (bool, error) {
	query := `SELECT COUNT(1) FROM triggers WHERE day = ? AND label = ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, day, label).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check trigger: %w", err)
	}

	return count > 0, nil
}

func (r *triggerRepo) ListByDay(ctx context.Context, day string) ([]*entity.Trigger, error) {
	query := `
		SELECT id, cycle_id, day, label, deadline, fired_at, delivered, failed
		FROM triggers
		WHERE day = ?
		ORDER BY fired_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to get triggers: %w", err)
	}
	defer rows.Close()

	var triggers []*entity.Trigger
	for rows.Next() {
		trigger := &entity.Trigger{}
		err := rows.Scan(
			&trigger.ID,
			&trigger.CycleID,
			&trigger.Day,
			&trigger.Label,
			&trigger.Deadline,
			&trigger.FiredAt,
			&trigger.Delivered,
			&trigger.Failed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trigger: %w", err)
		}
		triggers = append(triggers, trigger)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate triggers: %w", err)
	}

	return triggers, nil
}

func (r *triggerRepo) DeleteBefore(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM triggers WHERE fired_at < ?`

	result, err := r.db.ExecContext(ctx, query, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to delete triggers: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return n, nil
}
