package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/diegoclair/adhan-bot/internal/domain/contract"
	"github.com/diegoclair/adhan-bot/internal/domain/entity"
)

type recipientRepo struct {
	db dbConn
}

func newRecipientRepo(db dbConn) contract.RecipientRepo {
	return &recipientRepo{db: db}
}

const recipientColumns = `id, slack_user_id, slack_user_name, display_name, is_active, joined_at, updated_at`

func (r *recipientRepo) Upsert(ctx context.Context, recipient *entity.Recipient) error {
	query := `
		INSERT INTO recipients (slack_user_id, slack_user_name, display_name, is_active)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (slack_user_id) DO UPDATE SET
			slack_user_name = excluded.slack_user_name,
			display_name = excluded.display_name,
			is_active = excluded.is_active,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		recipient.SlackUserID,
		recipient.SlackUserName,
		recipient.DisplayName,
		recipient.IsActive,
	).Scan(&recipient.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert recipient: %w", err)
	}

	return nil
}

func (r *recipientRepo) GetBySlackID(ctx context.Context, slackUserID string) (*entity.Recipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM recipients WHERE slack_user_id = ?`

	recipient, err := scanRecipient(r.db.QueryRowContext(ctx, query, slackUserID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}

	return recipient, nil
}

func (r *recipientRepo) GetActive(ctx context.Context) ([]*entity.Recipient, error) {
	query := `
		SELECT ` + recipientColumns + `
		FROM recipients
		WHERE is_active = 1
		ORDER BY display_name ASC, slack_user_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipients: %w", err)
	}
	defer rows.Close()

	var recipients []*entity.Recipient
	for rows.Next() {
		recipient, err := scanRecipient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}
		recipients = append(recipients, recipient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipients: %w", err)
	}

	return recipients, nil
}

func (r *recipientRepo) UpdateNames(ctx context.Context, slackUserID, userName, displayName string) error {
	query := `
		UPDATE recipients SET
			slack_user_name = ?,
			display_name = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE slack_user_id = ?
	`

	_, err := r.db.ExecContext(ctx, query, userName, displayName, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to update recipient names: %w", err)
	}

	return nil
}

func (r *recipientRepo) SetActive(ctx context.Context, slackUserID string, active bool) error {
	query := `
		UPDATE recipients SET
			is_active = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE slack_user_id = ?
	`

	_, err := r.db.ExecContext(ctx, query, active, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to set recipient active status: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecipient(row rowScanner) (*entity.Recipient, error) {
	recipient := &entity.Recipient{}
	err := row.Scan(
		&recipient.ID,
		&recipient.SlackUserID,
		&recipient.SlackUserName,
		&recipient.DisplayName,
		&recipient.IsActive,
		&recipient.JoinedAt,
		&recipient.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return recipient, nil
}
