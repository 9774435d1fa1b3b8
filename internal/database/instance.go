package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/adhan-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	recipientRepo contract.RecipientRepo
	triggerRepo   contract.TriggerRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.recipientRepo = newRecipientRepo(i.db.conn)
	i.triggerRepo = newTriggerRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		recipientRepo: newRecipientRepo(db),
		triggerRepo:   newTriggerRepo(db),
	}
}

// Recipient returns the recipient repository
func (i *instance) Recipient() contract.RecipientRepo {
	return i.recipientRepo
}

// Trigger returns the trigger history repository
func (i *instance) Trigger() contract.TriggerRepo {
	return i.triggerRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
