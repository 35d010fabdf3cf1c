package postgres

import (
	"context"
	"errors"
	"fmt"
)

// TxManager runs a unit of work inside one transaction. The transaction
// travels in the context; repositories pick it up through QuerierFromCtx.
type TxManager struct {
	db DB
}

// NewTxManager returns a TxManager that opens transactions on db.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx commits when fn returns nil and rolls back when it fails or panics.
// A call made from inside fn joins the surrounding transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		rbErr := tx.Rollback(ctx)
		if r := recover(); r != nil {
			panic(r)
		}
		if rbErr != nil {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rbErr))
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		return err
	}

	// pgx closes the transaction even when COMMIT fails.
	finished = true
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
