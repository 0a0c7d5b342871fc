package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vendalog/erp/internal/core/port"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

type txKey struct{}

type TransactionManager struct {
	pool *pgxpool.Pool
}

func NewTransactionManager(pool *pgxpool.Pool) port.TransactionManager {
	return &TransactionManager{pool: pool}
}

// WithTransaction begins a transaction, stores the handle in the context
// passed to fn, and commits only when fn returns nil. Row locks taken via
// FOR UPDATE inside fn are held until commit or rollback.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := tm.pool.Begin(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return err
		}
		return serviceerrors.NewDatabaseError(err)
	}
	// no-op once the transaction is committed
	defer tx.Rollback(context.WithoutCancel(ctx))

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return err
		}
		return serviceerrors.NewDatabaseError(err)
	}
	return nil
}

// TxFromContext returns the transaction started by WithTransaction, if any.
func TxFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// QuerierFrom picks the ambient transaction when present, the pool
// otherwise. This is how repositories join the orchestrator's transaction
// without carrying a handle through their signatures.
func QuerierFrom(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return pool
}
