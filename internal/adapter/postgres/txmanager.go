package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Beginner starts transactions. Implemented by *pgxpool.Pool.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager runs callbacks inside a transaction carried by the context, so
// repositories pick it up through QuerierFromCtx.
type TxManager struct {
	db Beginner
}

// NewTxManager creates a new TxManager.
func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn in a Read Committed transaction. fn's error rolls the
// transaction back and is returned unchanged; a panic rolls back and
// re-panics. A call made while ctx already carries a transaction joins it
// and leaves commit or rollback to the outermost call.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return wrapOp("begin transaction", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if r := recover(); r != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(r)
		}
	}()

	if fnErr := fn(withTx(ctx, tx)); fnErr != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			return fmt.Errorf("rollback: %w (after: %w)", rbErr, fnErr)
		}
		return fnErr
	}

	committed = true
	if err := tx.Commit(ctx); err != nil {
		return wrapOp("commit transaction", err)
	}
	return nil
}
