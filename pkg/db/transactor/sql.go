package transactor

import (
	"context"
	"database/sql"
)

// SQLTransactor is transactor for database/sql handle
type SQLTransactor interface {
	Transactor
	WithinTransactionWithOptions(context.Context, func(context.Context) error, *sql.TxOptions) error
}

type sqlTransactor struct {
	db *sql.DB
}

// NewSQLTransactor builds SQLTransactor
func NewSQLTransactor(db *sql.DB) SQLTransactor {
	return &sqlTransactor{db: db}
}

func (t *sqlTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	return t.WithinTransactionWithOptions(ctx, txFunc, nil)
}

func (t *sqlTransactor) WithinTransactionWithOptions(ctx context.Context, txFunc func(context.Context) error, opts *sql.TxOptions) error {
	return txDriver[*sql.Tx]{
		begin: func(ctx context.Context) (*sql.Tx, error) {
			return t.db.BeginTx(ctx, opts)
		},
		finish: func(_ context.Context, tx *sql.Tx, commit bool) error {
			if commit {
				return tx.Commit()
			}
			return tx.Rollback()
		},
	}.run(ctx, txFunc)
}

// SQLWithinTransactionExecutor returns transaction from context if present or db otherwise
type SQLWithinTransactionExecutor interface {
	Executor(ctx context.Context) SQLQueryExecutor
}

// SQLQueryExecutor is common interface for *sql.Tx and *sql.DB
type SQLQueryExecutor interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type sqlWithinTransactionExecutor struct {
	db *sql.DB
}

// NewSQLWithinTransactionExecutor builds SQLWithinTransactionExecutor
func NewSQLWithinTransactionExecutor(db *sql.DB) SQLWithinTransactionExecutor {
	return &sqlWithinTransactionExecutor{db: db}
}

func (e *sqlWithinTransactionExecutor) Executor(ctx context.Context) SQLQueryExecutor {
	if tx, ok := extractTx[*sql.Tx](ctx); ok {
		return tx
	}
	return e.db
}
