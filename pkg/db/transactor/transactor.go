package transactor

import (
	"context"
)

// Transactor represents behavior for transactors
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}

type nopTransactor struct{}

// NewNopTransactor builds transactor which runs function as is, it is used for data sources without transactions
func NewNopTransactor() Transactor {
	return nopTransactor{}
}

func (nopTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	return txFunc(ctx)
}

// txKey is distinct for every transaction type, so pgx and sql transactions never collide in context
type txKey[T any] struct{}

func injectTx[T any](ctx context.Context, tx T) context.Context {
	return context.WithValue(ctx, txKey[T]{}, tx)
}

func extractTx[T any](ctx context.Context) (T, bool) {
	tx, ok := ctx.Value(txKey[T]{}).(T)
	return tx, ok
}

// txDriver knows how to start and finish transaction of type T
type txDriver[T any] struct {
	begin  func(context.Context) (T, error)
	finish func(ctx context.Context, tx T, commit bool) error
}

// run executes txFunc within new transaction or within the one already stored in context.
// Transaction is committed only if txFunc succeeds, commit failure is returned to caller.
func (d txDriver[T]) run(ctx context.Context, txFunc func(context.Context) error) (err error) {
	if _, ok := extractTx[T](ctx); ok {
		return txFunc(ctx)
	}

	tx, err := d.begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = d.finish(ctx, tx, false)
			panic(p)
		}

		if finishErr := d.finish(ctx, tx, err == nil); finishErr != nil && err == nil {
			err = finishErr
		}
	}()

	return txFunc(injectTx(ctx, tx))
}
