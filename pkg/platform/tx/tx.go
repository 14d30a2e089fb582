// Package tx carries an open *sql.Tx through context so every store call
// made inside a registration transaction joins it without threading the
// transaction through each store method signature.
package tx

import (
	"context"
	"database/sql"
)

type txKey struct{}

// WithTx returns a context whose store calls run inside tx. A nil tx leaves
// the context untouched.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey{}, tx)
}

// From reports the transaction the context is bound to, if any. Stores fall
// back to the shared pool when ok is false.
func From(ctx context.Context) (tx *sql.Tx, ok bool) {
	tx, ok = ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}
