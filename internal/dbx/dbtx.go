// Package dbx is the database seam between the ad board repositories and
// database/sql. Repositories run queries on a DBTX, the HTTP layer opens one
// transaction per request with WithTx, and ClassifyError turns PostgreSQL
// failures into the sentinels from internal/common.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is what the users and ads repositories query through. A *sql.Tx is
// passed while serving a request; *sql.DB works for one-off statements.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Beginner is the pool side of a transaction. The HTTP server holds one and
// never issues queries on it directly.
type Beginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// WithTx is the unit of work behind a single API request. fn's writes are
// committed only if it returns nil; an error or a panic rolls them back, and
// the panic continues to unwind.
//
// Creating an ad and reading it back in the same unit:
//
//	err := dbx.WithTx(ctx, pool, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    ad, err := ads.NewPostgresRepository(tx).Create(ctx, &models.Ad{Title: "bike", Description: "red bike", OwnerID: 1})
//	    if err != nil {
//	        return err
//	    }
//	    _, err = ads.NewPostgresRepository(tx).GetByID(ctx, ad.ID)
//	    return err
//	})
func WithTx(ctx context.Context, db Beginner, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
