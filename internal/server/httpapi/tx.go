package httpapi

import (
	"context"

	"github.com/dmitrijs2005/adboard/internal/dbx"
	"github.com/gofiber/fiber/v2"
)

// txHandler is a route handler that runs inside the request's transaction.
type txHandler func(c *fiber.Ctx, tx dbx.DBTX) error

// withTx opens one transaction per request and hands it to h. The
// transaction commits when h returns nil and rolls back when it returns an
// error or panics.
func (s *HTTPServer) withTx(h txHandler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		if s.requestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
			defer cancel()
		}
		c.SetUserContext(ctx)

		return dbx.WithTx(ctx, s.db, nil, func(_ context.Context, tx dbx.DBTX) error {
			return h(c, tx)
		})
	}
}
