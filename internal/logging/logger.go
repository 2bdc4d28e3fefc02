// Package logging is the ad board's structured logger. Server components
// log through the Logger interface so handlers and tests do not depend on a
// concrete backend; production uses the slog JSON implementation.
package logging

import "context"

// Logger writes leveled records with alternating key/value attributes.
// The context is passed through to the backend.
//
//	logger.Info(ctx, "user created", "id", user.ID, "request_id", rid)
//	logger.With("module", "http_server").Error(ctx, "request failed", "path", "/ads/7", "error", err.Error())
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a Logger that prefixes every record with args,
	// e.g. the module name of the HTTP server.
	With(args ...any) Logger
}

// Nop drops every record. Tests pass it where a Logger is required.
type Nop struct{}

func (Nop) Debug(context.Context, string, ...any) {}
func (Nop) Info(context.Context, string, ...any)  {}
func (Nop) Warn(context.Context, string, ...any)  {}
func (Nop) Error(context.Context, string, ...any) {}
func (n Nop) With(...any) Logger                  { return n }
