// Package ratelimit provides a sliding-window request limiter behind an
// injectable store, with in-process and Redis-backed implementations.
package ratelimit

import (
	"context"
	"time"
)

// Config is the window applied to one key.
type Config struct {
	Interval time.Duration
	Limit    int
}

// Decision is the outcome of one limiter check. ResetIn is how long until
// the key's window opens again; it is populated on rejections and
// best-effort otherwise.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetIn   time.Duration
}

// Store decides whether a request is allowed under the key's window.
// Implementations must be safe for concurrent use.
type Store interface {
	Check(ctx context.Context, key string, cfg Config) (Decision, error)
}
