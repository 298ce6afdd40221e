package api

import (
	"context"
	"time"
)

// DefaultQueryTimeout is the timeout for database queries when none is configured
const DefaultQueryTimeout = 10 * time.Second

var queryTimeout = DefaultQueryTimeout

// SetQueryTimeout changes the timeout applied by WithQueryTimeout. Non-positive values are ignored.
func SetQueryTimeout(d time.Duration) {
	if d > 0 {
		queryTimeout = d
	}
}

// QueryTimeout returns the timeout applied to database queries
func QueryTimeout() time.Duration {
	return queryTimeout
}

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, queryTimeout)
}
