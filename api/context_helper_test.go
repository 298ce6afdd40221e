package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithQueryTimeout(t *testing.T) {
	defer SetQueryTimeout(DefaultQueryTimeout)

	SetQueryTimeout(0)
	assert.Equal(t, DefaultQueryTimeout, QueryTimeout())

	SetQueryTimeout(2 * time.Second)
	ctx, cancel := WithQueryTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, 500*time.Millisecond)
}
