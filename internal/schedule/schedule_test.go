package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_InvalidCronExpression(t *testing.T) {
	err := Run(context.Background(), "not a cron", func() {})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid cron expression "not a cron"`)
}

func TestRun_StopsOnContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, "0 0 * * *", func() {})
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not shut down after context cancellation")
	}
}
