package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/redlist/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Same(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("fields reach the output", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithEndpoint(ctx, "get_countries")
		ctx = logging.WithField(ctx, "attempt", 2)
		ctx = logging.WithField(ctx, "retryable", true)
		ctx = logging.WithField(ctx, "error", errors.New("boom"))

		logging.FromContext(ctx).Info().Msg("dispatched")

		tl.AssertContains(t, `"endpoint":"get_countries"`)
		tl.AssertContains(t, `"attempt":2`)
		tl.AssertContains(t, `"retryable":true`)
		tl.AssertContains(t, `"error":"boom"`)
	})
}

func TestRequestID(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)
	assert.Empty(t, logging.RequestID(ctx))

	ctx = logging.WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", logging.RequestID(ctx))

	logging.FromContext(ctx).Debug().Msg("sent")
	tl.AssertContains(t, `"request_id":"req-123"`)
}
