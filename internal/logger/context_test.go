package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestFromContextFallback verifies the global logger is returned when the
// context carries none.
func TestFromContextFallback(t *testing.T) {
	t.Parallel()

	require.Same(t, Logger(), FromContext(context.Background()))
}

// TestToContextRoundtrip verifies a stored logger is extracted unchanged.
func TestToContextRoundtrip(t *testing.T) {
	t.Parallel()

	l := zap.NewNop().Sugar()
	ctx := ToContext(context.Background(), l)

	require.Same(t, l, FromContext(ctx))
}

// TestWithName verifies naming produces a distinct scoped logger in the context.
func TestWithName(t *testing.T) {
	t.Parallel()

	ctx := WithName(context.Background(), "test-scope")

	require.NotSame(t, Logger(), FromContext(ctx))
}
