package gateway

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLogGateway verifies the default gateway accepts everything and reports
// the permission as granted.
func TestLogGateway(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gw := NewLogGateway()

	require.Equal(t, DecisionAccepted, gw.RequestSchedule(ctx, "alarm-1", 7, 30))
	require.True(t, gw.CanScheduleExact(ctx))

	// Cancelling, even twice, must not panic.
	gw.RequestCancel(ctx, "alarm-1")
	gw.RequestCancel(ctx, "alarm-1")
}
