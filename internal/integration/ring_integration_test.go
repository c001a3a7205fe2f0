package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pb "github.com/oshokin/autorise/internal/pb/v1"
	"github.com/oshokin/autorise/internal/service/common"
)

// TestRing_TestAlarmFiresAndDismisses schedules a near-term test alarm
// against a live daemon, polls until it rings and dismisses it.
func TestRing_TestAlarmFiresAndDismisses(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)
	statePath := filepath.Join(t.TempDir(), "alarms.json")

	stop := startDaemon(t, addr, statePath)
	defer stop()

	ctx := context.Background()

	c, err := common.Dial(ctx, addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	// Dismiss while idle is a harmless no-op.
	require.NoError(t, c.Dismiss(ctx))

	created, err := c.TestAlarm(ctx, 1)
	require.NoError(t, err)

	alarmID := created.GetAlarm().GetId()

	// The alarm lands at most one minute ahead; the fast tick picks it up as
	// soon as its minute arrives.
	ringing := waitForRinging(t, c, 75*time.Second)
	require.Equal(t, alarmID, ringing.GetAlarmId())

	require.NoError(t, c.Dismiss(ctx))

	// One-shot alarms are deleted on dismissal.
	list, err := c.ListAlarms(ctx)
	require.NoError(t, err)
	require.Empty(t, list.GetAlarms())
	require.Nil(t, list.GetRinging())
}

// waitForRinging polls the daemon status until an alarm rings or the
// deadline passes.
func waitForRinging(t *testing.T, c *common.Client, deadline time.Duration) *pb.RingingInfo {
	t.Helper()

	ctx := context.Background()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	timeout := time.After(deadline)

	for {
		select {
		case <-timeout:
			t.Fatal("alarm did not ring before the deadline")
			return nil
		case <-ticker.C:
			st, err := c.GetStatus(ctx)
			require.NoError(t, err)

			if ringing := st.GetRinging(); ringing != nil {
				return ringing
			}
		}
	}
}
