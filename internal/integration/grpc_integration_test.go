package integration

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/autorise/internal/config"
	"github.com/oshokin/autorise/internal/service/common"
	"github.com/oshokin/autorise/internal/service/daemon"
)

// reservePort grabs a free loopback port for a test daemon.
func reservePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}

// startDaemon starts the scheduler daemon with temporary config and state
// file. Returns a stop function for graceful shutdown.
func startDaemon(t *testing.T, addr, statePath string) (stop func()) {
	t.Helper()

	// Create cancellable context for daemon lifecycle.
	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	// Create temporary configuration file with a fast tick for tests.
	require.NoError(
		t,
		config.Save(cfgPath, &config.Config{
			ServerAddress: addr,
			TickInterval:  50 * time.Millisecond,
			Timeout:       5 * time.Second,
		}),
	)

	// Start daemon in background goroutine.
	go func() {
		options := &daemon.Options{
			ConfigPath:    cfgPath,
			ListenAddress: addr,
			StateFile:     statePath,
		}

		_ = daemon.Run(ctx, options) //nolint:errcheck // Shutdown errors are irrelevant to the test.
	}()

	// Wait briefly for the daemon to start listening.
	time.Sleep(150 * time.Millisecond)

	return func() {
		cancel()
		time.Sleep(100 * time.Millisecond)
	}
}

// TestGRPC_AlarmLifecycle starts the real daemon and exercises the alarm CRUD
// surface with on-disk persistence.
func TestGRPC_AlarmLifecycle(t *testing.T) {
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

	// Empty set on first boot.
	list, err := c.ListAlarms(ctx)
	require.NoError(t, err)
	require.Empty(t, list.GetAlarms())
	require.Nil(t, list.GetRinging())

	// Create, toggle and read back an alarm.
	created, err := c.CreateAlarm(ctx, 7, 30, "Wake up", "recurring")
	require.NoError(t, err)

	alarmID := created.GetAlarm().GetId()
	require.NotEmpty(t, alarmID)

	require.NoError(t, c.SetAlarmEnabled(ctx, alarmID, false))

	list, err = c.ListAlarms(ctx)
	require.NoError(t, err)
	require.Len(t, list.GetAlarms(), 1)
	require.False(t, list.GetAlarms()[0].GetEnabled())

	// The alarm set was persisted to disk.
	_, err = os.Stat(statePath)
	require.NoError(t, err)

	// Status reflects the stored alarm.
	st, err := c.GetStatus(ctx)
	require.NoError(t, err)
	require.Equal(t, int32(1), st.GetAlarmCount())

	// Deletion is idempotent.
	require.NoError(t, c.DeleteAlarm(ctx, alarmID))
	require.NoError(t, c.DeleteAlarm(ctx, alarmID))

	list, err = c.ListAlarms(ctx)
	require.NoError(t, err)
	require.Empty(t, list.GetAlarms())
}

// TestGRPC_InvalidTimeRejected verifies validation errors surface to clients.
func TestGRPC_InvalidTimeRejected(t *testing.T) {
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

	_, err = c.CreateAlarm(ctx, 24, 0, "", "recurring")
	require.Error(t, err)

	_, err = c.CreateAlarm(ctx, 7, 0, "", "hourly")
	require.Error(t, err)
}
