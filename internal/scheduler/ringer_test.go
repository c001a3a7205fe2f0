package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recordingSink captures side-effect signals in call order.
type recordingSink struct {
	calls   []string
	pattern []time.Duration
}

func (s *recordingSink) OnFire(_ context.Context, alarmID string) {
	s.calls = append(s.calls, "fire:"+alarmID)
}

func (s *recordingSink) OnDismiss(_ context.Context) {
	s.calls = append(s.calls, "dismiss")
}

func (s *recordingSink) StartAudio(_ context.Context) {
	s.calls = append(s.calls, "audio-start")
}

func (s *recordingSink) StopAudio(_ context.Context) {
	s.calls = append(s.calls, "audio-stop")
}

func (s *recordingSink) StartVibration(_ context.Context, pattern []time.Duration) {
	s.pattern = pattern
	s.calls = append(s.calls, "vibration-start")
}

func (s *recordingSink) StopVibration(_ context.Context) {
	s.calls = append(s.calls, "vibration-stop")
}

func (s *recordingSink) KeepAwake(_ context.Context, on bool) {
	if on {
		s.calls = append(s.calls, "keep-awake-on")
	} else {
		s.calls = append(s.calls, "keep-awake-off")
	}
}

// TestRinger_FireAndDismiss walks the full Idle -> Ringing -> Idle cycle and
// checks the side-effect signal ordering on both edges.
func TestRinger_FireAndDismiss(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sink := new(recordingSink)
	ringer := NewRinger(sink)

	require.True(t, ringer.Idle())
	require.Nil(t, ringer.Current())

	firedAt := time.Date(2026, 8, 29, 7, 30, 0, 0, time.Local)
	require.True(t, ringer.Fire(ctx, "alarm-1", firedAt))

	require.False(t, ringer.Idle())
	require.Equal(t, "alarm-1", ringer.Current().AlarmID)
	require.Equal(t, firedAt, ringer.Current().FiredAt)
	require.Equal(t, DefaultVibrationPattern, sink.pattern)
	require.Equal(t,
		[]string{"keep-awake-on", "vibration-start", "audio-start", "fire:alarm-1"},
		sink.calls)

	sink.calls = nil

	dismissed := ringer.Dismiss(ctx)
	require.NotNil(t, dismissed)
	require.Equal(t, "alarm-1", dismissed.AlarmID)
	require.True(t, ringer.Idle())
	require.Equal(t,
		[]string{"vibration-stop", "audio-stop", "keep-awake-off", "dismiss"},
		sink.calls)
}

// TestRinger_IdleDismissIsNoOp verifies dismissing while idle emits nothing.
func TestRinger_IdleDismissIsNoOp(t *testing.T) {
	t.Parallel()

	sink := new(recordingSink)
	ringer := NewRinger(sink)

	require.Nil(t, ringer.Dismiss(context.Background()))
	require.Empty(t, sink.calls)
}

// TestRinger_SecondFireIgnored verifies a fire while ringing never steals or
// restarts the slot.
func TestRinger_SecondFireIgnored(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sink := new(recordingSink)
	ringer := NewRinger(sink)

	require.True(t, ringer.Fire(ctx, "alarm-1", time.Now()))

	sink.calls = nil

	require.False(t, ringer.Fire(ctx, "alarm-2", time.Now()))
	require.Equal(t, "alarm-1", ringer.Current().AlarmID)
	require.Empty(t, sink.calls)
}

// TestRinger_Cancel verifies cancel tears down only on an id match.
func TestRinger_Cancel(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	sink := new(recordingSink)
	ringer := NewRinger(sink)

	// Cancel while idle.
	require.False(t, ringer.Cancel(ctx, "alarm-1"))

	require.True(t, ringer.Fire(ctx, "alarm-1", time.Now()))

	// Mismatched id leaves the ring untouched.
	require.False(t, ringer.Cancel(ctx, "alarm-2"))
	require.False(t, ringer.Idle())

	require.True(t, ringer.Cancel(ctx, "alarm-1"))
	require.True(t, ringer.Idle())
}
