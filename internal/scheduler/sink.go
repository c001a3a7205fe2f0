package scheduler

import (
	"context"
	"time"

	"github.com/oshokin/autorise/internal/logger"
)

// DefaultVibrationPattern is the waveform handed to the vibration collaborator:
// wait 0ms, vibrate 1s, pause 500ms, repeated.
//
//nolint:gochecknoglobals // Shared constant waveform, never mutated.
var DefaultVibrationPattern = []time.Duration{
	0,
	time.Second,
	500 * time.Millisecond,
	time.Second,
	500 * time.Millisecond,
	time.Second,
}

// Sink receives one-way side-effect signals from the ringing state machine.
// Implementations must not block: the scheduler emits signals fire-and-forget
// and never awaits their completion before processing the next tick or
// command. A signal that fails to produce sound is a collaborator concern;
// the state transition that produced it has already completed.
type Sink interface {
	// OnFire reports that the alarm with the given id started ringing.
	OnFire(ctx context.Context, alarmID string)
	// OnDismiss reports that the ringing alarm was dismissed or cancelled.
	OnDismiss(ctx context.Context)
	// StartAudio asks the player to start looping the alarm sound.
	StartAudio(ctx context.Context)
	// StopAudio asks the player to stop the alarm sound.
	StopAudio(ctx context.Context)
	// StartVibration asks the device to vibrate with the given waveform.
	StartVibration(ctx context.Context, pattern []time.Duration)
	// StopVibration stops an ongoing vibration.
	StopVibration(ctx context.Context)
	// KeepAwake toggles the wake-lock so the device stays on while ringing.
	KeepAwake(ctx context.Context, on bool)
}

// LogSink is the default Sink: it writes every signal to the log. Useful for
// the bare daemon and for deployments where a platform collaborator is wired
// in later.
type LogSink struct{}

// NewLogSink returns a sink that logs all side-effect signals.
func NewLogSink() *LogSink {
	return &LogSink{}
}

// OnFire logs the fired alarm id.
func (s *LogSink) OnFire(ctx context.Context, alarmID string) {
	logger.InfoKV(ctx, "Alarm fired", "alarm_id", alarmID)
}

// OnDismiss logs the dismissal.
func (s *LogSink) OnDismiss(ctx context.Context) {
	logger.Info(ctx, "Alarm dismissed")
}

// StartAudio logs the audio start signal.
func (s *LogSink) StartAudio(ctx context.Context) {
	logger.Info(ctx, "Start looping audio")
}

// StopAudio logs the audio stop signal.
func (s *LogSink) StopAudio(ctx context.Context) {
	logger.Info(ctx, "Stop audio")
}

// StartVibration logs the vibration start signal.
func (s *LogSink) StartVibration(ctx context.Context, pattern []time.Duration) {
	logger.InfoKV(ctx, "Start vibration", "pattern", pattern)
}

// StopVibration logs the vibration stop signal.
func (s *LogSink) StopVibration(ctx context.Context) {
	logger.Info(ctx, "Stop vibration")
}

// KeepAwake logs the wake-lock toggle.
func (s *LogSink) KeepAwake(ctx context.Context, on bool) {
	logger.InfoKV(ctx, "Keep-awake toggled", "on", on)
}
