package scheduler

import (
	"context"
	"time"

	domain "github.com/oshokin/autorise/internal/domain/alarm"
	"github.com/oshokin/autorise/internal/logger"
)

// Ringer is the single-slot ringing state machine. It cycles between Idle and
// Ringing for the process lifetime and mediates every fire and dismiss
// request against the slot. There is no auto-dismiss: a ringing alarm rings
// until an explicit dismissal arrives.
//
// Side-effect signals go to the sink fire-and-forget; a sink failure never
// prevents the state transition, so Dismiss always succeeds and the machine
// cannot get stuck in Ringing.
type Ringer struct {
	// sink receives the side-effect signals.
	sink Sink
	// current is the occupied slot, nil while idle.
	current *domain.Ringing
}

// NewRinger returns an idle ringer emitting to the provided sink.
func NewRinger(sink Sink) *Ringer {
	return &Ringer{
		sink: sink,
	}
}

// Idle reports whether nothing is ringing.
func (r *Ringer) Idle() bool {
	return r.current == nil
}

// Current returns a copy of the ringing record, nil while idle.
func (r *Ringer) Current() *domain.Ringing {
	return r.current.Clone()
}

// Fire transitions Idle to Ringing and emits the wake-up signals. A fire
// while already ringing is ignored and reported as false: a second due alarm
// never interrupts the current one.
func (r *Ringer) Fire(ctx context.Context, alarmID string, at time.Time) bool {
	if r.current != nil {
		logger.WarnKV(ctx, "Fire ignored, already ringing",
			"ringing_alarm_id", r.current.AlarmID, "requested_alarm_id", alarmID)

		return false
	}

	r.current = &domain.Ringing{
		AlarmID: alarmID,
		FiredAt: at,
	}

	r.sink.KeepAwake(ctx, true)
	r.sink.StartVibration(ctx, DefaultVibrationPattern)
	r.sink.StartAudio(ctx)
	r.sink.OnFire(ctx, alarmID)

	return true
}

// Dismiss transitions Ringing to Idle and emits the teardown signals. It
// returns the record that was ringing, or nil if the machine was already
// idle; an idle dismiss is a successful no-op so UI double-taps stay safe.
func (r *Ringer) Dismiss(ctx context.Context) *domain.Ringing {
	if r.current == nil {
		return nil
	}

	dismissed := r.current
	r.current = nil

	r.teardown(ctx)

	return dismissed
}

// Cancel dismisses only when the given id matches the ringing alarm. A
// mismatched or idle cancel leaves the ring untouched and reports false.
func (r *Ringer) Cancel(ctx context.Context, alarmID string) bool {
	if r.current == nil || r.current.AlarmID != alarmID {
		return false
	}

	r.current = nil
	r.teardown(ctx)

	return true
}

// teardown emits the stop signals shared by Dismiss and Cancel.
func (r *Ringer) teardown(ctx context.Context) {
	r.sink.StopVibration(ctx)
	r.sink.StopAudio(ctx)
	r.sink.KeepAwake(ctx, false)
	r.sink.OnDismiss(ctx)
}
