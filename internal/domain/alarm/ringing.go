package alarm

import "time"

// Ringing describes the single process-wide ringing slot: which alarm, if
// any, is currently demanding a dismissal. At most one alarm rings at a time.
type Ringing struct {
	// AlarmID is the id of the ringing alarm.
	AlarmID string
	// FiredAt is the instant the alarm fired.
	FiredAt time.Time
}

// Clone returns a copy of the ringing record and handles nil safely.
func (r *Ringing) Clone() *Ringing {
	if r == nil {
		return nil
	}

	cloned := *r

	return &cloned
}
