package scheduler

import (
	"time"

	domain "github.com/oshokin/autorise/internal/domain/alarm"
)

// FireEvent reports that an alarm became due and won the right to ring.
type FireEvent struct {
	// AlarmID is the id of the alarm to ring.
	AlarmID string
	// At is the instant the match was detected.
	At time.Time
}

// Evaluate scans the snapshot in insertion order and decides which alarm, if
// any, must fire at the given instant. It returns at most one event per tick.
//
// A match requires the current hour and minute to equal the alarm's target
// exactly; the fire key (date + HH:MM) is checked against the ledger so that
// the up-to-60 ticks inside a matching minute produce a single firing. The
// first non-suppressed match in snapshot order wins and scanning stops there.
//
// When the ringer is already occupied, matches are still recorded in the
// ledger but no event is emitted: the occurrence is silently missed rather
// than queued. Queueing the loser to ring right after dismissal is a possible
// alternative policy; product has not asked for it.
func Evaluate(now time.Time, snapshot []*domain.Alarm, ledger *Ledger, ringerIdle bool) *FireEvent {
	var (
		currentHour   = now.Hour()
		currentMinute = now.Minute()
		key           = domain.FireKey(now)
	)

	for _, a := range snapshot {
		if !a.Enabled {
			continue
		}

		if a.Hour != currentHour || a.Minute != currentMinute {
			continue
		}

		if ledger.Suppressed(a.ID, key) {
			continue
		}

		ledger.Record(a.ID, key)

		if ringerIdle {
			return &FireEvent{
				AlarmID: a.ID,
				At:      now,
			}
		}
	}

	return nil
}
