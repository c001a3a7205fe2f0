package scheduler

// Ledger records, per alarm, the key of its last fire decision. The evaluator
// runs at sub-minute cadence, so a matching minute is observed up to 60 times;
// the ledger collapses those observations into at most one firing.
//
// Keys include the calendar date (see alarm.FireKey), which is what lets a
// daily recurring alarm fire again the next day. Entries live for the process
// lifetime only and are never persisted: a fresh process may legitimately
// re-fire an alarm whose minute has not yet elapsed.
type Ledger struct {
	// lastKey maps alarm id to the most recent fire key.
	lastKey map[string]string
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		lastKey: make(map[string]string),
	}
}

// Suppressed reports whether the alarm already fired for the given key.
func (l *Ledger) Suppressed(alarmID, key string) bool {
	return l.lastKey[alarmID] == key
}

// Record stores the fire key for the alarm, overwriting any previous one.
// Only the evaluator writes here, and only on a successful fire decision.
func (l *Ledger) Record(alarmID, key string) {
	l.lastKey[alarmID] = key
}

// Forget drops the alarm's entry. Called when the alarm is deleted.
func (l *Ledger) Forget(alarmID string) {
	delete(l.lastKey, alarmID)
}
