package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/autorise/internal/domain/alarm"
)

// newTestAlarm builds an enabled alarm for evaluator tests.
func newTestAlarm(hour, minute int, kind domain.Kind) *domain.Alarm {
	return &domain.Alarm{
		ID:      domain.NewID(),
		Hour:    hour,
		Minute:  minute,
		Enabled: true,
		Kind:    kind,
	}
}

// TestEvaluate_FiresOncePerMinute drives a full minute of one-second ticks
// through a matching alarm and expects exactly one fire event.
func TestEvaluate_FiresOncePerMinute(t *testing.T) {
	t.Parallel()

	a := newTestAlarm(7, 30, domain.KindRecurring)
	snapshot := []*domain.Alarm{a}
	ledger := NewLedger()

	start := time.Date(2026, 8, 29, 7, 30, 0, 0, time.Local)

	fired := 0

	for second := 0; second < 60; second++ {
		event := Evaluate(start.Add(time.Duration(second)*time.Second), snapshot, ledger, true)
		if event != nil {
			fired++

			require.Equal(t, a.ID, event.AlarmID)
		}
	}

	require.Equal(t, 1, fired)

	// The next minute does not match, so nothing fires.
	event := Evaluate(start.Add(time.Minute), snapshot, ledger, true)
	require.Nil(t, event)
}

// TestEvaluate_NextDayRefire verifies the date-aware fire key lets a daily
// alarm fire again at the same time the following day.
func TestEvaluate_NextDayRefire(t *testing.T) {
	t.Parallel()

	a := newTestAlarm(7, 30, domain.KindRecurring)
	snapshot := []*domain.Alarm{a}
	ledger := NewLedger()

	today := time.Date(2026, 8, 29, 7, 30, 12, 0, time.Local)

	require.NotNil(t, Evaluate(today, snapshot, ledger, true))
	require.Nil(t, Evaluate(today.Add(time.Second), snapshot, ledger, true))

	tomorrow := today.AddDate(0, 0, 1)
	require.NotNil(t, Evaluate(tomorrow, snapshot, ledger, true))
}

// TestEvaluate_InsertionOrderWins verifies that when two alarms are due in
// the same minute, the earlier-inserted one rings and the later one is
// recorded by subsequent busy ticks so it never rings afterwards.
func TestEvaluate_InsertionOrderWins(t *testing.T) {
	t.Parallel()

	first := newTestAlarm(6, 45, domain.KindRecurring)
	second := newTestAlarm(6, 45, domain.KindRecurring)
	snapshot := []*domain.Alarm{first, second}
	ledger := NewLedger()

	now := time.Date(2026, 8, 29, 6, 45, 0, 0, time.Local)

	event := Evaluate(now, snapshot, ledger, true)
	require.NotNil(t, event)
	require.Equal(t, first.ID, event.AlarmID)

	// While the winner rings, the loser's occurrence is recorded but never
	// emitted, and it stays suppressed after the ring ends.
	for second := 1; second < 60; second++ {
		require.Nil(t, Evaluate(now.Add(time.Duration(second)*time.Second), snapshot, ledger, false))
	}

	require.Nil(t, Evaluate(now.Add(30*time.Second), snapshot, ledger, true))
}

// TestEvaluate_DisabledNeverFires verifies disabled alarms are skipped.
func TestEvaluate_DisabledNeverFires(t *testing.T) {
	t.Parallel()

	a := newTestAlarm(12, 0, domain.KindRecurring)
	a.Enabled = false

	ledger := NewLedger()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)

	require.Nil(t, Evaluate(now, []*domain.Alarm{a}, ledger, true))

	// Nothing was recorded either: enabling mid-minute lets it fire.
	a.Enabled = true
	require.NotNil(t, Evaluate(now.Add(5*time.Second), []*domain.Alarm{a}, ledger, true))
}

// TestEvaluate_BusyRingerRecordsOnly verifies a due alarm seen while another
// rings is marked as handled without emitting an event.
func TestEvaluate_BusyRingerRecordsOnly(t *testing.T) {
	t.Parallel()

	a := newTestAlarm(8, 0, domain.KindRecurring)
	snapshot := []*domain.Alarm{a}
	ledger := NewLedger()

	now := time.Date(2026, 8, 29, 8, 0, 0, 0, time.Local)

	require.Nil(t, Evaluate(now, snapshot, ledger, false))
	require.True(t, ledger.Suppressed(a.ID, domain.FireKey(now)))

	// The ringer freeing up inside the same minute does not resurrect the
	// missed occurrence.
	require.Nil(t, Evaluate(now.Add(20*time.Second), snapshot, ledger, true))
}

// TestLedger_Forget verifies a deleted alarm's entry is dropped so a new
// alarm reusing the id (or the same alarm re-created) starts clean.
func TestLedger_Forget(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.Record("a1", "2026-08-29 07:30")
	require.True(t, ledger.Suppressed("a1", "2026-08-29 07:30"))

	ledger.Forget("a1")
	require.False(t, ledger.Suppressed("a1", "2026-08-29 07:30"))
}
