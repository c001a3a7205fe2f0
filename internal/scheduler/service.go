package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	domain "github.com/oshokin/autorise/internal/domain/alarm"
	"github.com/oshokin/autorise/internal/gateway"
	"github.com/oshokin/autorise/internal/logger"
	repo "github.com/oshokin/autorise/internal/repository/state"
)

const (
	// DefaultTickInterval is the nominal evaluation period. Anything at or
	// below one minute preserves the at-most-once-per-minute firing guarantee.
	DefaultTickInterval = time.Second

	// DefaultSnoozeMinutes is used when a snooze request carries no duration.
	DefaultSnoozeMinutes = 5

	// DefaultTestAlarmDelay is how far ahead a test alarm is placed.
	DefaultTestAlarmDelay = 10 * time.Second

	// testAlarmLabel marks throwaway alarms created by TestAlarm.
	testAlarmLabel = "Test alarm"
)

// Status is a point-in-time summary of the scheduler for UIs and operators.
type Status struct {
	// Ringing is the currently ringing alarm, nil while idle.
	Ringing *domain.Ringing
	// AlarmCount is the number of stored alarms.
	AlarmCount int
	// ExactAlarmPermission reports the gateway's permission probe.
	ExactAlarmPermission bool
}

// Service is the serialized facade over the registry, ledger and ringer. A
// single mutex makes tick processing and command processing mutually
// exclusive, so a command can never race a tick (for example deleting an
// alarm at the instant it is being evaluated). Every operation completes in
// microseconds; the only outward calls are fire-and-forget sink signals and
// informational gateway intents.
type Service struct {
	// mu serializes ticks and commands over all core state.
	mu sync.Mutex
	// clock supplies the wall-clock instant for ticks and timestamps.
	clock Clock
	// registry owns the alarm set.
	registry *Registry
	// ledger suppresses duplicate firings within a minute.
	ledger *Ledger
	// ringer owns the single ringing slot.
	ringer *Ringer
	// gw is the exact-alarm authority backstop.
	gw gateway.Gateway
	// repo rehydrates and persists the alarm set; nil disables persistence.
	repo repo.Repository
}

// NewService builds the scheduler core and rehydrates the alarm set from the
// repository when one is provided. A missing state file yields an empty set,
// not an error.
func NewService(
	ctx context.Context,
	clock Clock,
	gw gateway.Gateway,
	sink Sink,
	repository repo.Repository,
) (*Service, error) {
	if clock == nil {
		clock = SystemClock()
	}

	if gw == nil {
		gw = gateway.NewLogGateway()
	}

	if sink == nil {
		sink = NewLogSink()
	}

	s := &Service{
		clock:    clock,
		registry: NewRegistry(),
		ledger:   NewLedger(),
		ringer:   NewRinger(sink),
		gw:       gw,
		repo:     repository,
	}

	if repository == nil {
		return s, nil
	}

	alarms, err := repository.Load(ctx)
	switch {
	case err == nil:
		for _, a := range alarms {
			if restoreErr := s.registry.Restore(a); restoreErr != nil {
				logger.WarnKV(ctx, "Skipping invalid persisted alarm",
					"alarm_id", a.ID, "error", restoreErr)
			}
		}
	case errors.Is(err, repo.ErrNotFound):
		// First boot, nothing to rehydrate.
	default:
		return nil, fmt.Errorf("load alarms: %w", err)
	}

	return s, nil
}

// CreateAlarm validates and stores a new alarm, then issues an informational
// schedule intent to the gateway. The gateway's decision never blocks local
// storage: the in-process evaluator is the authoritative firing path and the
// exact-alarm authority is a coarser backstop.
func (s *Service) CreateAlarm(
	ctx context.Context,
	hour, minute int,
	label string,
	kind domain.Kind,
) (*domain.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createLocked(ctx, hour, minute, label, kind)
}

// createLocked stores the alarm and emits the schedule intent. Callers hold mu.
func (s *Service) createLocked(
	ctx context.Context,
	hour, minute int,
	label string,
	kind domain.Kind,
) (*domain.Alarm, error) {
	a, err := s.registry.Create(hour, minute, label, kind, s.clock.Now())
	if err != nil {
		return nil, err
	}

	decision := s.gw.RequestSchedule(ctx, a.ID, a.Hour, a.Minute)
	if decision == gateway.DecisionNeedsPermission {
		logger.WarnKV(ctx, "Exact-alarm permission missing, in-process evaluator remains active",
			"alarm_id", a.ID)
	}

	logger.InfoKV(ctx, "Alarm created",
		"alarm_id", a.ID, "time", a.TimeOfDay(), "kind", a.Kind, "label", a.Label)

	s.saveLocked(ctx)

	return a, nil
}

// DeleteAlarm removes the alarm, its ledger entry and its gateway schedule.
// Unknown ids are a successful no-op.
func (s *Service) DeleteAlarm(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteLocked(ctx, id)
}

// deleteLocked performs the idempotent removal. Callers hold mu.
func (s *Service) deleteLocked(ctx context.Context, id string) {
	if !s.registry.Delete(id) {
		logger.DebugKV(ctx, "Delete of unknown alarm ignored", "alarm_id", id)

		return
	}

	s.ledger.Forget(id)
	s.gw.RequestCancel(ctx, id)

	logger.InfoKV(ctx, "Alarm deleted", "alarm_id", id)

	s.saveLocked(ctx)
}

// SetEnabled toggles the alarm and returns ErrNotFound for unknown ids.
func (s *Service) SetEnabled(ctx context.Context, id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registry.SetEnabled(id, enabled); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm toggled", "alarm_id", id, "enabled", enabled)

	s.saveLocked(ctx)

	return nil
}

// ListAlarms returns a cloned, insertion-ordered view of the alarm set.
func (s *Service) ListAlarms(_ context.Context) []*domain.Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.registry.Snapshot()
}

// Dismiss stops the ringing alarm. Dismissing while idle is a successful
// no-op. A dismissed one-shot alarm is deleted from the registry.
func (s *Service) Dismiss(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dismissLocked(ctx)
}

// dismissLocked tears down the ring and cleans up one-shot alarms.
// It returns the alarm that was ringing, nil when idle. Callers hold mu.
func (s *Service) dismissLocked(ctx context.Context) *domain.Alarm {
	dismissed := s.ringer.Dismiss(ctx)
	if dismissed == nil {
		return nil
	}

	a := s.registry.Get(dismissed.AlarmID)
	if a != nil && a.Kind == domain.KindOneShot {
		s.deleteLocked(ctx, a.ID)
	}

	return a
}

// Cancel stops the ring only if the id matches the ringing alarm. Unlike a
// dismissed one-shot, a cancelled alarm is not deleted: deletion follows the
// explicit delete command, independent of ringing state.
func (s *Service) Cancel(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ringer.Cancel(ctx, id) {
		logger.DebugKV(ctx, "Cancel did not match ringing alarm", "alarm_id", id)
	}
}

// Snooze dismisses the ringing alarm and schedules a one-shot alarm a few
// minutes ahead, carrying the original label. Returns ErrNotRinging while idle.
func (s *Service) Snooze(ctx context.Context, minutes int) (*domain.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ringer.Idle() {
		return nil, domain.ErrNotRinging
	}

	if minutes <= 0 {
		minutes = DefaultSnoozeMinutes
	}

	snoozed := s.dismissLocked(ctx)

	label := testAlarmLabel
	if snoozed != nil {
		label = snoozed.Label + " (snoozed)"
	}

	target := s.clock.Now().Add(time.Duration(minutes) * time.Minute)

	return s.createLocked(ctx, target.Hour(), target.Minute(), label, domain.KindOneShot)
}

// TestAlarm schedules a throwaway one-shot alarm shortly ahead of now so the
// whole fire/ring/dismiss path can be exercised on demand.
func (s *Service) TestAlarm(ctx context.Context, delay time.Duration) (*domain.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if delay <= 0 {
		delay = DefaultTestAlarmDelay
	}

	target := s.clock.Now().Add(delay)

	return s.createLocked(ctx, target.Hour(), target.Minute(), testAlarmLabel, domain.KindOneShot)
}

// Status reports the ringing slot, the alarm count and the gateway permission.
func (s *Service) Status(ctx context.Context) *Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &Status{
		Ringing:              s.ringer.Current(),
		AlarmCount:           s.registry.Len(),
		ExactAlarmPermission: s.gw.CanScheduleExact(ctx),
	}
}

// Tick evaluates the alarm set against the given instant and rings the
// winning alarm, if any. One-shot alarms self-disable after firing so they
// cannot produce a second occurrence before deletion.
func (s *Service) Tick(ctx context.Context, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := Evaluate(now, s.registry.Snapshot(), s.ledger, s.ringer.Idle())
	if event == nil {
		return
	}

	s.registry.markFired(event.AlarmID)
	s.ringer.Fire(ctx, event.AlarmID, event.At)
}

// Run drives the tick loop until the context is cancelled. This is the sole
// time-based stimulus of the core; commands arrive asynchronously between
// ticks and are serialized against them by the service mutex.
func (s *Service) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	logger.InfoKV(ctx, "Scheduler tick loop started", "interval", interval.String())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, scheduler tick loop exiting")
			return
		case <-ticker.C:
			s.Tick(ctx, s.clock.Now())
		}
	}
}

// saveLocked persists the current alarm set best-effort. Persistence is a
// collaborator concern: failures are logged and never block a command.
// Callers hold mu.
func (s *Service) saveLocked(ctx context.Context) {
	if s.repo == nil {
		return
	}

	if err := s.repo.Save(ctx, s.registry.Snapshot()); err != nil {
		logger.ErrorKV(ctx, "Failed to persist alarms", "error", err)
	}
}
