package scheduler

import (
	"fmt"
	"time"

	domain "github.com/oshokin/autorise/internal/domain/alarm"
)

// Registry owns the canonical set of alarm definitions. It is the sole writer
// of alarm state and keeps alarms in insertion order, which is both the
// display order and the deterministic tie-break order for simultaneous
// triggers.
//
// Registry performs no locking of its own: the Service serializes all access
// from ticks and commands.
type Registry struct {
	// ordered holds alarms in insertion order.
	ordered []*domain.Alarm
	// byID indexes alarms by id for O(1) lookups.
	byID map[string]*domain.Alarm
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[string]*domain.Alarm),
	}
}

// Create validates the time of day, assigns a fresh id and stores the alarm
// enabled. Invalid input is rejected before anything is stored.
func (r *Registry) Create(hour, minute int, label string, kind domain.Kind, now time.Time) (*domain.Alarm, error) {
	if err := domain.ValidateTime(hour, minute); err != nil {
		return nil, err
	}

	if kind != domain.KindRecurring && kind != domain.KindOneShot {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}

	a := &domain.Alarm{
		ID:        domain.NewID(),
		Hour:      hour,
		Minute:    minute,
		Label:     label,
		Enabled:   true,
		Kind:      kind,
		CreatedAt: now,
	}

	r.ordered = append(r.ordered, a)
	r.byID[a.ID] = a

	return a.Clone(), nil
}

// Restore inserts an already-built alarm, preserving its id. Used by the
// daemon to rehydrate the registry from the state file at boot.
func (r *Registry) Restore(a *domain.Alarm) error {
	if err := domain.ValidateTime(a.Hour, a.Minute); err != nil {
		return err
	}

	if _, exists := r.byID[a.ID]; exists {
		return nil
	}

	stored := a.Clone()
	r.ordered = append(r.ordered, stored)
	r.byID[stored.ID] = stored

	return nil
}

// Delete removes the alarm. Unknown ids are a successful no-op: UI
// double-taps and cleanup-after-dismiss may race, so deletion is idempotent.
// It reports whether an alarm was actually removed.
func (r *Registry) Delete(id string) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}

	delete(r.byID, id)

	for i, a := range r.ordered {
		if a.ID == id {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}

	return true
}

// SetEnabled toggles the alarm. Unlike Delete, toggling an unknown id is an
// error the caller should see.
func (r *Registry) SetEnabled(id string, enabled bool) error {
	a, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	a.Enabled = enabled

	return nil
}

// Get returns a copy of the alarm, or nil if absent.
func (r *Registry) Get(id string) *domain.Alarm {
	return r.byID[id].Clone()
}

// markFired applies the post-fire mutation for one-shot alarms: they
// self-disable so they cannot fire a second occurrence before deletion.
func (r *Registry) markFired(id string) {
	a, ok := r.byID[id]
	if !ok {
		return
	}

	if a.Kind == domain.KindOneShot {
		a.Enabled = false
	}
}

// Snapshot returns a consistent read-only copy of all alarms in insertion order.
func (r *Registry) Snapshot() []*domain.Alarm {
	result := make([]*domain.Alarm, 0, len(r.ordered))
	for _, a := range r.ordered {
		result = append(result, a.Clone())
	}

	return result
}

// Len reports the number of stored alarms.
func (r *Registry) Len() int {
	return len(r.ordered)
}
