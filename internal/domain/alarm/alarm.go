package alarm

import (
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Kind distinguishes alarms that repeat daily from throwaway ones.
type Kind string

const (
	// KindRecurring fires every day at its time of day until disabled or deleted.
	KindRecurring Kind = "recurring"
	// KindOneShot fires once, self-disables, and is deleted when dismissed.
	// Used for test and snooze alarms.
	KindOneShot Kind = "one-shot"
)

var (
	// ErrInvalidTime is returned when an hour or minute is out of range.
	ErrInvalidTime = errors.New("hour must be 0-23 and minute must be 0-59")
	// ErrNotFound is returned when an operation references an unknown alarm id.
	ErrNotFound = errors.New("alarm not found")
	// ErrNotRinging is returned when a snooze is requested while nothing rings.
	ErrNotRinging = errors.New("no alarm is ringing")
	// ErrInvalidKind is returned when an unknown alarm kind is provided.
	ErrInvalidKind = errors.New("unknown alarm kind")
)

// Alarm is a single wake-alarm definition. Times are canonical 24-hour;
// callers collecting 12-hour input must convert before handing it over.
type Alarm struct {
	// ID uniquely identifies the alarm. ULIDs sort by creation time,
	// which keeps id order consistent with insertion order.
	ID string
	// Hour of day, 0-23.
	Hour int
	// Minute of hour, 0-59.
	Minute int
	// Label is free text shown by the UI; may be empty.
	Label string
	// Enabled alarms are eligible to fire; disabled ones are evaluated but never fire.
	Enabled bool
	// Kind is recurring or one-shot.
	Kind Kind
	// CreatedAt is when the alarm was registered.
	CreatedAt time.Time
}

// Clone returns a copy of the alarm to avoid leaking internal references.
func (a *Alarm) Clone() *Alarm {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// TimeOfDay renders the alarm's target time as zero-padded "HH:MM".
func (a *Alarm) TimeOfDay() string {
	return fmt.Sprintf("%02d:%02d", a.Hour, a.Minute)
}

// NewID produces a fresh alarm identifier.
func NewID() string {
	return ulid.Make().String()
}

// ValidateTime checks that hour and minute form a valid time of day.
func ValidateTime(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("%w: got %d:%d", ErrInvalidTime, hour, minute)
	}

	return nil
}

// ParseKind converts string input to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindRecurring:
		return KindRecurring, nil
	case KindOneShot:
		return KindOneShot, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// FireKey derives the duplicate-suppression token for an alarm matched at
// the provided instant. The key includes the calendar date so a recurring
// alarm fires again the next day: a bare HH:MM key would suppress it forever.
func FireKey(at time.Time) string {
	return at.Format("2006-01-02 15:04")
}
