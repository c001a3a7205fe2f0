// Package alarm contains core domain types for the wake-alarm business logic.
//
// It defines Alarm (a time-of-day wake alarm with a recurring or one-shot
// kind), Ringing (the single-slot record of the alarm currently demanding a
// dismissal), validation helpers, and the sentinel errors shared by the
// scheduler and transport layers.
package alarm
