// Package scheduler implements the wake-alarm core: the alarm registry, the
// per-tick trigger evaluator with its duplicate-suppression ledger, and the
// single-slot ringing state machine.
//
// A Service facade serializes all ticks and commands behind one mutex, drives
// side effects through a pluggable Sink, and reports schedule intents to the
// exact-alarm gateway. The nominal stimulus is a one-second tick; firing is
// guaranteed at most once per alarm per matching minute.
package scheduler
