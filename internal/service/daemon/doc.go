// Package daemon runs the alarm-scheduler process: it rehydrates the alarm
// set from the state file, starts the one-second tick loop, and serves the
// AlarmSchedulerService gRPC API until the context is canceled.
package daemon
