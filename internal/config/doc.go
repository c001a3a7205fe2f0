// Package config defines settings used by the scheduler daemon and alarmctl
// and provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the daemon gRPC address, the alarm state file path,
// the tick interval and the RPC timeout.
package config
