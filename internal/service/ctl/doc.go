// Package ctl implements the alarmctl operations: creating, deleting and
// toggling alarms, dismissing or snoozing the ringing one, and polling the
// scheduler status over gRPC.
package ctl
