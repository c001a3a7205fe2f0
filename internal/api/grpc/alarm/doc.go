// Package alarm adapts the scheduler core to the AlarmSchedulerService gRPC
// API: it validates requests, converts between protobuf and domain types, and
// maps domain errors onto gRPC status codes.
package alarm
