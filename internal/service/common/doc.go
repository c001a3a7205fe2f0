// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper with per-call timeouts for
// talking to the scheduler daemon.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
