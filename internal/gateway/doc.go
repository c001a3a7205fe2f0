// Package gateway defines the contract with the OS-level exact-alarm
// authority, the external facility able to wake the process at a precise
// instant even under power-saving restrictions.
//
// The scheduler treats the gateway as a secondary backstop: schedule and
// cancel intents are informational, and a NeedsPermission decision is
// surfaced to the UI without changing local firing behavior.
package gateway
