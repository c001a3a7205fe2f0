// Package state persists the alarm set as a JSON file so the daemon can
// rehydrate it across restarts.
//
// It defines the Repository interface used by the scheduler and a
// FileRepository implementation based on protojson, reusing the generated
// API types for the on-disk format.
package state
