package gateway

import (
	"context"

	"github.com/oshokin/autorise/internal/logger"
)

// Decision is the outcome of a schedule request against the exact-alarm authority.
type Decision string

const (
	// DecisionAccepted means the authority registered the wake-up.
	DecisionAccepted Decision = "accepted"
	// DecisionNeedsPermission means the user must grant the exact-alarm
	// permission first. Informational: the in-process evaluator still fires.
	DecisionNeedsPermission Decision = "needs_permission"
	// DecisionRejected means the authority refused the request.
	DecisionRejected Decision = "rejected"
)

// Gateway is the OS-level exact-alarm authority. The scheduler issues
// idempotent schedule/cancel intents to it as a coarse backstop; acceptance or
// rejection never blocks local alarm storage, and firing remains driven by the
// in-process evaluator regardless of gateway state.
type Gateway interface {
	// RequestSchedule asks the authority to wake the process at the given time of day.
	RequestSchedule(ctx context.Context, alarmID string, hour, minute int) Decision
	// RequestCancel withdraws a previously requested wake-up. Idempotent.
	RequestCancel(ctx context.Context, alarmID string)
	// CanScheduleExact reports whether the exact-alarm permission is granted.
	CanScheduleExact(ctx context.Context) bool
}

// LogGateway is the default Gateway: it records intents in the log and accepts
// everything. It stands in for a platform binding when none is wired.
type LogGateway struct{}

// NewLogGateway returns a gateway that accepts all requests.
func NewLogGateway() *LogGateway {
	return &LogGateway{}
}

// RequestSchedule logs the intent and accepts it.
func (g *LogGateway) RequestSchedule(ctx context.Context, alarmID string, hour, minute int) Decision {
	logger.InfoKV(ctx, "Schedule requested", "alarm_id", alarmID, "hour", hour, "minute", minute)

	return DecisionAccepted
}

// RequestCancel logs the cancellation intent.
func (g *LogGateway) RequestCancel(ctx context.Context, alarmID string) {
	logger.InfoKV(ctx, "Schedule cancel requested", "alarm_id", alarmID)
}

// CanScheduleExact always reports true for the logging gateway.
func (g *LogGateway) CanScheduleExact(_ context.Context) bool {
	return true
}
