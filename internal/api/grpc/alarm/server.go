package alarm

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/autorise/internal/domain/alarm"
	pb "github.com/oshokin/autorise/internal/pb/v1"
	"github.com/oshokin/autorise/internal/scheduler"
)

// Service abstracts the scheduler operations the transport layer depends on.
type Service interface {
	CreateAlarm(ctx context.Context, hour, minute int, label string, kind domain.Kind) (*domain.Alarm, error)
	DeleteAlarm(ctx context.Context, id string)
	SetEnabled(ctx context.Context, id string, enabled bool) error
	ListAlarms(ctx context.Context) []*domain.Alarm
	Dismiss(ctx context.Context)
	Cancel(ctx context.Context, id string)
	Snooze(ctx context.Context, minutes int) (*domain.Alarm, error)
	TestAlarm(ctx context.Context, delay time.Duration) (*domain.Alarm, error)
	Status(ctx context.Context) *scheduler.Status
}

// Server implements the AlarmSchedulerService gRPC API.
type Server struct {
	pb.UnimplementedAlarmSchedulerServiceServer

	// service provides the scheduling logic behind the transport.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// CreateAlarm validates and stores a new alarm.
func (s *Server) CreateAlarm(ctx context.Context, req *pb.CreateAlarmRequest) (*pb.AlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	kind := domain.KindRecurring
	if req.GetKind() != "" {
		parsed, err := domain.ParseKind(req.GetKind())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		kind = parsed
	}

	created, err := s.service.CreateAlarm(ctx, int(req.GetHour()), int(req.GetMinute()), req.GetLabel(), kind)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.AlarmResponse{Alarm: toProtoAlarm(created)}, nil
}

// DeleteAlarm removes an alarm; unknown ids succeed as a no-op.
func (s *Server) DeleteAlarm(ctx context.Context, req *pb.AlarmIdRequest) (*pb.Ack, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	s.service.DeleteAlarm(ctx, req.GetAlarmId())

	return &pb.Ack{}, nil
}

// SetAlarmEnabled toggles an alarm on or off.
func (s *Server) SetAlarmEnabled(ctx context.Context, req *pb.SetAlarmEnabledRequest) (*pb.Ack, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := s.service.SetEnabled(ctx, req.GetAlarmId(), req.GetEnabled()); err != nil {
		return nil, toStatusError(err)
	}

	return &pb.Ack{}, nil
}

// ListAlarms returns the alarm set in insertion order plus the ringing slot.
func (s *Server) ListAlarms(ctx context.Context, _ *pb.ListAlarmsRequest) (*pb.ListAlarmsResponse, error) {
	alarms := s.service.ListAlarms(ctx)

	response := &pb.ListAlarmsResponse{
		Alarms:  make([]*pb.Alarm, 0, len(alarms)),
		Ringing: toProtoRinging(s.service.Status(ctx).Ringing),
	}
	for _, a := range alarms {
		response.Alarms = append(response.Alarms, toProtoAlarm(a))
	}

	return response, nil
}

// Dismiss stops the ringing alarm; dismissing while idle succeeds.
func (s *Server) Dismiss(ctx context.Context, _ *pb.DismissRequest) (*pb.Ack, error) {
	s.service.Dismiss(ctx)

	return &pb.Ack{}, nil
}

// CancelRinging stops the ring only when the id matches the ringing alarm.
func (s *Server) CancelRinging(ctx context.Context, req *pb.AlarmIdRequest) (*pb.Ack, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	s.service.Cancel(ctx, req.GetAlarmId())

	return &pb.Ack{}, nil
}

// Snooze dismisses the ring and schedules a one-shot a few minutes ahead.
func (s *Server) Snooze(ctx context.Context, req *pb.SnoozeRequest) (*pb.AlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := s.service.Snooze(ctx, int(req.GetMinutes()))
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.AlarmResponse{Alarm: toProtoAlarm(created)}, nil
}

// TestAlarm schedules a throwaway one-shot alarm shortly ahead.
func (s *Server) TestAlarm(ctx context.Context, req *pb.TestAlarmRequest) (*pb.AlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := s.service.TestAlarm(ctx, time.Duration(req.GetDelaySeconds())*time.Second)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &pb.AlarmResponse{Alarm: toProtoAlarm(created)}, nil
}

// GetStatus reports the ringing slot, alarm count and permission probe.
func (s *Server) GetStatus(ctx context.Context, _ *pb.StatusRequest) (*pb.StatusResponse, error) {
	st := s.service.Status(ctx)

	return &pb.StatusResponse{
		Ringing:              toProtoRinging(st.Ringing),
		AlarmCount:           int32(st.AlarmCount),
		ExactAlarmPermission: st.ExactAlarmPermission,
	}, nil
}

// toStatusError maps domain errors onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidTime), errors.Is(err, domain.ErrInvalidKind):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrNotRinging):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// toProtoAlarm converts a domain Alarm into its protobuf representation.
func toProtoAlarm(a *domain.Alarm) *pb.Alarm {
	if a == nil {
		return nil
	}

	var createdAt *timestamppb.Timestamp
	if !a.CreatedAt.IsZero() {
		createdAt = timestamppb.New(a.CreatedAt)
	}

	return &pb.Alarm{
		Id:        a.ID,
		Hour:      int32(a.Hour),
		Minute:    int32(a.Minute),
		Label:     a.Label,
		Enabled:   a.Enabled,
		Kind:      string(a.Kind),
		CreatedAt: createdAt,
	}
}

// toProtoRinging converts the ringing slot, nil while idle.
func toProtoRinging(r *domain.Ringing) *pb.RingingInfo {
	if r == nil {
		return nil
	}

	return &pb.RingingInfo{
		AlarmId: r.AlarmID,
		FiredAt: timestamppb.New(r.FiredAt),
	}
}
