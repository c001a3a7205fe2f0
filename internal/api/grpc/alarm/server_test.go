package alarm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/autorise/internal/domain/alarm"
	pb "github.com/oshokin/autorise/internal/pb/v1"
	"github.com/oshokin/autorise/internal/scheduler"
)

// fakeService is a minimal in-memory Service implementation for transport tests.
type fakeService struct {
	// alarms is returned from ListAlarms.
	alarms []*domain.Alarm
	// status is returned from Status.
	status *scheduler.Status
	// createErr is returned from CreateAlarm when set.
	createErr error
	// setEnabledErr is returned from SetEnabled when set.
	setEnabledErr error
	// snoozeErr is returned from Snooze when set.
	snoozeErr error
	// dismissed counts Dismiss calls.
	dismissed int
	// deletedID records the last DeleteAlarm argument.
	deletedID string
	// cancelledID records the last Cancel argument.
	cancelledID string
}

func (f *fakeService) CreateAlarm(
	_ context.Context,
	hour, minute int,
	label string,
	kind domain.Kind,
) (*domain.Alarm, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	return &domain.Alarm{
		ID:      "test-id",
		Hour:    hour,
		Minute:  minute,
		Label:   label,
		Enabled: true,
		Kind:    kind,
	}, nil
}

func (f *fakeService) DeleteAlarm(_ context.Context, id string) {
	f.deletedID = id
}

func (f *fakeService) SetEnabled(_ context.Context, _ string, _ bool) error {
	return f.setEnabledErr
}

func (f *fakeService) ListAlarms(_ context.Context) []*domain.Alarm {
	return f.alarms
}

func (f *fakeService) Dismiss(_ context.Context) {
	f.dismissed++
}

func (f *fakeService) Cancel(_ context.Context, id string) {
	f.cancelledID = id
}

func (f *fakeService) Snooze(_ context.Context, minutes int) (*domain.Alarm, error) {
	if f.snoozeErr != nil {
		return nil, f.snoozeErr
	}

	return &domain.Alarm{ID: "snooze-id", Minute: minutes, Kind: domain.KindOneShot}, nil
}

func (f *fakeService) TestAlarm(_ context.Context, _ time.Duration) (*domain.Alarm, error) {
	return &domain.Alarm{ID: "test-alarm-id", Kind: domain.KindOneShot}, nil
}

func (f *fakeService) Status(_ context.Context) *scheduler.Status {
	if f.status != nil {
		return f.status
	}

	return &scheduler.Status{}
}

// TestCreateAlarm_Mapping verifies conversion, kind defaulting and error codes.
func TestCreateAlarm_Mapping(t *testing.T) {
	t.Parallel()

	s := NewServer(&fakeService{})

	resp, err := s.CreateAlarm(context.Background(), &pb.CreateAlarmRequest{
		Hour:   7,
		Minute: 30,
		Label:  "Wake up",
	})

	require.NoError(t, err)
	require.Equal(t, int32(7), resp.GetAlarm().GetHour())
	require.Equal(t, int32(30), resp.GetAlarm().GetMinute())

	// Empty kind defaults to recurring.
	require.Equal(t, string(domain.KindRecurring), resp.GetAlarm().GetKind())

	// Unknown kind is rejected at the transport.
	_, err = s.CreateAlarm(context.Background(), &pb.CreateAlarmRequest{Kind: "weekly"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// Domain validation errors map to InvalidArgument.
	s = NewServer(&fakeService{createErr: domain.ErrInvalidTime})

	_, err = s.CreateAlarm(context.Background(), &pb.CreateAlarmRequest{Hour: 24})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestSetAlarmEnabled_NotFound verifies the NotFound mapping.
func TestSetAlarmEnabled_NotFound(t *testing.T) {
	t.Parallel()

	s := NewServer(&fakeService{setEnabledErr: domain.ErrNotFound})

	_, err := s.SetAlarmEnabled(context.Background(), &pb.SetAlarmEnabledRequest{AlarmId: "missing"})
	require.Equal(t, codes.NotFound, status.Code(err))
}

// TestDeleteAndCancel verifies idempotent delete and cancel pass-through.
func TestDeleteAndCancel(t *testing.T) {
	t.Parallel()

	svc := new(fakeService)
	s := NewServer(svc)

	_, err := s.DeleteAlarm(context.Background(), &pb.AlarmIdRequest{AlarmId: "a1"})
	require.NoError(t, err)
	require.Equal(t, "a1", svc.deletedID)

	_, err = s.CancelRinging(context.Background(), &pb.AlarmIdRequest{AlarmId: "a2"})
	require.NoError(t, err)
	require.Equal(t, "a2", svc.cancelledID)
}

// TestDismiss verifies dismiss always acks.
func TestDismiss(t *testing.T) {
	t.Parallel()

	svc := new(fakeService)
	s := NewServer(svc)

	_, err := s.Dismiss(context.Background(), &pb.DismissRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, svc.dismissed)
}

// TestSnooze_WhileIdle verifies the FailedPrecondition mapping.
func TestSnooze_WhileIdle(t *testing.T) {
	t.Parallel()

	s := NewServer(&fakeService{snoozeErr: domain.ErrNotRinging})

	_, err := s.Snooze(context.Background(), &pb.SnoozeRequest{Minutes: 5})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

// TestListAlarmsAndStatus verifies list conversion and the ringing slot.
func TestListAlarmsAndStatus(t *testing.T) {
	t.Parallel()

	firedAt := time.Unix(1700000000, 0).UTC()
	svc := &fakeService{
		alarms: []*domain.Alarm{
			{ID: "a1", Hour: 7, Minute: 30, Label: "Wake up", Enabled: true, Kind: domain.KindRecurring},
			{ID: "a2", Hour: 8, Minute: 0, Kind: domain.KindOneShot},
		},
		status: &scheduler.Status{
			Ringing:              &domain.Ringing{AlarmID: "a1", FiredAt: firedAt},
			AlarmCount:           2,
			ExactAlarmPermission: true,
		},
	}
	s := NewServer(svc)

	list, err := s.ListAlarms(context.Background(), &pb.ListAlarmsRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetAlarms(), 2)
	require.Equal(t, "a1", list.GetAlarms()[0].GetId())
	require.Equal(t, "a1", list.GetRinging().GetAlarmId())

	st, err := s.GetStatus(context.Background(), &pb.StatusRequest{})
	require.NoError(t, err)
	require.Equal(t, int32(2), st.GetAlarmCount())
	require.True(t, st.GetExactAlarmPermission())
	require.Equal(t, firedAt, st.GetRinging().GetFiredAt().AsTime())
}
