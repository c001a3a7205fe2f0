//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/autorise/internal/config"
	pb "github.com/oshokin/autorise/internal/pb/v1"
)

// Client wraps the gRPC AlarmSchedulerService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the scheduler daemon.
	conn *grpc.ClientConn
	// api is the generated AlarmSchedulerService client interface.
	api pb.AlarmSchedulerServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial establishes a gRPC connection to the scheduler daemon.
// Note: this uses insecure transport credentials; the daemon is expected to
// listen on localhost or a trusted network.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial scheduler daemon: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewAlarmSchedulerServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// CreateAlarm registers a new alarm on the daemon.
func (c *Client) CreateAlarm(ctx context.Context, hour, minute int, label, kind string) (*pb.AlarmResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.CreateAlarm(callCtx, &pb.CreateAlarmRequest{
		Hour:   int32(hour),
		Minute: int32(minute),
		Label:  label,
		Kind:   kind,
	})
	if err != nil {
		return nil, fmt.Errorf("create alarm: %w", err)
	}

	return resp, nil
}

// DeleteAlarm removes an alarm; unknown ids succeed.
func (c *Client) DeleteAlarm(ctx context.Context, alarmID string) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.DeleteAlarm(callCtx, &pb.AlarmIdRequest{AlarmId: alarmID}); err != nil {
		return fmt.Errorf("delete alarm: %w", err)
	}

	return nil
}

// SetAlarmEnabled toggles an alarm on or off.
func (c *Client) SetAlarmEnabled(ctx context.Context, alarmID string, enabled bool) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.SetAlarmEnabledRequest{
		AlarmId: alarmID,
		Enabled: enabled,
	}

	if _, err := c.api.SetAlarmEnabled(callCtx, request); err != nil {
		return fmt.Errorf("set alarm enabled: %w", err)
	}

	return nil
}

// ListAlarms retrieves the alarm set and the ringing slot.
func (c *Client) ListAlarms(ctx context.Context) (*pb.ListAlarmsResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListAlarms(callCtx, &pb.ListAlarmsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}

	return resp, nil
}

// Dismiss stops the ringing alarm; dismissing while idle succeeds.
func (c *Client) Dismiss(ctx context.Context) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.Dismiss(callCtx, &pb.DismissRequest{}); err != nil {
		return fmt.Errorf("dismiss: %w", err)
	}

	return nil
}

// CancelRinging stops the ring only if the id matches the ringing alarm.
func (c *Client) CancelRinging(ctx context.Context, alarmID string) error {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.CancelRinging(callCtx, &pb.AlarmIdRequest{AlarmId: alarmID}); err != nil {
		return fmt.Errorf("cancel ringing: %w", err)
	}

	return nil
}

// Snooze dismisses the ring and schedules a one-shot alarm minutes ahead.
func (c *Client) Snooze(ctx context.Context, minutes int) (*pb.AlarmResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.Snooze(callCtx, &pb.SnoozeRequest{Minutes: int32(minutes)})
	if err != nil {
		return nil, fmt.Errorf("snooze: %w", err)
	}

	return resp, nil
}

// TestAlarm schedules a throwaway one-shot alarm delaySeconds ahead.
func (c *Client) TestAlarm(ctx context.Context, delaySeconds int64) (*pb.AlarmResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.TestAlarm(callCtx, &pb.TestAlarmRequest{DelaySeconds: delaySeconds})
	if err != nil {
		return nil, fmt.Errorf("test alarm: %w", err)
	}

	return resp, nil
}

// GetStatus retrieves the scheduler status summary.
func (c *Client) GetStatus(ctx context.Context) (*pb.StatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetStatus(callCtx, &pb.StatusRequest{})
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	return resp, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
