package ctl

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/autorise/internal/config"
	"github.com/oshokin/autorise/internal/logger"
	pb "github.com/oshokin/autorise/internal/pb/v1"
	"github.com/oshokin/autorise/internal/service/common"
)

// Options configures alarmctl operations.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
}

// DefaultWatchInterval defines the polling interval for the watch command.
const DefaultWatchInterval = 5 * time.Second

// connect loads settings and dials the scheduler daemon.
func connect(ctx context.Context, opts *Options) (*common.Client, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	return client, nil
}

// Create registers a new alarm and prints its id.
func Create(ctx context.Context, opts *Options, hour, minute int, label, kind string) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	resp, err := client.CreateAlarm(ctx, hour, minute, label, kind)
	if err != nil {
		return err
	}

	a := resp.GetAlarm()
	logger.InfoKV(ctx, "Alarm created",
		"alarm_id", a.GetId(), "time", fmt.Sprintf("%02d:%02d", a.GetHour(), a.GetMinute()), "kind", a.GetKind())

	return nil
}

// Delete removes an alarm; unknown ids succeed as a no-op.
func Delete(ctx context.Context, opts *Options, alarmID string) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	if err := client.DeleteAlarm(ctx, alarmID); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm deleted", "alarm_id", alarmID)

	return nil
}

// SetEnabled toggles an alarm on or off.
func SetEnabled(ctx context.Context, opts *Options, alarmID string, enabled bool) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	if err := client.SetAlarmEnabled(ctx, alarmID, enabled); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm toggled", "alarm_id", alarmID, "enabled", enabled)

	return nil
}

// List prints the alarm set and the ringing slot.
func List(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	resp, err := client.ListAlarms(ctx)
	if err != nil {
		return err
	}

	if len(resp.GetAlarms()) == 0 {
		logger.Info(ctx, "No alarms set")
	}

	for _, a := range resp.GetAlarms() {
		logger.InfoKV(ctx, "Alarm",
			"alarm_id", a.GetId(),
			"time", fmt.Sprintf("%02d:%02d", a.GetHour(), a.GetMinute()),
			"label", a.GetLabel(),
			"enabled", a.GetEnabled(),
			"kind", a.GetKind())
	}

	if ringing := resp.GetRinging(); ringing != nil {
		logger.InfoKV(ctx, "Currently ringing",
			"alarm_id", ringing.GetAlarmId(),
			"fired_at", ringing.GetFiredAt().AsTime().Format(time.RFC3339))
	}

	return nil
}

// Dismiss stops the ringing alarm; a no-op while idle.
func Dismiss(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	if err := client.Dismiss(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Dismiss sent")

	return nil
}

// Cancel stops the ring only if the id matches the ringing alarm.
func Cancel(ctx context.Context, opts *Options, alarmID string) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	if err := client.CancelRinging(ctx, alarmID); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Cancel sent", "alarm_id", alarmID)

	return nil
}

// Snooze dismisses the ring and schedules a one-shot alarm minutes ahead.
func Snooze(ctx context.Context, opts *Options, minutes int) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	resp, err := client.Snooze(ctx, minutes)
	if err != nil {
		return err
	}

	a := resp.GetAlarm()
	logger.InfoKV(ctx, "Snoozed",
		"alarm_id", a.GetId(), "time", fmt.Sprintf("%02d:%02d", a.GetHour(), a.GetMinute()))

	return nil
}

// Test schedules a throwaway one-shot alarm delaySeconds ahead.
func Test(ctx context.Context, opts *Options, delaySeconds int64) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	resp, err := client.TestAlarm(ctx, delaySeconds)
	if err != nil {
		return err
	}

	a := resp.GetAlarm()
	logger.InfoKV(ctx, "Test alarm scheduled",
		"alarm_id", a.GetId(), "time", fmt.Sprintf("%02d:%02d", a.GetHour(), a.GetMinute()))

	return nil
}

// Status prints the scheduler status summary once.
func Status(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	return printStatus(ctx, client)
}

// Watch polls the scheduler status until the context is canceled.
func Watch(ctx context.Context, opts *Options, interval time.Duration) error {
	ctx = logger.WithName(ctx, "alarmctl")

	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	client, err := connect(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Watching scheduler status", "interval", interval.String())

	// Setup polling ticker with fixed interval.
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			if err := printStatus(ctx, client); err != nil {
				logger.ErrorKV(ctx, "Status check failed", "error", err)
			}
		}
	}
}

// printStatus fetches and logs a single status snapshot.
func printStatus(ctx context.Context, client *common.Client) error {
	st, err := client.GetStatus(ctx)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Scheduler status",
		"alarm_count", st.GetAlarmCount(),
		"exact_alarm_permission", st.GetExactAlarmPermission(),
		"ringing", formatRinging(st.GetRinging()))

	return nil
}

// formatRinging renders the ringing slot for log output.
func formatRinging(r *pb.RingingInfo) string {
	if r == nil {
		return "idle"
	}

	return fmt.Sprintf("%s since %s", r.GetAlarmId(), r.GetFiredAt().AsTime().Format(time.RFC3339))
}
