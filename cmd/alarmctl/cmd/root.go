package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/autorise/internal/config"
	domain "github.com/oshokin/autorise/internal/domain/alarm"
	"github.com/oshokin/autorise/internal/service/ctl"
	"github.com/oshokin/autorise/internal/version"
)

var (
	// configPath stores the configuration file path.
	configPath string
	// serverAddress overrides the daemon address from config.
	serverAddress string

	// Flags for the create command.
	createLabel string
	createKind  string

	// snoozeMinutes is how far ahead a snoozed alarm is rescheduled.
	snoozeMinutes int

	// testDelaySeconds is how far ahead a test alarm is placed.
	testDelaySeconds int64

	// watchInterval is the polling interval for the watch command.
	watchInterval time.Duration

	// rootCmd represents the base command for the alarmctl CLI.
	rootCmd = &cobra.Command{
		Use:   "alarmctl",
		Short: "Control the wake-alarm scheduler daemon.",
		Long: `Command-line client for the wake-alarm scheduler.

Creates, deletes, enables and disables alarms, dismisses or snoozes the
ringing one, schedules test alarms and inspects scheduler status over gRPC.
Server address can be provided via --server or loaded from configuration file.`,
	}
)

// parseTimePart parses a clock component and checks its upper bound.
func parseTimePart(raw string, maxValue int) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid time component %q: %w", raw, err)
	}

	if value < 0 || value > maxValue {
		return 0, fmt.Errorf("time component %d is out of range [0, %d]", value, maxValue)
	}

	return value, nil
}

// opts builds the shared service options from global flags.
func opts() *ctl.Options {
	return &ctl.Options{
		ConfigPath:    configPath,
		ServerAddress: serverAddress,
	}
}

// signalContext returns a context canceled on SIGTERM/SIGINT.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

// Execute runs the alarmctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits,funlen // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&serverAddress, "server", "a", "", "scheduler daemon address override")

	createCmd := &cobra.Command{
		Use:   "create <hour> <minute>",
		Short: "Create a new alarm at the given 24-hour time.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			hour, err := parseTimePart(args[0], 23)
			if err != nil {
				return err
			}

			minute, err := parseTimePart(args[1], 59)
			if err != nil {
				return err
			}

			return ctl.Create(ctx, opts(), hour, minute, createLabel, createKind)
		},
	}
	createCmd.Flags().StringVarP(&createLabel, "label", "l", "Wake up", "alarm label")
	createCmd.Flags().StringVarP(&createKind, "kind", "k", string(domain.KindRecurring),
		"alarm kind: recurring or one-shot")

	deleteCmd := &cobra.Command{
		Use:   "delete <alarm-id>",
		Short: "Delete an alarm. Deleting an unknown id is a no-op.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.Delete(ctx, opts(), args[0])
		},
	}

	enableCmd := &cobra.Command{
		Use:   "enable <alarm-id>",
		Short: "Enable an alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.SetEnabled(ctx, opts(), args[0], true)
		},
	}

	disableCmd := &cobra.Command{
		Use:   "disable <alarm-id>",
		Short: "Disable an alarm without deleting it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.SetEnabled(ctx, opts(), args[0], false)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List alarms and the ringing slot.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.List(ctx, opts())
		},
	}

	dismissCmd := &cobra.Command{
		Use:   "dismiss",
		Short: "Dismiss the ringing alarm. A no-op while idle.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.Dismiss(ctx, opts())
		},
	}

	cancelCmd := &cobra.Command{
		Use:   "cancel <alarm-id>",
		Short: "Cancel the ring only if the id matches the ringing alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.Cancel(ctx, opts(), args[0])
		},
	}

	snoozeCmd := &cobra.Command{
		Use:   "snooze",
		Short: "Dismiss the ringing alarm and re-ring a few minutes later.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.Snooze(ctx, opts(), snoozeMinutes)
		},
	}
	snoozeCmd.Flags().IntVarP(&snoozeMinutes, "minutes", "m", 5, "minutes until the snoozed alarm rings again")

	testCmd := &cobra.Command{
		Use:   "test",
		Short: "Schedule a throwaway alarm a few seconds ahead.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.Test(ctx, opts(), testDelaySeconds)
		},
	}
	testCmd.Flags().Int64VarP(&testDelaySeconds, "delay", "d", 10, "seconds until the test alarm rings")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Print the scheduler status once.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.Status(ctx, opts())
		},
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll and print the scheduler status until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			return ctl.Watch(ctx, opts(), watchInterval)
		},
	}
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", ctl.DefaultWatchInterval, "polling interval")

	rootCmd.AddCommand(createCmd, deleteCmd, enableCmd, disableCmd, listCmd,
		dismissCmd, cancelCmd, snoozeCmd, testCmd, statusCmd, watchCmd)
}
