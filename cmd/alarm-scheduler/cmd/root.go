package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/autorise/internal/config"
	"github.com/oshokin/autorise/internal/service/daemon"
	"github.com/oshokin/autorise/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// stateFile path where the alarm set is persisted.
	stateFile string

	// rootCmd represents the base command for running the scheduler daemon.
	rootCmd = &cobra.Command{
		Use:   "alarm-scheduler [listen-address]",
		Short: "Run the wake-alarm scheduler daemon.",
		Long: `Starts the wake-alarm scheduler: a one-second tick loop that fires due
alarms at most once per minute, and a gRPC API for creating, deleting,
toggling, dismissing and snoozing them.

The daemon listens on the specified address or uses settings from the
configuration file. Only the port from server_addr config is used for
listening (e.g., :50051). Listen address can be provided as argument to
override config (e.g., :9090, 0.0.0.0:50051). The alarm set is persisted
to a JSON file and rehydrated on restart.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &daemon.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				StateFile:     stateFile,
			}

			return daemon.Run(ctx, options)
		},
	}
)

// Execute runs the alarm-scheduler CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&stateFile, "state-file", "s", config.DefaultStateFilename, "path to persist the alarm set")
}
