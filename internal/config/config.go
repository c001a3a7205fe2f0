package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by the scheduler daemon and alarmctl.
type Config struct {
	// ServerAddress is the gRPC address of the scheduler daemon.
	ServerAddress string `yaml:"server_addr"`
	// StateFile is the path to the JSON file holding the persisted alarm set.
	StateFile string `yaml:"state_file"`
	// TickInterval is the evaluation period of the scheduler loop.
	// Must stay at or below one minute to preserve the firing guarantee.
	TickInterval time.Duration `yaml:"tick_interval"`
	// Timeout is the duration for RPC calls issued by alarmctl.
	Timeout time.Duration `yaml:"timeout"`
}

const (
	// DefaultConfigFilename is the default filename for scheduler settings.
	DefaultConfigFilename = "autorise-settings.yaml"

	// DefaultStateFilename is the default filename for the persisted alarm set.
	DefaultStateFilename = "autorise-alarms.json"

	// DefaultTickInterval is the nominal one-second evaluation period.
	DefaultTickInterval = time.Second

	// DefaultTimeout is the default duration for RPC calls.
	DefaultTimeout = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config and state files.
	DefaultFilePermissions = 0o600

	// maxTickInterval is the largest period that still guarantees every
	// minute is observed at least once.
	maxTickInterval = time.Minute
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
	// errTickIntervalTooLong is returned when the tick interval exceeds a minute.
	errTickIntervalTooLong = errors.New("tick interval must not exceed one minute")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and fills defaults.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	// Set default timeout if not specified.
	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	// Set default state file if not specified.
	if settings.StateFile == "" {
		settings.StateFile = DefaultStateFilename
	}

	// Set default tick interval if not specified.
	if settings.TickInterval <= 0 {
		settings.TickInterval = DefaultTickInterval
	}

	if settings.TickInterval > maxTickInterval {
		return errTickIntervalTooLong
	}

	return nil
}
