package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields, format validations and defaulting.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing socket.
	settings := new(Config)

	err := Validate(settings)
	require.Error(t, err)

	// Bad socket.
	settings = &Config{
		ServerAddress: "bad:address",
	}

	err = Validate(settings)
	require.Error(t, err)

	// Okay, defaults filled in.
	settings = &Config{
		ServerAddress: "127.0.0.1:0",
	}

	err = Validate(settings)
	require.NoError(t, err)
	require.Equal(t, DefaultTimeout, settings.Timeout)
	require.Equal(t, DefaultStateFilename, settings.StateFile)
	require.Equal(t, DefaultTickInterval, settings.TickInterval)

	// Tick interval above a minute breaks the firing guarantee.
	settings = &Config{
		ServerAddress: "127.0.0.1:0",
		TickInterval:  2 * time.Minute,
	}

	err = Validate(settings)
	require.Error(t, err)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ServerAddress: "127.0.0.1:50051",
		StateFile:     "alarms.json",
		TickInterval:  time.Second,
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings.ServerAddress, loaded.ServerAddress)
	require.Equal(t, settings.StateFile, loaded.StateFile)
	require.Equal(t, settings.TickInterval, loaded.TickInterval)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}
