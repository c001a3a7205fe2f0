package daemon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestResolveListenAddress covers override, port extraction and error cases.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("host.example.com:50051", "")
	require.NoError(t, err)
	require.Equal(t, ":50051", addr)

	addr, err = resolveListenAddress("host.example.com:50051", ":9090")
	require.NoError(t, err)
	require.Equal(t, ":9090", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port-here", "")
	require.Error(t, err)
}
