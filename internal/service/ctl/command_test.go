package ctl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/oshokin/autorise/internal/pb/v1"
)

// TestFormatRinging covers the idle and occupied renderings.
func TestFormatRinging(t *testing.T) {
	t.Parallel()

	require.Equal(t, "idle", formatRinging(nil))

	firedAt := time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC)
	got := formatRinging(&pb.RingingInfo{
		AlarmId: "a1",
		FiredAt: timestamppb.New(firedAt),
	})

	require.Contains(t, got, "a1")
	require.Contains(t, got, "2024-03-10T07:30:00Z")
}
