package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/petershoe2005/GatherU-sub000/internal/models"
)

func TestParseTimeLeft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Duration
	}{
		{in: "", want: 0},
		{in: "Ended", want: 0},
		{in: "soon", want: 0},
		{in: "2d 4h 10m", want: 52*time.Hour + 10*time.Minute},
		{in: "45m", want: 45 * time.Minute},
		{in: "3H", want: 3 * time.Hour},
		{in: "1 d", want: 24 * time.Hour},
		{in: "5h left", want: 5 * time.Hour},
		{in: "99999999999d", want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ParseTimeLeft(tt.in))
		})
	}
}

func TestRemaining(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, 2*time.Hour, Remaining(models.Listing{EndsAt: now.Add(2 * time.Hour), TimeLeft: "5d"}, now),
		"structured end time wins over text")
	require.Equal(t, -time.Hour, Remaining(models.Listing{EndsAt: now.Add(-time.Hour)}, now))
	require.Equal(t, 30*time.Minute, Remaining(models.Listing{TimeLeft: "30m"}, now))
	require.Zero(t, Remaining(models.Listing{}, now))
}
