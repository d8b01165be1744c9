package timezone_test

import (
	"resort/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useLocation(t *testing.T, name string) {
	t.Helper()

	previous := timezone.GetLocation().String()

	require.NoError(t, timezone.SetLocation(name))
	t.Cleanup(func() { _ = timezone.SetLocation(previous) })
}

func TestNow_UsesConfiguredLocation(t *testing.T) {
	useLocation(t, "Asia/Makassar")

	assert.Equal(t, "Asia/Makassar", timezone.Now().Location().String())
}

func TestParse_ReadsWallClockInLocation(t *testing.T) {
	useLocation(t, "Asia/Makassar")

	checkIn, err := timezone.Parse(time.DateOnly, "2026-05-01")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 30, 16, 0, 0, 0, time.UTC), checkIn.UTC())
}

func TestFormat_RendersInLocation(t *testing.T) {
	useLocation(t, "Asia/Makassar")

	stamp := time.Date(2026, 5, 1, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-05-02 06:30", timezone.Format(stamp, "2006-01-02 15:04"))
	assert.Equal(t, stamp, timezone.ToAppTime(stamp).UTC())
}

func TestSetLocation_RejectsUnknownName(t *testing.T) {
	useLocation(t, "UTC")

	require.Error(t, timezone.SetLocation("Mars/Olympus"))
	assert.Equal(t, "UTC", timezone.GetLocation().String())
}
