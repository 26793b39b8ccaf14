package analytics

import (
	"testing"
	"time"

	"stillness/internal/domain"
	"stillness/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyProgress_AlwaysSevenBuckets(t *testing.T) {
	progress := WeeklyProgress(nil, testNow)

	require.Len(t, progress, 7)
	for _, day := range progress {
		assert.Equal(t, 0, day.Minutes)
	}
}

func TestWeeklyProgress_AscendingWindow(t *testing.T) {
	progress := WeeklyProgress(nil, testNow)

	require.Len(t, progress, 7)
	assert.Equal(t, testutil.Day(testNow, -6), progress[0].Date)
	assert.Equal(t, testutil.Day(testNow, 0), progress[6].Date)
	for i := 1; i < len(progress); i++ {
		assert.Less(t, progress[i-1].Date, progress[i].Date)
	}
}

func TestWeeklyProgress_BucketsMinutes(t *testing.T) {
	sessions := []domain.Session{
		testutil.NewTestSession(testutil.Day(testNow, 0), testutil.WithDuration(600)),
		testutil.NewTestSession(testutil.Day(testNow, 0), testutil.WithDuration(300)),
		testutil.NewTestSession(testutil.Day(testNow, -6), testutil.WithDuration(1200)),
		// Outside the window.
		testutil.NewTestSession(testutil.Day(testNow, -7), testutil.WithDuration(6000)),
		testutil.NewTestSession(testutil.Day(testNow, 1), testutil.WithDuration(6000)),
	}

	progress := WeeklyProgress(sessions, testNow)

	require.Len(t, progress, 7)
	assert.Equal(t, 20, progress[0].Minutes)
	assert.Equal(t, 15, progress[6].Minutes)

	total := 0
	for _, day := range progress {
		total += day.Minutes
	}
	assert.Equal(t, 35, total, "only in-window sessions contribute")
}

func TestWeeklyProgress_RoundsPerBucketAtEnd(t *testing.T) {
	// Two 90-second sessions on one day sum to 3.0 minutes; rounding each
	// session first would give 2+2=4.
	sessions := []domain.Session{
		testutil.NewTestSession(testutil.Day(testNow, 0), testutil.WithDuration(90)),
		testutil.NewTestSession(testutil.Day(testNow, 0), testutil.WithDuration(90)),
		// A lone 90s session on another day rounds up on its own.
		testutil.NewTestSession(testutil.Day(testNow, -1), testutil.WithDuration(90)),
	}

	progress := WeeklyProgress(sessions, testNow)

	require.Len(t, progress, 7)
	assert.Equal(t, 3, progress[6].Minutes)
	assert.Equal(t, 2, progress[5].Minutes)
}

func TestWeeklyProgress_ReferenceTimeOfDayIrrelevant(t *testing.T) {
	lateEvening := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	earlyMorning := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)

	sessions := []domain.Session{
		testutil.NewTestSession("2025-06-15", testutil.WithDuration(600)),
	}

	assert.Equal(t, WeeklyProgress(sessions, lateEvening), WeeklyProgress(sessions, earlyMorning))
}
