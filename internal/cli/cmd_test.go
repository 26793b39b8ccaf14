package cli

import (
	"context"
	"io"
	"testing"
	"time"

	"stillness/internal/catalog"
	"stillness/internal/domain"
	"stillness/internal/repository"
	"stillness/internal/service"
	"stillness/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, service.TrackerService) {
	t.Helper()
	store := storage.NewMemoryStore()
	tracker := service.NewTrackerService(
		repository.NewKVSessionRepo(store),
		repository.NewKVStatsRepo(store),
		repository.NewKVAchievementRepo(store),
	)
	return &App{Tracker: tracker, Catalog: catalog.Default()}, tracker
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestSessionLog_RecordsSession(t *testing.T) {
	app, tracker := newTestApp(t)

	err := execute(t, app, "session", "log", "--minutes", "15", "--mode", "evening", "--date", "2025-06-15")
	require.NoError(t, err)

	sessions := tracker.GetSessions(context.Background())
	require.Len(t, sessions, 1)
	assert.Equal(t, 900, sessions[0].DurationSeconds)
	assert.Equal(t, domain.ModeEvening, sessions[0].Mode)
}

func TestSessionLog_RejectsInvalidMode(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "session", "log", "--minutes", "10", "--mode", "midnight")
	assert.Error(t, err)
}

func TestSessionLog_RejectsNonPositiveMinutes(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "session", "log", "--minutes", "0")
	assert.Error(t, err)
}

func TestSessionLog_RejectsMalformedDate(t *testing.T) {
	app, _ := newTestApp(t)

	err := execute(t, app, "session", "log", "--minutes", "10", "--date", "15/06/2025")
	assert.Error(t, err)
}

func TestSessionLog_DefaultsDateToToday(t *testing.T) {
	app, tracker := newTestApp(t)

	require.NoError(t, execute(t, app, "session", "log", "--minutes", "10"))

	sessions := tracker.GetSessions(context.Background())
	require.Len(t, sessions, 1)
	assert.Equal(t, time.Now().Format(domain.DateLayout), sessions[0].Date)
}
