package main

import (
	"fmt"
	"log/slog"
	"os"

	"stillness/internal/catalog"
	"stillness/internal/cli"
	"stillness/internal/cli/formatter"
	"stillness/internal/config"
	"stillness/internal/repository"
	"stillness/internal/service"
	"stillness/internal/storage"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables win.
	_ = godotenv.Load(".env")

	cfg, err := config.New()
	if err != nil {
		return err
	}

	if cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		formatter.DisableColors()
	}

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		return err
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		// A broken user catalog falls back to the built-in one.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	tracker := service.NewTrackerService(
		repository.NewKVSessionRepo(store),
		repository.NewKVStatsRepo(store),
		repository.NewKVAchievementRepo(store),
		service.WithLogger(logger),
	)

	app := &cli.App{
		Tracker: tracker,
		Catalog: cat,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
