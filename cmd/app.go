package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/trivial-gratitude-journal/internal/config"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/journal"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/logging"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/storage"
	"github.com/Tiliavir/trivial-gratitude-journal/internal/timecalc"
)

// appContext is what every subcommand runs against. It is built once per
// invocation by the root command.
type appContext struct {
	cfg   config.Config
	log   logging.Logger
	loc   *time.Location
	slot  storage.Slot
	store *journal.Store
}

var app *appContext

// now is the clock used by the CLI; tests may pin it.
var now = time.Now

func openApp(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	// A previous command that failed never reached closeApp.
	if err := closeApp(cmd, args); err != nil {
		return err
	}

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	home := rootHome
	if home == "" {
		h, err := config.HomeDir()
		if err != nil {
			return err
		}
		home = h
	}

	cfg, err := config.Load(home)
	if err != nil {
		return err
	}
	if rootBackend != "" {
		cfg.Storage.Backend = rootBackend
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log := logging.New(cmd.ErrOrStderr(), rootVerbose).With("backend", cfg.Storage.Backend)
	loc, err := timecalc.Location(cfg.Journal.Timezone)
	if err != nil {
		return err
	}

	slot, err := openSlot(ctx, cfg, home)
	if err != nil {
		return err
	}
	log.Debug(ctx, "slot opened", "home", home, "key", cfg.Storage.Key)

	app = &appContext{
		cfg:  cfg,
		log:  log,
		loc:  loc,
		slot: slot,
		store: journal.Open(ctx, slot,
			journal.WithKey(cfg.Storage.Key),
			journal.WithLogger(log),
			journal.WithClock(now),
			journal.WithLocation(loc),
			journal.WithDefaultMood(cfg.Journal.DefaultMood),
		),
	}
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	defer func() { app = nil }()
	if c, ok := app.slot.(storage.Closer); ok {
		return c.Close()
	}
	return nil
}

func openSlot(ctx context.Context, cfg config.Config, home string) (storage.Slot, error) {
	switch cfg.Storage.Backend {
	case storage.BackendSQLite:
		return storage.OpenSQLiteSlot(ctx, cfg.Storage.SQLitePath)
	case storage.BackendS3:
		s3 := cfg.Storage.S3
		return storage.NewS3Slot(ctx, storage.S3Options{
			Bucket:          s3.Bucket,
			Region:          s3.Region,
			Endpoint:        s3.Endpoint,
			Prefix:          s3.Prefix,
			AccessKeyID:     s3.AccessKeyID,
			SecretAccessKey: s3.SecretAccessKey,
		})
	case storage.BackendMemory:
		return storage.NewMemorySlot(), nil
	case storage.BackendFile:
		return storage.NewFileSlot(home), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
