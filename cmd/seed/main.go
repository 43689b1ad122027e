// Command seed loads the sample users and reviews into the configured
// document store and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/newbeeR2020/lockerroom_seed/internal/config"
	"github.com/newbeeR2020/lockerroom_seed/internal/docstore"
	"github.com/newbeeR2020/lockerroom_seed/internal/docstore/firestorestore"
	"github.com/newbeeR2020/lockerroom_seed/internal/docstore/memstore"
	"github.com/newbeeR2020/lockerroom_seed/internal/docstore/sqlstore"
	"github.com/newbeeR2020/lockerroom_seed/internal/firebaseapp"
	"github.com/newbeeR2020/lockerroom_seed/internal/fixtures"
	"github.com/newbeeR2020/lockerroom_seed/internal/logging"
	"github.com/newbeeR2020/lockerroom_seed/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		config.Exitf("❌ Error initializing test data: %v", err)
	}
	// nothing left to do; exit explicitly like a finished batch job
	os.Exit(0)
}

// run seeds the configured store. Failures are logged before they are
// returned so they share the zerolog output with every status line.
func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var dryRun bool
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.StringVar(&cfg.StoreDriver, "driver", cfg.StoreDriver, "document store: firestore, mysql or sqlite")
	fs.StringVar(&cfg.DatabaseURL, "dsn", cfg.DatabaseURL, "database DSN for the mysql and sqlite drivers")
	fs.StringVar(&cfg.ProjectID, "project", cfg.ProjectID, "Firebase project id")
	fs.BoolVar(&dryRun, "dry-run", false, "write to an in-memory store instead")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := logging.NewWithWriter(out, "seed", cfg.AppEnv)

	store, closeStore, err := openStore(ctx, cfg, dryRun)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.StoreDriver).Msg("❌ open store")
		return err
	}
	defer closeStore()

	log.Info().Str("project", cfg.ProjectID).Str("driver", driverName(cfg, dryRun)).Msg("🚀 initializing test data for Locker Room Talk")
	if _, err := seed.New(store, log).Run(ctx, fixtures.Users(), fixtures.Reviews()); err != nil {
		log.Error().Err(err).Msg("❌ error initializing test data")
		return err
	}

	fmt.Fprintf(out, "\nEnable Authentication providers in the Firebase Console:\n   %s\n", cfg.ConsoleAuthURL())
	return nil
}

func driverName(cfg config.Config, dryRun bool) string {
	if dryRun {
		return "memory"
	}
	return cfg.StoreDriver
}

// openStore builds the one store handle the loader writes through.
func openStore(ctx context.Context, cfg config.Config, dryRun bool) (docstore.Store, func(), error) {
	if dryRun {
		return memstore.New(), func() {}, nil
	}
	switch cfg.StoreDriver {
	case "firestore":
		app, err := firebaseapp.New(ctx, firebaseapp.Settings{
			ProjectID:       cfg.ProjectID,
			CredentialsFile: cfg.CredentialsFile,
		})
		if err != nil {
			return nil, nil, err
		}
		s, err := firestorestore.New(ctx, app)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case "mysql", "sqlite":
		s, err := sqlstore.Open(ctx, cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
