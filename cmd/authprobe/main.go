// Command authprobe checks that Firebase Authentication is reachable and
// enabled for the project. It reports and returns; it does not exit with
// the probe outcome.
package main

import (
	"context"
	"flag"

	"github.com/newbeeR2020/lockerroom_seed/internal/authprobe"
	"github.com/newbeeR2020/lockerroom_seed/internal/config"
	"github.com/newbeeR2020/lockerroom_seed/internal/firebaseapp"
	"github.com/newbeeR2020/lockerroom_seed/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	flag.StringVar(&cfg.ProjectID, "project", cfg.ProjectID, "Firebase project id")
	flag.StringVar(&cfg.AuthProbeKey, "key", cfg.AuthProbeKey, "uid to look up")
	flag.Parse()

	log := logging.New("authprobe", cfg.AppEnv)
	ctx := context.Background()

	// 1) App
	app, err := firebaseapp.New(ctx, firebaseapp.Settings{
		ProjectID:       cfg.ProjectID,
		CredentialsFile: cfg.CredentialsFile,
	})
	if err != nil {
		config.Exitf("✗ init error: %v", err)
	}

	// 2) Auth client
	client, err := app.Auth(ctx)
	if err != nil {
		config.Exitf("✗ Firebase auth client failed: %v", err)
	}

	// 3) One lookup
	probe := authprobe.New(client, log)
	probe.Key = cfg.AuthProbeKey
	rep := probe.Run(ctx)
	if rep.Status == authprobe.StatusEnabled {
		log.Info().Msg("✓ Firebase Auth is enabled and configured!")
		return
	}
	log.Warn().Str("console", cfg.ConsoleAuthURL()).Msg("enable Authentication in the Firebase Console")
}
