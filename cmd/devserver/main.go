// Command devserver serves the fixture catalog and auth status to the
// local web app.
package main

import (
	"context"
	"net/http"

	"github.com/newbeeR2020/lockerroom_seed/internal/authprobe"
	"github.com/newbeeR2020/lockerroom_seed/internal/config"
	"github.com/newbeeR2020/lockerroom_seed/internal/devserver"
	"github.com/newbeeR2020/lockerroom_seed/internal/firebaseapp"
	"github.com/newbeeR2020/lockerroom_seed/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log := logging.New("devserver", cfg.AppEnv)
	ctx := context.Background()

	app, err := firebaseapp.New(ctx, firebaseapp.Settings{
		ProjectID:       cfg.ProjectID,
		CredentialsFile: cfg.CredentialsFile,
	})
	if err != nil {
		config.Exitf("init error: %v", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		config.Exitf("auth client: %v", err)
	}
	probe := authprobe.New(client, log)
	probe.Key = cfg.AuthProbeKey

	srv := &devserver.Server{Probe: probe, WebOrigin: cfg.WebOrigin, Log: log}

	log.Info().Msgf("listen :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv.Handler()); err != nil {
		config.Exitf("listen: %v", err)
	}
}
