package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sync-keeper/internal/client"
	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("go-sync-client", logger.FileOptions{
		Path:       cfg.Log.FilePath,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn().Err(err).Msg("ignoring log level")
	}
	log.Info().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).BuildVersion()).Msg("starting client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx, cfg.Command, os.Stdout)
	if err = app.Close(); err != nil {
		log.Err(err).Msg("error closing local storage")
	}

	if errors.Is(runErr, client.ErrNoCommand) {
		fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		fmt.Println(app.Usage())
		return
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		if errors.Is(runErr, client.ErrUnknownCommand) || errors.Is(runErr, client.ErrWrongArguments) {
			fmt.Fprintln(os.Stderr, app.Usage())
		}
		os.Exit(1)
	}
}
