package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-unlock/internal/adapter"
	"github.com/MKhiriev/go-pass-unlock/internal/client"
	"github.com/MKhiriev/go-pass-unlock/internal/config"
	"github.com/MKhiriev/go-pass-unlock/internal/crypto"
	"github.com/MKhiriev/go-pass-unlock/internal/logger"
	"github.com/MKhiriev/go-pass-unlock/internal/service"
	"github.com/MKhiriev/go-pass-unlock/internal/store"
	"github.com/MKhiriev/go-pass-unlock/internal/tui"
	"github.com/MKhiriev/go-pass-unlock/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("go-pass-unlock")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, crypto.NewKeyChainService(cfg.Crypto), crypto.NewSRPFactory(), log)

	ui, err := tui.New(services, storages.SessionRepository, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, storages.SessionRepository, ui, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("client started")

	if code := exitCode(app.Run(ctx), log, os.Stderr); code != 0 {
		storages.Close()
		os.Exit(code)
	}
}

// exitCode reports a run error and maps it to the process exit code. Login
// failures were already logged and shown by the attempt that produced them.
func exitCode(err error, log *logger.Logger, stderr io.Writer) int {
	if err == nil || errors.Is(err, tui.ErrUserQuit) {
		return 0
	}

	var authErr *service.AuthError
	if errors.As(err, &authErr) {
		return 1
	}

	fmt.Fprintln(stderr, err)
	log.Error().Err(err).Msg("client run error")
	return 1
}
