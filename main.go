package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/ledgerbook/backend/internal/config"
	"github.com/ledgerbook/backend/internal/models"
	"github.com/ledgerbook/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.Mode)

	output := io.Writer(os.Stdout)
	if cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	url, err := cfg.URL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Error reporting is only enabled with a DSN
	if cfg.SentryDSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.SentryEnvironment,
			Release:     fmt.Sprintf("ledgerbook-backend@%s", router.Version()),
		})
		if err != nil {
			log.Fatal().Msgf("Sentry initialization failed: %s", err)
		}
		defer sentry.Flush(2 * time.Second)

		log.Info().Str("environment", cfg.SentryEnvironment).Msg("Sentry")
	}

	// Create data directory
	err = os.MkdirAll(cfg.DataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database
	err = models.Connect(fmt.Sprintf("%s?_pragma=foreign_keys(1)", cfg.DatabasePath()))
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(url)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(r.Group(url.Path))

	if err := r.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Error().Msg(err.Error())
	}
}
