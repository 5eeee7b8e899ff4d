package main

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-schema-gate/internal/config"
	"github.com/MKhiriev/go-schema-gate/internal/handler"
	"github.com/MKhiriev/go-schema-gate/internal/logger"
	"github.com/MKhiriev/go-schema-gate/internal/metrics"
	"github.com/MKhiriev/go-schema-gate/internal/schema"
	"github.com/MKhiriev/go-schema-gate/internal/server"
	"github.com/MKhiriev/go-schema-gate/internal/service"
	"github.com/MKhiriev/go-schema-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("schema-gate", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("schema-gate", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	endpoints, err := schema.Load(cfg.Schema.FilePath)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Schema.FilePath).Msg("error loading endpoint schemas")
	}

	var (
		observer       service.Observer
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		m, err := metrics.New()
		if err != nil {
			log.Fatal().Err(err).Msg("error registering metrics")
		}
		observer, metricsHandler = m, m.Handler()
	}

	services, err := service.NewServices(endpoints, *cfg, observer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, metricsHandler, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
