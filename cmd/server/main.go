package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pr-poehali-dev/employee-monitoring-app/internal/config"
	"github.com/pr-poehali-dev/employee-monitoring-app/internal/db"
	"github.com/pr-poehali-dev/employee-monitoring-app/internal/httpapi"
	"github.com/pr-poehali-dev/employee-monitoring-app/internal/service"
)

func healthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func main() {
	// -- Logger --
	logger := log.New(os.Stdout, "", log.LstdFlags)

	// -- Configs preload --
	if err := godotenv.Load(); err != nil {
		logger.Printf(".env not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	// -- Connect to DB --
	database, err := db.Connect(cfg)
	if err != nil {
		logger.Fatalf("database connection error: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		logger.Fatalf("database migration error: %v", err)
	}

	if cfg.SeedDev {
		if err := db.SeedDev(database); err != nil {
			logger.Fatalf("database seed error: %v", err)
		}
	}

	accessService := service.NewAccessService(database, cfg.PrimaryCheckpointID)
	reportService := service.NewReportService(database)

	accessHandler := httpapi.NewAccessHandler(accessService, logger)
	reportHandler := httpapi.NewReportHandler(reportService, logger)

	// -- Router --
	mux := http.NewServeMux()
	mux.Handle("/api/access", accessHandler)
	mux.Handle("/api/reports", reportHandler)
	mux.HandleFunc("/healthcheck", healthcheck)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           httpapi.RequestLogging(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// -- Startup --
	logger.Printf("starting server, listening to port %s...", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("server failed: %v", err)
	}
}
