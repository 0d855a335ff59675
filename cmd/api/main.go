package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/openfreight/linehaul/internal/config"
	"github.com/openfreight/linehaul/internal/database"
	"github.com/openfreight/linehaul/internal/deduction"
	deductionStore "github.com/openfreight/linehaul/internal/deduction/store"
	"github.com/openfreight/linehaul/internal/driver"
	driverStore "github.com/openfreight/linehaul/internal/driver/store"
	"github.com/openfreight/linehaul/internal/export"
	linehaulHttp "github.com/openfreight/linehaul/internal/http"
	exportHandler "github.com/openfreight/linehaul/internal/http/export"
	settlementHandler "github.com/openfreight/linehaul/internal/http/settlement"
	"github.com/openfreight/linehaul/internal/load"
	loadStore "github.com/openfreight/linehaul/internal/load/store"
	"github.com/openfreight/linehaul/internal/settlement"
	settlementStore "github.com/openfreight/linehaul/internal/settlement/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		loadService       = load.NewService(loadStore.New(db))
		driverService     = driver.NewService(driverStore.New(db))
		deductionService  = deduction.NewService(deductionStore.New(db))
		settlementService = settlement.NewService(
			settlementStore.New(db),
			loadService,
			driverService,
			deductionService,
			settlement.NewLogNotifier(),
		)
		exportService = export.NewService(settlementService, driverService)
	)

	var (
		settlementH = settlementHandler.NewHandler(settlementService, loadService, cfg.Batch.MaxDrivers)
		exportH     = exportHandler.NewHandler(exportService)
	)

	router := linehaulHttp.New(cfg.Auth.JWTSecret, settlementH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
