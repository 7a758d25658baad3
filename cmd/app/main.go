package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"orderservice/cmd"
	httpadapter "orderservice/internal/adapters/in/http"
	"orderservice/internal/adapters/out/postgres/orderrepo"
	"orderservice/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load(".env")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := cmd.ParseConfig()
	if err != nil {
		logger.Error("failed to parse configuration", "error", err)
		os.Exit(1)
	}

	db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(config, db)

	jobManager := jobs.NewJobManager(
		root.CreateProcessPendingOrdersCommandHandler(),
		config.SweepCron,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetAllOrdersQueryHandler(),
		logger,
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
