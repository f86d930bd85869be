package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketing-rollup-service/internal/config"
	eventsRepoPg "marketing-rollup-service/internal/events/adapters/postgres"
	rollupHttp "marketing-rollup-service/internal/rollup/adapters/http/fiber"
	rollupUsecase "marketing-rollup-service/internal/rollup/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "marketing-rollup-service/docs"
)

// @title Marketing Rollup Service
// @version 1.0
// @description Tenant-scoped metrics rollup engine for the marketing dashboard.
// @BasePath /
func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("config error", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Error("failed to open postgres", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Error("failed to ping postgres", slog.String("err", err.Error()))
		os.Exit(1)
	}

	// Event store adapter (read-only)
	eventStore := eventsRepoPg.NewEventStore(eventsRepoPg.NewSQLDB(db))

	// Rollup engine
	rollupUC := rollupUsecase.NewRollupUseCase(eventStore, rollupUsecase.Config{
		Location: cfg.BucketTZ,
		Ranges:   rollupUsecase.DefaultRanges(),
	})

	// Observability
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	httpMetrics := rollupHttp.NewHTTPMetrics(reg)

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(rollupHttp.RequestLogger(log))
	app.Use(httpMetrics.Middleware())

	rollupHttp.NewDashboardHandler(rollupUC).Register(app)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber stopped", slog.String("err", err.Error()))
		}
	}()

	log.Info("server started", slog.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("fiber shutdown error", slog.String("err", err.Error()))
	}

	log.Info("server exiting")
}
