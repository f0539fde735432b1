package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"booking_insights/internal/adapters/csvsource"
	server "booking_insights/internal/adapters/http_server"
	"booking_insights/internal/adapters/observability"
	redisad "booking_insights/internal/adapters/redis"
	"booking_insights/internal/analytics"
	"booking_insights/internal/domain"
	"booking_insights/internal/shared"
	mysqlsrc "booking_insights/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// record source
	var source domain.RecordSource
	switch cfg.Source {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		source = mysqlsrc.New(db)
	default:
		source = csvsource.New(cfg.CSVPath)
	}

	records, err := source.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Source).Msg("initial dataset load failed")
	}
	log.Info().Int("records", len(records)).Str("source", cfg.Source).Msg("dataset loaded")

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cache.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("redis ping failed")
	}
	reports := analytics.NewReportService(records, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		R:           reports,
		Source:      source,
		ReloadLimit: rate.NewLimiter(rate.Limit(cfg.ReloadRPS), 1),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
