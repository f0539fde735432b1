package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"booking_insights/internal/adapters/csvsource"
	"booking_insights/internal/adapters/observability"
	"booking_insights/internal/analytics"
	"booking_insights/internal/domain"
	"booking_insights/internal/shared"
	mysqlsrc "booking_insights/internal/storage/mysql"
)

func main() {
	csvPath := flag.String("csv", "", "CSV file to analyze (overrides CSV_PATH)")
	flag.Parse()

	ctx := context.Background()
	cfg := shared.Load()
	if *csvPath != "" {
		cfg.Source = "csv"
		cfg.CSVPath = *csvPath
	}

	log.Logger = observability.NewLogger(cfg.AppEnv)

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
		source = mysqlsrc.New(db)
	default:
		source = csvsource.New(cfg.CSVPath)
	}

	start := time.Now()
	records, err := source.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Source).Msg("dataset load failed")
	}
	log.Info().
		Int("records", len(records)).
		Dur("took", time.Since(start)).
		Str("source", cfg.Source).
		Msg("dataset loaded")

	// The three queries are pure over the shared read-only record set, so
	// they can run in parallel.
	reports := analytics.NewReportService(records, nil, 0)
	var (
		country    domain.CountryReport
		economical domain.HotelReport
		profitable domain.HotelReport
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { country = reports.TopCountry(gctx); return nil })
	g.Go(func() error { economical = reports.MostEconomical(gctx); return nil })
	g.Go(func() error { profitable = reports.MostProfitable(gctx); return nil })
	_ = g.Wait()

	fmt.Printf("Country with most bookings: %s (%d bookings)\n", country.Label, country.Bookings)
	fmt.Printf("Most economical hotel:      %s (score %.2f)\n", economical.Label, economical.Score)
	fmt.Printf("Most profitable hotel:      %s (score %.2f)\n", profitable.Label, profitable.Score)
}
