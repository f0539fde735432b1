package analytics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"booking_insights/internal/adapters/observability"
	"booking_insights/internal/domain"
)

// ReportService binds the three queries to a fixed record collection and
// fronts them with the result cache. Queries are pure over the snapshot they
// read; Swap replaces the snapshot atomically and bumps the cache version so
// stale cached reports are never served.
type ReportService struct {
	mu       sync.RWMutex
	records  []domain.BookingRecord
	version  uint64
	cache    domain.Cache // nil disables caching (cmd/report)
	cacheTTL time.Duration
}

func NewReportService(records []domain.BookingRecord, c domain.Cache, ttl time.Duration) *ReportService {
	return &ReportService{records: records, cache: c, cacheTTL: ttl}
}

// Swap replaces the record collection, e.g. after an admin reload.
func (s *ReportService) Swap(records []domain.BookingRecord) {
	s.mu.Lock()
	s.records = records
	s.version++
	s.mu.Unlock()
}

// Len reports the current dataset size.
func (s *ReportService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *ReportService) snapshot() ([]domain.BookingRecord, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records, s.version
}

func (s *ReportService) TopCountry(ctx context.Context) domain.CountryReport {
	recs, ver := s.snapshot()
	key := fmt.Sprintf("report:top-country:v%d", ver)

	var out domain.CountryReport
	if s.cached(ctx, key, &out) {
		return out
	}
	start := time.Now()
	out = TopCountry(recs)
	observability.ObserveQuery("top_country", time.Since(start))
	s.store(ctx, key, out)
	return out
}

func (s *ReportService) MostEconomical(ctx context.Context) domain.HotelReport {
	recs, ver := s.snapshot()
	key := fmt.Sprintf("report:most-economical:v%d", ver)

	var out domain.HotelReport
	if s.cached(ctx, key, &out) {
		return out
	}
	start := time.Now()
	out = MostEconomical(recs)
	observability.ObserveQuery("most_economical", time.Since(start))
	s.store(ctx, key, out)
	return out
}

func (s *ReportService) MostProfitable(ctx context.Context) domain.HotelReport {
	recs, ver := s.snapshot()
	key := fmt.Sprintf("report:most-profitable:v%d", ver)

	var out domain.HotelReport
	if s.cached(ctx, key, &out) {
		return out
	}
	start := time.Now()
	out = MostProfitable(recs)
	observability.ObserveQuery("most_profitable", time.Since(start))
	s.store(ctx, key, out)
	return out
}

// Report runs all three queries over the same snapshot.
func (s *ReportService) Report(ctx context.Context) domain.Report {
	return domain.Report{
		TopCountry:     s.TopCountry(ctx),
		MostEconomical: s.MostEconomical(ctx),
		MostProfitable: s.MostProfitable(ctx),
	}
}

func (s *ReportService) cached(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, _ := s.cache.Get(ctx, key, dst)
	return ok
}

func (s *ReportService) store(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
}

var _ domain.ReportQueries = (*ReportService)(nil)
