package domain

import "context"

// RecordSource supplies validated, deduplicated booking records.
// An empty (but well-formed) dataset loads as an empty slice, not an error;
// every query has a defined sentinel result for it.
// Implementations own all resource handling (file handles, connections);
// no resource outlives a Load call.
type RecordSource interface {
	Load(ctx context.Context) ([]BookingRecord, error)
}

// Cache is the report-result cache port.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ReportQueries is the contract the presentation layer consumes.
type ReportQueries interface {
	TopCountry(ctx context.Context) CountryReport
	MostEconomical(ctx context.Context) HotelReport
	MostProfitable(ctx context.Context) HotelReport
}
