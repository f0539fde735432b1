package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"booking_insights/internal/adapters/observability"
	"booking_insights/internal/domain"
)

// Source reads booking records from the bookings table. It satisfies the
// same RecordSource port as the CSV loader, so the API can be pointed at
// either via config.
type Source struct{ db *sql.DB }

func New(db *sql.DB) *Source { return &Source{db: db} }

func (s *Source) Load(ctx context.Context) ([]domain.BookingRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectBookingsSQL)
	if err != nil {
		return nil, fmt.Errorf("select bookings: %w", err)
	}
	defer rows.Close()

	var records []domain.BookingRecord
	for rows.Next() {
		var r domain.BookingRecord
		if err := rows.Scan(
			&r.ID, &r.Country, &r.City, &r.Hotel,
			&r.Visitors, &r.Price, &r.Discount, &r.Margin,
			&r.Days, &r.Rooms,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	records = domain.Dedupe(records)
	observability.ObserveLoad("mysql", len(records))
	return records, nil
}

// SeedBookings bulk-upserts records, used to refresh the table from a CSV
// export and by the integration tests.
func (s *Source) SeedBookings(ctx context.Context, records []domain.BookingRecord) error {
	if len(records) == 0 {
		return nil
	}
	values := make([]string, 0, len(records))
	args := make([]any, 0, len(records)*10)
	for _, r := range records {
		values = append(values, "(?,?,?,?,?,?,?,?,?,?)")
		args = append(args,
			r.ID, r.Country, r.City, r.Hotel,
			r.Visitors, r.Price, r.Discount, r.Margin,
			r.Days, r.Rooms,
		)
	}
	sqlStr := insertBookingsPrefix + strings.Join(values, ",") + insertBookingsOnDup
	_, err := s.db.ExecContext(ctx, sqlStr, args...)
	return err
}

var _ domain.RecordSource = (*Source)(nil)
