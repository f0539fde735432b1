package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"booking_insights/internal/adapters/observability"
	"booking_insights/internal/domain"
)

// ErrMissingHeader marks a file whose header row lacks a required column.
// A missing header fails the whole load; a malformed value only drops its row.
var ErrMissingHeader = errors.New("csvsource: missing header")

// Logical column names the loader resolves against the header row,
// case-insensitively. Column positions are free to vary between files.
const (
	colID       = "Booking ID"
	colCountry  = "Destination Country"
	colCity     = "Destination City"
	colHotel    = "Hotel Name"
	colVisitors = "Visitors"
	colPrice    = "Booking Price"
	colDiscount = "Discount"
	colMargin   = "Profit Margin"
	colDays     = "Days"
	colRooms    = "Rooms"
)

var requiredColumns = []string{
	colID, colCountry, colCity, colHotel, colVisitors,
	colPrice, colDiscount, colMargin, colDays, colRooms,
}

// Loader reads booking records from a CSV file. The file handle is scoped
// to a single Load call and closed on every path.
type Loader struct{ path string }

func New(path string) *Loader { return &Loader{path: path} }

func (l *Loader) Load(ctx context.Context) ([]domain.BookingRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row width validated against the header map below
	r.TrimLeadingSpace = true

	head, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: file has no header row", ErrMissingHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := resolveColumns(head)
	if err != nil {
		return nil, err
	}

	var records []domain.BookingRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			observability.ObserveDrop("csv", "malformed")
			log.Debug().Err(err).Msg("csv row unreadable, dropped")
			continue
		}
		rec, err := parseRow(row, idx)
		if err != nil {
			observability.ObserveDrop("csv", "malformed")
			log.Debug().Err(err).Msg("csv row rejected, dropped")
			continue
		}
		records = append(records, rec)
	}

	before := len(records)
	records = domain.Dedupe(records)
	for i := len(records); i < before; i++ {
		observability.ObserveDrop("csv", "duplicate")
	}
	observability.ObserveLoad("csv", len(records))
	return records, nil
}

// resolveColumns maps each logical field name to its column position,
// resolved once per file.
func resolveColumns(head []string) (map[string]int, error) {
	byName := make(map[string]int, len(head))
	for i, h := range head {
		byName[strings.ToLower(strings.TrimSpace(h))] = i
	}
	idx := make(map[string]int, len(requiredColumns))
	for _, c := range requiredColumns {
		pos, ok := byName[strings.ToLower(c)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingHeader, c)
		}
		idx[c] = pos
	}
	return idx, nil
}

func parseRow(row []string, idx map[string]int) (domain.BookingRecord, error) {
	field := func(c string) (string, error) {
		pos := idx[c]
		if pos >= len(row) {
			return "", fmt.Errorf("row too short for %q", c)
		}
		v := strings.TrimSpace(row[pos])
		if v == "" {
			return "", fmt.Errorf("empty %q", c)
		}
		return v, nil
	}

	var rec domain.BookingRecord
	var err error
	if rec.ID, err = field(colID); err != nil {
		return rec, err
	}
	if rec.Country, err = field(colCountry); err != nil {
		return rec, err
	}
	if rec.City, err = field(colCity); err != nil {
		return rec, err
	}
	if rec.Hotel, err = field(colHotel); err != nil {
		return rec, err
	}
	if rec.Visitors, err = intField(field, colVisitors, 0); err != nil {
		return rec, err
	}
	if rec.Price, err = floatField(field, colPrice); err != nil {
		return rec, err
	}
	if rec.Price < 0 {
		return rec, fmt.Errorf("negative %q", colPrice)
	}
	if rec.Discount, err = percentField(field, colDiscount); err != nil {
		return rec, err
	}
	if rec.Margin, err = percentField(field, colMargin); err != nil {
		return rec, err
	}
	if rec.Days, err = intField(field, colDays, 1); err != nil {
		return rec, err
	}
	if rec.Rooms, err = intField(field, colRooms, 1); err != nil {
		return rec, err
	}
	return rec, nil
}

func intField(field func(string) (string, error), c string, min int) (int, error) {
	s, err := field(c)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", c, err)
	}
	if n < min {
		return 0, fmt.Errorf("%q below %d", c, min)
	}
	return n, nil
}

func floatField(field func(string) (string, error), c string) (float64, error) {
	s, err := field(c)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", c, err)
	}
	return v, nil
}

// percentField parses "12%" as 0.12; a bare numeric is taken as an
// already-scaled fraction.
func percentField(field func(string) (string, error), c string) (float64, error) {
	s, err := field(c)
	if err != nil {
		return 0, err
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", c, err)
		}
		return v / 100, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", c, err)
	}
	return v, nil
}

var _ domain.RecordSource = (*Loader)(nil)
