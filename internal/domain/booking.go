package domain

// BookingRecord is one validated, deduplicated booking row.
// Discount and Margin are fractions (0.12 == 12%) after parsing.
type BookingRecord struct {
	ID       string
	Country  string
	City     string
	Hotel    string
	Visitors int
	Price    float64
	Discount float64
	Margin   float64
	Days     int
	Rooms    int
}

// HotelKey identifies one hotel group. Field order is the grouping
// identity; display strings may reorder city/country.
type HotelKey struct {
	Hotel   string
	City    string
	Country string
}

// Key returns the hotel grouping key for a record.
func (r BookingRecord) Key() HotelKey {
	return HotelKey{Hotel: r.Hotel, City: r.City, Country: r.Country}
}

// CountryReport is the answer to "which country has the most bookings".
type CountryReport struct {
	Label    string `json:"label"`
	Bookings int    `json:"bookings"`
}

// HotelReport is a ranked-hotel answer with its composite score
// (0-100 nominal, not clamped).
type HotelReport struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Report bundles all three answers for the combined endpoint.
type Report struct {
	TopCountry     CountryReport `json:"topCountry"`
	MostEconomical HotelReport   `json:"mostEconomical"`
	MostProfitable HotelReport   `json:"mostProfitable"`
}

// Dedupe drops records that are structurally identical to an earlier one,
// preserving first-seen order. Sources apply it before handing records to
// the engine.
func Dedupe(records []BookingRecord) []BookingRecord {
	if len(records) == 0 {
		return records
	}
	seen := make(map[BookingRecord]struct{}, len(records))
	out := records[:0]
	for _, r := range records {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
