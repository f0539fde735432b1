package analytics

import "booking_insights/internal/domain"

// GroupByHotel partitions records by (hotel, city, country). Map iteration
// order is unspecified; downstream reductions must stay order-independent.
func GroupByHotel(records []domain.BookingRecord) map[domain.HotelKey][]domain.BookingRecord {
	groups := make(map[domain.HotelKey][]domain.BookingRecord)
	for _, r := range records {
		k := r.Key()
		groups[k] = append(groups[k], r)
	}
	return groups
}

// GroupByCountry partitions records by destination country.
func GroupByCountry(records []domain.BookingRecord) map[string][]domain.BookingRecord {
	groups := make(map[string][]domain.BookingRecord)
	for _, r := range records {
		groups[r.Country] = append(groups[r.Country], r)
	}
	return groups
}
