package analytics

import (
	"fmt"

	"booking_insights/internal/domain"
)

// Empty-input sentinels. These are defined results, not errors.
const (
	NoCountryLabel = "No data is found"
	NoHotelLabel   = "No Data"
)

// TopCountry returns the destination country with the most bookings and its
// count. Ties go to the lexicographically smaller country name so the result
// is stable across map iteration orders.
func TopCountry(records []domain.BookingRecord) domain.CountryReport {
	best := domain.CountryReport{Label: NoCountryLabel, Bookings: 0}
	for country, group := range GroupByCountry(records) {
		n := len(group)
		if n > best.Bookings || (n == best.Bookings && country < best.Label) {
			best = domain.CountryReport{Label: country, Bookings: n}
		}
	}
	return best
}

// hotelEconomics carries one hotel group's averaged metrics.
type hotelEconomics struct {
	key       domain.HotelKey
	unitPrice float64 // avg price / (rooms * days)
	discount  float64 // avg discount fraction
	margin    float64 // avg profit margin
}

// MostEconomical ranks hotels by a composite of normalized per-unit price,
// discount, and profit margin. Low price and low margin are rewarded
// (inverted axes), high discount is rewarded directly:
//
//	score = ((1-nPrice) + nDiscount + (1-nMargin)) * 100 / 3
//
// Degenerate-range defaults: price 0 (flat prices read as cheapest),
// discount 1 (flat discounts read as maximally favorable), margin 0.
// Zero rooms or days in a record yields a non-finite unit price that flows
// into the score unguarded; validating those fields is the source's job.
func MostEconomical(records []domain.BookingRecord) domain.HotelReport {
	groups := GroupByHotel(records)
	if len(groups) == 0 {
		return domain.HotelReport{Label: NoHotelLabel, Score: 0}
	}

	stats := make([]hotelEconomics, 0, len(groups))
	for key, group := range groups {
		var price, disc, margin float64
		for _, r := range group {
			price += r.Price / (float64(r.Rooms) * float64(r.Days))
			disc += r.Discount
			margin += r.Margin
		}
		n := float64(len(group))
		stats = append(stats, hotelEconomics{
			key:       key,
			unitPrice: price / n,
			discount:  disc / n,
			margin:    margin / n,
		})
	}

	minP, maxP := Range(stats, func(h hotelEconomics) float64 { return h.unitPrice })
	minD, maxD := Range(stats, func(h hotelEconomics) float64 { return h.discount })
	minM, maxM := Range(stats, func(h hotelEconomics) float64 { return h.margin })

	best := domain.HotelReport{Label: NoHotelLabel, Score: 0}
	found := false
	for _, h := range stats {
		nPrice := Normalize(h.unitPrice, minP, maxP, 0)
		nDisc := Normalize(h.discount, minD, maxD, 1)
		nMargin := Normalize(h.margin, minM, maxM, 0)
		score := ((1 - nPrice) + nDisc + (1 - nMargin)) * 100 / 3
		label := fmt.Sprintf("%s (%s, %s)", h.key.Hotel, h.key.City, h.key.Country)
		if !found || score > best.Score || (score == best.Score && label < best.Label) {
			best = domain.HotelReport{Label: label, Score: score}
			found = true
		}
	}
	return best
}

// hotelPerformance carries one hotel group's profitability inputs.
type hotelPerformance struct {
	key      domain.HotelKey
	visitors float64 // summed, treated as real for normalization
	margin   float64 // avg profit margin
}

// MostProfitable ranks hotels by a composite of normalized total visitors
// and average profit margin, both rewarded directly:
//
//	score = (nVisitors + nMargin) * 100 / 2
//
// Both axes default to 1 on a degenerate range (flat distribution reads as
// maximally favorable), the opposite convention from MostEconomical.
// The display label orders country before city; MostEconomical orders city
// before country. The mismatch is deliberate output compatibility.
func MostProfitable(records []domain.BookingRecord) domain.HotelReport {
	groups := GroupByHotel(records)
	if len(groups) == 0 {
		return domain.HotelReport{Label: NoHotelLabel, Score: 0}
	}

	stats := make([]hotelPerformance, 0, len(groups))
	for key, group := range groups {
		var visitors, margin float64
		for _, r := range group {
			visitors += float64(r.Visitors)
			margin += r.Margin
		}
		stats = append(stats, hotelPerformance{
			key:      key,
			visitors: visitors,
			margin:   margin / float64(len(group)),
		})
	}

	minV, maxV := Range(stats, func(h hotelPerformance) float64 { return h.visitors })
	minM, maxM := Range(stats, func(h hotelPerformance) float64 { return h.margin })

	best := domain.HotelReport{Label: NoHotelLabel, Score: 0}
	found := false
	for _, h := range stats {
		nVisitors := Normalize(h.visitors, minV, maxV, 1)
		nMargin := Normalize(h.margin, minM, maxM, 1)
		score := (nVisitors + nMargin) * 100 / 2
		label := fmt.Sprintf("%s (%s, %s)", h.key.Hotel, h.key.Country, h.key.City)
		if !found || score > best.Score || (score == best.Score && label < best.Label) {
			best = domain.HotelReport{Label: label, Score: score}
			found = true
		}
	}
	return best
}
