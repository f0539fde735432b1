package analytics_test

import (
	"testing"

	"booking_insights/internal/analytics"
	"booking_insights/internal/domain"
)

func TestTopCountry_EmptyInput(t *testing.T) {
	got := analytics.TopCountry(nil)
	want := domain.CountryReport{Label: "No data is found", Bookings: 0}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestTopCountry_Majority(t *testing.T) {
	records := []domain.BookingRecord{
		booking("1", "A", "X", "H1"),
		booking("2", "A", "X", "H1"),
		booking("3", "B", "Y", "H2"),
	}
	got := analytics.TopCountry(records)
	if got.Label != "A" || got.Bookings != 2 {
		t.Fatalf("got %+v, want (A, 2)", got)
	}
}

func TestTopCountry_TieBreakLexicographic(t *testing.T) {
	records := []domain.BookingRecord{
		booking("1", "Zambia", "X", "H1"),
		booking("2", "Austria", "Y", "H2"),
	}
	got := analytics.TopCountry(records)
	if got.Label != "Austria" || got.Bookings != 1 {
		t.Fatalf("tie should go to the lexicographically smaller country, got %+v", got)
	}
}

func TestMostEconomical_EmptyInput(t *testing.T) {
	got := analytics.MostEconomical(nil)
	want := domain.HotelReport{Label: "No Data", Score: 0}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestMostEconomical_CheaperHotelWins(t *testing.T) {
	// rooms=1, days=1 so price is the per-unit price verbatim
	records := []domain.BookingRecord{
		{ID: "1", Country: "PT", City: "Lisbon", Hotel: "Thrifty", Visitors: 2, Price: 10, Discount: 0.5, Margin: 0.1, Days: 1, Rooms: 1},
		{ID: "2", Country: "PT", City: "Lisbon", Hotel: "Pricey", Visitors: 2, Price: 20, Discount: 0.1, Margin: 0.3, Days: 1, Rooms: 1},
	}
	got := analytics.MostEconomical(records)
	if got.Label != "Thrifty (Lisbon, PT)" {
		t.Fatalf("unexpected winner: %+v", got)
	}
	// lower price, higher discount, lower margin: every axis normalizes in
	// Thrifty's favor, so it scores the full 100
	if got.Score != 100 {
		t.Fatalf("expected score 100, got %v", got.Score)
	}
}

func TestMostEconomical_PerUnitPrice(t *testing.T) {
	// Bulk charges more in absolute terms but far less per room-day.
	records := []domain.BookingRecord{
		{ID: "1", Country: "PT", City: "Lisbon", Hotel: "Bulk", Visitors: 2, Price: 100, Discount: 0.2, Margin: 0.2, Days: 10, Rooms: 5},
		{ID: "2", Country: "PT", City: "Lisbon", Hotel: "Single", Visitors: 2, Price: 50, Discount: 0.2, Margin: 0.2, Days: 1, Rooms: 1},
	}
	got := analytics.MostEconomical(records)
	if got.Label != "Bulk (Lisbon, PT)" {
		t.Fatalf("expected per-unit pricing to favor Bulk, got %+v", got)
	}
}

func TestMostEconomical_DegenerateDefaults(t *testing.T) {
	// identical metrics across both groups: price defaults to 0 (best),
	// discount to 1 (best), margin to 0 (best) -> both score 100, and the
	// lexicographically smaller label wins the tie
	records := []domain.BookingRecord{
		{ID: "1", Country: "PT", City: "Lisbon", Hotel: "Beta", Visitors: 2, Price: 10, Discount: 0.2, Margin: 0.1, Days: 1, Rooms: 1},
		{ID: "2", Country: "PT", City: "Lisbon", Hotel: "Alpha", Visitors: 2, Price: 10, Discount: 0.2, Margin: 0.1, Days: 1, Rooms: 1},
	}
	got := analytics.MostEconomical(records)
	if got.Score != 100 {
		t.Fatalf("expected 100 on flat distributions, got %v", got.Score)
	}
	if got.Label != "Alpha (Lisbon, PT)" {
		t.Fatalf("tie should go to the lexicographically smaller label, got %q", got.Label)
	}
}

func TestMostProfitable_EmptyInput(t *testing.T) {
	got := analytics.MostProfitable(nil)
	want := domain.HotelReport{Label: "No Data", Score: 0}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestMostProfitable_IdenticalGroupsScoreExactly100(t *testing.T) {
	// same visitor totals and same average margins: both axes hit the
	// degenerate default of 1, so (1+1)*100/2 == 100 exactly
	records := []domain.BookingRecord{
		{ID: "1", Country: "PT", City: "Lisbon", Hotel: "One", Visitors: 4, Price: 10, Discount: 0.1, Margin: 0.25, Days: 2, Rooms: 1},
		{ID: "2", Country: "ES", City: "Madrid", Hotel: "Two", Visitors: 4, Price: 30, Discount: 0.3, Margin: 0.25, Days: 5, Rooms: 2},
	}
	got := analytics.MostProfitable(records)
	if got.Score != 100.0 {
		t.Fatalf("expected exactly 100.0, got %v", got.Score)
	}
	// country precedes city in this query's label, unlike MostEconomical
	if got.Label != "One (PT, Lisbon)" && got.Label != "Two (ES, Madrid)" {
		t.Fatalf("unexpected label format: %q", got.Label)
	}
}

func TestMostProfitable_VisitorsAndMarginRewarded(t *testing.T) {
	records := []domain.BookingRecord{
		{ID: "1", Country: "PT", City: "Lisbon", Hotel: "Busy", Visitors: 10, Price: 10, Discount: 0.1, Margin: 0.4, Days: 2, Rooms: 1},
		{ID: "2", Country: "ES", City: "Madrid", Hotel: "Quiet", Visitors: 2, Price: 10, Discount: 0.1, Margin: 0.1, Days: 2, Rooms: 1},
	}
	got := analytics.MostProfitable(records)
	if got.Label != "Busy (PT, Lisbon)" {
		t.Fatalf("unexpected winner: %+v", got)
	}
	if got.Score != 100 {
		t.Fatalf("expected 100 for the hotel winning both axes, got %v", got.Score)
	}
}

func TestQueries_Idempotent(t *testing.T) {
	records := []domain.BookingRecord{
		booking("1", "PT", "Lisbon", "Alfama Inn"),
		booking("2", "PT", "Porto", "Douro View"),
		booking("3", "ES", "Madrid", "Sol Plaza"),
		{ID: "4", Country: "ES", City: "Madrid", Hotel: "Sol Plaza", Visitors: 9, Price: 75, Discount: 0.15, Margin: 0.35, Days: 4, Rooms: 2},
	}
	tc, me, mp := analytics.TopCountry(records), analytics.MostEconomical(records), analytics.MostProfitable(records)
	for i := 0; i < 5; i++ {
		if got := analytics.TopCountry(records); got != tc {
			t.Fatalf("TopCountry not idempotent: %+v vs %+v", got, tc)
		}
		if got := analytics.MostEconomical(records); got != me {
			t.Fatalf("MostEconomical not idempotent: %+v vs %+v", got, me)
		}
		if got := analytics.MostProfitable(records); got != mp {
			t.Fatalf("MostProfitable not idempotent: %+v vs %+v", got, mp)
		}
	}
}
