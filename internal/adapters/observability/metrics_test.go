package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"booking_insights/internal/adapters/observability"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so counters are non-zero
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveQuery("top_country", 3*time.Millisecond)
	observability.ObserveDrop("csv", "malformed")

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	if !strings.Contains(out, "insights_http_requests_total") {
		t.Fatalf("expected insights_http_requests_total in output")
	}
	if !strings.Contains(out, "insights_query_runs_total") {
		t.Fatalf("expected insights_query_runs_total in output")
	}
	if !strings.Contains(out, "insights_records_dropped_total") {
		t.Fatalf("expected insights_records_dropped_total in output")
	}
}
