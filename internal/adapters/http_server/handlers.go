package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"booking_insights/internal/analytics"
	"booking_insights/internal/domain"
)

type Handlers struct {
	R      *analytics.ReportService
	Source domain.RecordSource

	// ReloadLimit throttles dataset reloads; a reload re-reads the whole
	// source file/table, so it must not be callable at request rate.
	ReloadLimit *rate.Limiter
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/reports", h.fullReport)
	s.mux.Get("/v1/reports/top-country", h.topCountry)
	s.mux.Get("/v1/reports/most-economical", h.mostEconomical)
	s.mux.Get("/v1/reports/most-profitable", h.mostProfitable)
	s.mux.Post("/v1/admin/reload", h.reload)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeReport applies ETag/If-None-Match handling shared by all report
// endpoints.
func writeReport(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write report body")
	}
}

func (h *Handlers) topCountry(w http.ResponseWriter, r *http.Request) {
	writeReport(w, r, h.R.TopCountry(r.Context()))
}

func (h *Handlers) mostEconomical(w http.ResponseWriter, r *http.Request) {
	writeReport(w, r, h.R.MostEconomical(r.Context()))
}

func (h *Handlers) mostProfitable(w http.ResponseWriter, r *http.Request) {
	writeReport(w, r, h.R.MostProfitable(r.Context()))
}

func (h *Handlers) fullReport(w http.ResponseWriter, r *http.Request) {
	writeReport(w, r, h.R.Report(r.Context()))
}

func (h *Handlers) reload(w http.ResponseWriter, r *http.Request) {
	if h.Source == nil {
		writeProblem(w, http.StatusNotImplemented, "No Source", "service was started without a reloadable source")
		return
	}
	if h.ReloadLimit != nil && !h.ReloadLimit.Allow() {
		writeProblem(w, http.StatusTooManyRequests, "Rate Limited", "reload allowed at most once per interval")
		return
	}
	records, err := h.Source.Load(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("dataset reload failed")
		writeProblem(w, http.StatusBadGateway, "Reload Failed", "record source could not be read")
		return
	}
	h.R.Swap(records)
	log.Info().Int("records", len(records)).Msg("dataset reloaded")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]int{"records": len(records)})
}
