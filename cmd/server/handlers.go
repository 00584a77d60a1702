package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/Simplici0/costbook/internal/pricing"
	"github.com/Simplici0/costbook/internal/store"
)

const maxBodyBytes = 1 << 20

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.PingContext(r.Context()); err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.LoadSnapshot(r.Context(), s.rates)
	if err != nil {
		s.failure(w, "load snapshot", err)
		return
	}

	res, err := s.cache.Summary(snap)
	if err != nil {
		s.failure(w, "calculate summary", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, res)
}

// handleSummaryFromSnapshot computes a summary for a client-supplied snapshot without
// touching the database. A snapshot without statutory rates uses the server's.
func (s *server) handleSummaryFromSnapshot(w http.ResponseWriter, r *http.Request) {
	var snap pricing.Snapshot
	if !s.decode(w, r, &snap) {
		return
	}
	if snap.Settings.Statutory == (pricing.StatutoryRates{}) {
		snap.Settings.Statutory = s.rates
	}

	res, err := s.cache.Summary(snap)
	if err != nil {
		s.failure(w, "calculate summary", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, res)
}

func (s *server) handleTechnicianMetrics(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snap, err := s.store.LoadSnapshot(r.Context(), s.rates)
	if err != nil {
		s.failure(w, "load snapshot", err)
		return
	}

	metrics, ok := pricing.TechnicianMetricsByID(snap, id)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "technician not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, metrics)
}

func (s *server) handleHourlyRate(w http.ResponseWriter, r *http.Request) {
	var req hourlyRateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	rate, err := pricing.CalcHourlyRate(req.LoadedCost, req.Margin)
	if err != nil {
		s.failure(w, "calculate hourly rate", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, hourlyRateResponse{Rate: rate})
}

func (s *server) handleMarkup(w http.ResponseWriter, r *http.Request) {
	var req markupRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	markup, err := pricing.CalcMarkupFromMargin(req.Margin)
	if err != nil {
		s.failure(w, "calculate markup", err)
		return
	}
	multiplier, err := pricing.CalcMultiplierFromMargin(req.Margin)
	if err != nil {
		s.failure(w, "calculate multiplier", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, markupResponse{Markup: markup, Multiplier: multiplier})
}

func (s *server) handleMaterialPrice(w http.ResponseWriter, r *http.Request) {
	cost, err := parseNonNegativeFloat(r.URL.Query().Get("cost"), "cost")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	tiers, err := s.store.ListMarkupTiers(r.Context())
	if err != nil {
		s.failure(w, "load markup tiers", err)
		return
	}

	price, err := pricing.PriceMaterial(tiers, cost)
	if err != nil {
		s.failure(w, "price material", err)
		return
	}
	s.jsonResponse(w, http.StatusOK, price)
}

func parseNonNegativeFloat(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be numeric", field)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must be greater than or equal to 0", field)
	}
	return value, nil
}

// decode reads a JSON body into dst, answering 400 on malformed input.
func (s *server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !s.decode(w, r, dst) {
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return false
	}
	return true
}

func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}

// failure maps calculation input errors to 400, missing rows to 404 and duplicate
// names to 409. Anything else is logged and reported as 500.
func (s *server) failure(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, pricing.ErrInvalidFrequency),
		errors.Is(err, pricing.ErrInvalidMargin),
		errors.Is(err, pricing.ErrNoMarkupTier):
		s.errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		s.errorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, store.ErrConflict):
		s.errorResponse(w, http.StatusConflict, err.Error())
	default:
		log.Printf("%s: %v", op, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to "+op)
	}
}

func (s *server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encode json response: %v", err)
	}
}

func (s *server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
