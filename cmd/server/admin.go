package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *server) handleSettingsGet(w http.ResponseWriter, r *http.Request) {
	settings, err := s.store.Settings(r.Context())
	if err != nil {
		s.failure(w, "load settings", err)
		return
	}
	settings.Statutory = s.rates
	s.jsonResponse(w, http.StatusOK, settings)
}

func (s *server) handleSettingsUpdate(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	settings := req.toSettings()
	if err := s.store.SaveSettings(r.Context(), settings); err != nil {
		s.failure(w, "save settings", err)
		return
	}
	settings.Statutory = s.rates
	s.jsonResponse(w, http.StatusOK, settings)
}

func (s *server) handleTechnicianCreate(w http.ResponseWriter, r *http.Request) {
	var req technicianRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	tech, err := s.store.CreateTechnician(r.Context(), req.toTechnician())
	if err != nil {
		s.failure(w, "create technician", err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, tech)
}

func (s *server) handleUnproductiveTimeCreate(w http.ResponseWriter, r *http.Request) {
	var req unproductiveTimeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	entry := req.toEntry()
	if err := s.store.AddUnproductiveTime(r.Context(), chi.URLParam(r, "id"), entry); err != nil {
		s.failure(w, "create unproductive time", err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, entry)
}

func (s *server) handleOfficeStaffCreate(w http.ResponseWriter, r *http.Request) {
	var req officeStaffRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	staff, err := s.store.CreateOfficeStaff(r.Context(), req.toOfficeStaff())
	if err != nil {
		s.failure(w, "create office staff", err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, staff)
}

func (s *server) handleVehicleCreate(w http.ResponseWriter, r *http.Request) {
	var req vehicleRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	vehicle, err := s.store.CreateVehicle(r.Context(), req.toVehicle())
	if err != nil {
		s.failure(w, "create vehicle", err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, vehicle)
}

func (s *server) handleExpenseCategoryCreate(w http.ResponseWriter, r *http.Request) {
	var req expenseCategoryRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	category, err := s.store.CreateExpenseCategory(r.Context(), req.Name)
	if err != nil {
		s.failure(w, "create expense category", err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, category)
}

func (s *server) handleExpenseItemCreate(w http.ResponseWriter, r *http.Request) {
	var req expenseItemRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	item, err := s.store.AddExpenseItem(r.Context(), chi.URLParam(r, "id"), req.toItem())
	if err != nil {
		s.failure(w, "create expense item", err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, item)
}

func (s *server) handleJobTypeCreate(w http.ResponseWriter, r *http.Request) {
	var req jobTypeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	jobType, err := s.store.CreateJobType(r.Context(), req.toJobType())
	if err != nil {
		s.failure(w, "create job type", err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, jobType)
}

func (s *server) handleMarkupTierCreate(w http.ResponseWriter, r *http.Request) {
	var req markupTierRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	if !req.bounded() {
		s.errorResponse(w, http.StatusBadRequest, "max_cost must be 0 or greater than min_cost")
		return
	}

	tier, err := s.store.CreateMarkupTier(r.Context(), req.toTier())
	if err != nil {
		s.failure(w, "create markup tier", err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, tier)
}
