package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/costbook/internal/db"
	"github.com/Simplici0/costbook/internal/migrations"
	"github.com/Simplici0/costbook/internal/pricing"
	"github.com/Simplici0/costbook/internal/seed"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	require.NoError(t, migrations.Up(database))
	_, err = seed.Run(database)
	require.NoError(t, err)

	return newServer(database, pricing.DefaultStatutoryRates()).routes()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch v := body.(type) {
	case nil:
	case string:
		payload = []byte(v)
	default:
		var err error
		payload, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthz(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestSummary_EmptyDatabase(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	res := decodeBody[pricing.CalculationResults](t, rec)
	assert.Equal(t, 0, res.TechCount)
	assert.Zero(t, res.AvgTrueCostPerHour)
	assert.NotNil(t, res.Warnings)
}

func TestSummary_AfterCreatingRecords(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/vehicles", map[string]any{
		"name": "Van 1", "monthly_payment": 600, "insurance_monthly": 200, "fuel_monthly": 400, "maintenance_monthly": 100,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	van := decodeBody[pricing.Vehicle](t, rec)

	rec = do(t, h, http.MethodPost, "/api/technicians", map[string]any{
		"name": "Avery", "hourly_rate": 30, "paid_hours_per_day": 8, "work_days_per_week": 5,
		"assigned_vehicle_id": van.ID, "health_insurance_monthly": 500,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tech := decodeBody[pricing.Technician](t, rec)
	assert.Equal(t, pricing.StatusActive, tech.Status)

	rec = do(t, h, http.MethodPost, "/api/technicians/"+tech.ID+"/unproductive-time", map[string]any{
		"name": "Drive", "hours_per_day": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, decodeBody[pricing.UnproductiveTimeEntry](t, rec).IsPaid)

	rec = do(t, h, http.MethodPost, "/api/expense-categories", map[string]any{"name": "Facilities"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cat := decodeBody[pricing.ExpenseCategory](t, rec)

	rec = do(t, h, http.MethodPost, "/api/expense-categories/"+cat.ID+"/items", map[string]any{
		"name": "Rent", "amount": 24000, "frequency": "annual",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/job-types", map[string]any{
		"name": "Service call", "target_gross_margin": 50, "min_hours": 1, "max_hours": 2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	res := decodeBody[pricing.CalculationResults](t, rec)

	assert.Equal(t, 1, res.TechCount)
	assert.Equal(t, 1, res.ActiveVehicleCount)
	assert.InDelta(t, 1300, res.FleetCostMonthly, 1e-6)
	assert.InDelta(t, 2000, res.MonthlyExpenses, 1e-6)
	require.Len(t, res.JobTypes, 1)
	assert.InDelta(t, res.AvgLoadedCostPerHour*2, res.JobTypes[0].HourlyRate, 1e-6)

	rec = do(t, h, http.MethodGet, "/api/technicians/"+tech.ID+"/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	metrics := decodeBody[pricing.TechnicianMetrics](t, rec)
	assert.InDelta(t, 7, metrics.BillableHoursPerDay, 1e-9)
	assert.InDelta(t, 1300, metrics.VehicleMonthlyCost, 1e-9)
}

func TestTechnicianMetrics_NotFound(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/technicians/missing/metrics", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnproductiveTime_UnknownTechnician(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/technicians/missing/unproductive-time", map[string]any{"name": "Drive", "hours_per_day": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnproductiveTime_ExplicitUnpaid(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/technicians", map[string]any{
		"name": "Avery", "hourly_rate": 30, "paid_hours_per_day": 8, "work_days_per_week": 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tech := decodeBody[pricing.Technician](t, rec)

	rec = do(t, h, http.MethodPost, "/api/technicians/"+tech.ID+"/unproductive-time", map[string]any{
		"name": "Lunch", "hours_per_day": 1, "is_paid": false,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.False(t, decodeBody[pricing.UnproductiveTimeEntry](t, rec).IsPaid)

	rec = do(t, h, http.MethodGet, "/api/technicians/"+tech.ID+"/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 8, decodeBody[pricing.TechnicianMetrics](t, rec).BillableHoursPerDay, 1e-9)
}

func TestTechnicianCreate_UnknownVehicle(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/technicians", map[string]any{
		"name": "Avery", "hourly_rate": 30, "paid_hours_per_day": 8, "work_days_per_week": 5,
		"assigned_vehicle_id": "no-such-van",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "no-such-van")
}

func TestJobTypeCreate_DuplicateName(t *testing.T) {
	h := newTestServer(t)

	body := map[string]any{"name": "Service call", "target_gross_margin": 50, "min_hours": 1, "max_hours": 2}
	rec := do(t, h, http.MethodPost, "/api/job-types", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/job-types", body)
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestHourlyRate(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/rates/hourly", map[string]any{"loaded_cost": 50, "margin": 50})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 100, decodeBody[hourlyRateResponse](t, rec).Rate, 1e-9)

	rec = do(t, h, http.MethodPost, "/api/rates/hourly", map[string]any{"loaded_cost": 50, "margin": 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Margin")

	rec = do(t, h, http.MethodPost, "/api/rates/hourly", `{"loaded_cost":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkup(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/rates/markup", map[string]any{"margin": 50})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeBody[markupResponse](t, rec)
	assert.InDelta(t, 100, got.Markup, 1e-9)
	assert.InDelta(t, 2, got.Multiplier, 1e-9)

	rec = do(t, h, http.MethodPost, "/api/rates/markup", map[string]any{"margin": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMaterialPrice_UsesSeededTiers(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/materials/price?cost=25", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	price := decodeBody[pricing.MaterialPrice](t, rec)
	assert.InDelta(t, 60, price.GrossMarginPercent, 1e-9)
	assert.InDelta(t, 62.5, price.SellPrice, 1e-9)

	rec = do(t, h, http.MethodGet, "/api/materials/price?cost=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkupTierAndCostValidation(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/markup-tiers", map[string]any{"min_cost": 10, "max_cost": 5, "gross_margin_percent": 40})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/materials/price?cost=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummaryFromSnapshot(t *testing.T) {
	h := newTestServer(t)

	snap := pricing.Snapshot{
		Technicians: []pricing.Technician{
			{ID: "t1", Name: "Avery", HourlyRate: 25, PaidHoursPerDay: 8, WorkDaysPerWeek: 5, Status: pricing.StatusActive},
		},
		Settings: pricing.OrganizationSettings{DefaultTargetMargin: 40},
	}

	rec := do(t, h, http.MethodPost, "/api/summary", snap)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeBody[pricing.CalculationResults](t, rec)

	snap.Settings.Statutory = pricing.DefaultStatutoryRates()
	want, err := pricing.CalcFullSummary(snap)
	require.NoError(t, err)
	assert.InDelta(t, want.AvgTrueCostPerHour, got.AvgTrueCostPerHour, 1e-9)
	assert.InDelta(t, want.RecommendedHourlyRate, got.RecommendedHourlyRate, 1e-9)
}

func TestSummaryFromSnapshot_InvalidFrequency(t *testing.T) {
	h := newTestServer(t)

	snap := pricing.Snapshot{
		ExpenseCategories: []pricing.ExpenseCategory{
			{ID: "c1", Name: "Misc", Items: []pricing.ExpenseItem{{ID: "i1", Name: "Odd", Amount: 10, Frequency: "daily"}}},
		},
	}

	rec := do(t, h, http.MethodPost, "/api/summary", snap)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid frequency")
}

func TestSettingsRoundTrip(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPut, "/api/settings", map[string]any{
		"material_cost_percent": 20, "target_monthly_revenue": 50000, "default_target_margin": 45,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	settings := decodeBody[pricing.OrganizationSettings](t, rec)
	assert.InDelta(t, 45, settings.DefaultTargetMargin, 1e-9)
	assert.InDelta(t, 600000, settings.ProjectedRevenue(), 1e-9)
	assert.Equal(t, pricing.DefaultStatutoryRates(), settings.Statutory)

	rec = do(t, h, http.MethodPut, "/api/settings", map[string]any{"default_target_margin": 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	h := newTestServer(t)

	cases := []struct {
		name string
		path string
		body map[string]any
	}{
		{"technician without name", "/api/technicians", map[string]any{"paid_hours_per_day": 8, "work_days_per_week": 5}},
		{"technician zero hours", "/api/technicians", map[string]any{"name": "A", "paid_hours_per_day": 0, "work_days_per_week": 5}},
		{"vehicle bad status", "/api/vehicles", map[string]any{"name": "V", "status": "stolen"}},
		{"staff bad pay type", "/api/office-staff", map[string]any{"name": "S", "pay_type": "commission"}},
		{"job type inverted hours", "/api/job-types", map[string]any{"name": "J", "min_hours": 3, "max_hours": 1}},
		{"unknown field", "/api/expense-categories", map[string]any{"name": "X", "color": "red"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}
