// Package store reads and writes the calculation inputs kept in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Simplici0/costbook/internal/pricing"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a row with the same unique name already exists.
	ErrConflict = errors.New("already exists")
)

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// New returns a Store backed by db. The schema must already be migrated.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// LoadSnapshot reads every input collection into one snapshot. rates become the
// snapshot's statutory rates.
func (s *Store) LoadSnapshot(ctx context.Context, rates pricing.StatutoryRates) (pricing.Snapshot, error) {
	var snap pricing.Snapshot
	var err error

	if snap.Settings, err = s.Settings(ctx); err != nil {
		return pricing.Snapshot{}, err
	}
	snap.Settings.Statutory = rates

	if snap.Technicians, err = s.ListTechnicians(ctx); err != nil {
		return pricing.Snapshot{}, err
	}
	if snap.UnproductiveTime, err = s.UnproductiveTime(ctx); err != nil {
		return pricing.Snapshot{}, err
	}
	if snap.OfficeStaff, err = s.ListOfficeStaff(ctx); err != nil {
		return pricing.Snapshot{}, err
	}
	if snap.Vehicles, err = s.ListVehicles(ctx); err != nil {
		return pricing.Snapshot{}, err
	}
	if snap.ExpenseCategories, err = s.ListExpenseCategories(ctx); err != nil {
		return pricing.Snapshot{}, err
	}
	if snap.JobTypes, err = s.ListJobTypes(ctx); err != nil {
		return pricing.Snapshot{}, err
	}
	if snap.MarkupTiers, err = s.ListMarkupTiers(ctx); err != nil {
		return pricing.Snapshot{}, err
	}

	return snap, nil
}

// Settings returns the organization settings singleton, or zero settings when the row
// has not been seeded.
func (s *Store) Settings(ctx context.Context) (pricing.OrganizationSettings, error) {
	var st pricing.OrganizationSettings
	err := s.db.QueryRowContext(ctx, `
		SELECT material_cost_percent, target_annual_revenue, target_monthly_revenue, default_target_margin
		FROM organization_settings
		WHERE id = 1
	`).Scan(&st.MaterialCostPercent, &st.TargetAnnualRevenue, &st.TargetMonthlyRevenue, &st.DefaultTargetMargin)
	if errors.Is(err, sql.ErrNoRows) {
		return pricing.OrganizationSettings{}, nil
	}
	if err != nil {
		return pricing.OrganizationSettings{}, fmt.Errorf("query organization settings: %w", err)
	}
	return st, nil
}

// SaveSettings upserts the organization settings singleton.
func (s *Store) SaveSettings(ctx context.Context, st pricing.OrganizationSettings) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO organization_settings (
			id,
			material_cost_percent,
			target_annual_revenue,
			target_monthly_revenue,
			default_target_margin
		) VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			material_cost_percent = excluded.material_cost_percent,
			target_annual_revenue = excluded.target_annual_revenue,
			target_monthly_revenue = excluded.target_monthly_revenue,
			default_target_margin = excluded.default_target_margin,
			updated_at = CURRENT_TIMESTAMP
	`, st.MaterialCostPercent, st.TargetAnnualRevenue, st.TargetMonthlyRevenue, st.DefaultTargetMargin)
	if err != nil {
		return fmt.Errorf("upsert organization settings: %w", err)
	}
	return nil
}

// ListTechnicians returns every technician regardless of status.
func (s *Store) ListTechnicians(ctx context.Context) ([]pricing.Technician, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			id, name, hourly_rate, paid_hours_per_day, work_days_per_week,
			health_insurance_monthly, dental_insurance_monthly, vision_insurance_monthly,
			life_insurance_monthly, other_benefits_monthly, retirement_match_percent,
			status, COALESCE(assigned_vehicle_id, '')
		FROM technicians
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query technicians: %w", err)
	}
	defer rows.Close()

	techs := make([]pricing.Technician, 0)
	for rows.Next() {
		var t pricing.Technician
		if err := rows.Scan(
			&t.ID, &t.Name, &t.HourlyRate, &t.PaidHoursPerDay, &t.WorkDaysPerWeek,
			&t.HealthMonthly, &t.DentalMonthly, &t.VisionMonthly,
			&t.LifeMonthly, &t.OtherMonthly, &t.RetirementMatchPercent,
			&t.Status, &t.AssignedVehicleID,
		); err != nil {
			return nil, fmt.Errorf("scan technician: %w", err)
		}
		techs = append(techs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate technicians: %w", err)
	}

	return techs, nil
}

// CreateTechnician inserts a technician, assigning an id when t.ID is empty. An
// assigned vehicle that does not exist yields ErrNotFound.
func (s *Store) CreateTechnician(ctx context.Context, t pricing.Technician) (pricing.Technician, error) {
	t.ID = newID(t.ID)
	if t.Status == "" {
		t.Status = pricing.StatusActive
	}

	var vehicleID any
	if t.AssignedVehicleID != "" {
		ok, err := s.exists(ctx, `SELECT 1 FROM vehicles WHERE id = ?`, t.AssignedVehicleID)
		if err != nil {
			return pricing.Technician{}, fmt.Errorf("look up vehicle: %w", err)
		}
		if !ok {
			return pricing.Technician{}, fmt.Errorf("vehicle %s: %w", t.AssignedVehicleID, ErrNotFound)
		}
		vehicleID = t.AssignedVehicleID
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO technicians (
			id, name, hourly_rate, paid_hours_per_day, work_days_per_week,
			health_insurance_monthly, dental_insurance_monthly, vision_insurance_monthly,
			life_insurance_monthly, other_benefits_monthly, retirement_match_percent,
			status, assigned_vehicle_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		t.ID, t.Name, t.HourlyRate, t.PaidHoursPerDay, t.WorkDaysPerWeek,
		t.HealthMonthly, t.DentalMonthly, t.VisionMonthly,
		t.LifeMonthly, t.OtherMonthly, t.RetirementMatchPercent,
		t.Status, vehicleID,
	)
	if err != nil {
		return pricing.Technician{}, fmt.Errorf("insert technician: %w", err)
	}
	return t, nil
}

// UnproductiveTime returns every technician's unproductive-time entries keyed by technician id.
func (s *Store) UnproductiveTime(ctx context.Context) (map[string][]pricing.UnproductiveTimeEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT technician_id, name, hours_per_day, is_paid
		FROM unproductive_time
		ORDER BY technician_id, sort_order, name
	`)
	if err != nil {
		return nil, fmt.Errorf("query unproductive time: %w", err)
	}
	defer rows.Close()

	entries := make(map[string][]pricing.UnproductiveTimeEntry)
	for rows.Next() {
		var techID string
		var e pricing.UnproductiveTimeEntry
		if err := rows.Scan(&techID, &e.Name, &e.HoursPerDay, &e.IsPaid); err != nil {
			return nil, fmt.Errorf("scan unproductive time: %w", err)
		}
		entries[techID] = append(entries[techID], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unproductive time: %w", err)
	}

	return entries, nil
}

// AddUnproductiveTime appends an unproductive-time entry to a technician.
func (s *Store) AddUnproductiveTime(ctx context.Context, technicianID string, e pricing.UnproductiveTimeEntry) error {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO unproductive_time (id, technician_id, name, hours_per_day, is_paid, sort_order)
		SELECT ?, id, ?, ?, ?, (SELECT COUNT(*) FROM unproductive_time WHERE technician_id = ?)
		FROM technicians
		WHERE id = ?
	`, uuid.NewString(), e.Name, e.HoursPerDay, e.IsPaid, technicianID, technicianID)
	if err != nil {
		return fmt.Errorf("insert unproductive time: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert unproductive time: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("technician %s: %w", technicianID, ErrNotFound)
	}
	return nil
}

// ListOfficeStaff returns every office staff member regardless of status.
func (s *Store) ListOfficeStaff(ctx context.Context) ([]pricing.OfficeStaff, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			id, name, pay_type, annual_salary, base_pay_rate, hours_per_week,
			health_insurance_monthly, dental_insurance_monthly, vision_insurance_monthly,
			life_insurance_monthly, other_benefits_monthly, retirement_match_percent,
			status
		FROM office_staff
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query office staff: %w", err)
	}
	defer rows.Close()

	staff := make([]pricing.OfficeStaff, 0)
	for rows.Next() {
		var o pricing.OfficeStaff
		if err := rows.Scan(
			&o.ID, &o.Name, &o.PayType, &o.AnnualSalary, &o.BasePayRate, &o.HoursPerWeek,
			&o.HealthMonthly, &o.DentalMonthly, &o.VisionMonthly,
			&o.LifeMonthly, &o.OtherMonthly, &o.RetirementMatchPercent,
			&o.Status,
		); err != nil {
			return nil, fmt.Errorf("scan office staff: %w", err)
		}
		staff = append(staff, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate office staff: %w", err)
	}

	return staff, nil
}

// CreateOfficeStaff inserts an office staff member.
func (s *Store) CreateOfficeStaff(ctx context.Context, o pricing.OfficeStaff) (pricing.OfficeStaff, error) {
	o.ID = newID(o.ID)
	if o.Status == "" {
		o.Status = pricing.StatusActive
	}
	if o.PayType == "" {
		o.PayType = pricing.PayTypeSalary
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO office_staff (
			id, name, pay_type, annual_salary, base_pay_rate, hours_per_week,
			health_insurance_monthly, dental_insurance_monthly, vision_insurance_monthly,
			life_insurance_monthly, other_benefits_monthly, retirement_match_percent,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		o.ID, o.Name, o.PayType, o.AnnualSalary, o.BasePayRate, o.HoursPerWeek,
		o.HealthMonthly, o.DentalMonthly, o.VisionMonthly,
		o.LifeMonthly, o.OtherMonthly, o.RetirementMatchPercent,
		o.Status,
	)
	if err != nil {
		return pricing.OfficeStaff{}, fmt.Errorf("insert office staff: %w", err)
	}
	return o, nil
}

// ListVehicles returns every vehicle regardless of status.
func (s *Store) ListVehicles(ctx context.Context) ([]pricing.Vehicle, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			id, name, status, monthly_payment, insurance_monthly, fuel_monthly,
			maintenance_monthly, market_value, loan_balance
		FROM vehicles
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}
	defer rows.Close()

	vehicles := make([]pricing.Vehicle, 0)
	for rows.Next() {
		var v pricing.Vehicle
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Status, &v.MonthlyPayment, &v.InsuranceMonthly, &v.FuelMonthly,
			&v.MaintenanceMonthly, &v.MarketValue, &v.LoanBalance,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vehicles: %w", err)
	}

	return vehicles, nil
}

// CreateVehicle inserts a vehicle.
func (s *Store) CreateVehicle(ctx context.Context, v pricing.Vehicle) (pricing.Vehicle, error) {
	v.ID = newID(v.ID)
	if v.Status == "" {
		v.Status = pricing.VehicleActive
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vehicles (
			id, name, status, monthly_payment, insurance_monthly, fuel_monthly,
			maintenance_monthly, market_value, loan_balance
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		v.ID, v.Name, v.Status, v.MonthlyPayment, v.InsuranceMonthly, v.FuelMonthly,
		v.MaintenanceMonthly, v.MarketValue, v.LoanBalance,
	)
	if err != nil {
		return pricing.Vehicle{}, fmt.Errorf("insert vehicle: %w", err)
	}
	return v, nil
}
