// Package pricing derives labor, fleet, overhead and rate figures for a field-service
// business from one snapshot of workforce, fleet, expense and settings records.
package pricing

// Status values shared by technicians and office staff.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnLeave  = "on_leave"
)

// Vehicle status values.
const (
	VehicleActive      = "active"
	VehicleReserve     = "reserve"
	VehicleMaintenance = "maintenance"
	VehicleSold        = "sold"
	VehicleTotaled     = "totaled"
)

// Pay types for office staff.
const (
	PayTypeSalary = "salary"
	PayTypeHourly = "hourly"
)

// Benefits holds monthly benefit premiums and the retirement match of one person.
type Benefits struct {
	HealthMonthly          float64 `json:"health_insurance_monthly"`
	DentalMonthly          float64 `json:"dental_insurance_monthly"`
	VisionMonthly          float64 `json:"vision_insurance_monthly"`
	LifeMonthly            float64 `json:"life_insurance_monthly"`
	OtherMonthly           float64 `json:"other_benefits_monthly"`
	RetirementMatchPercent float64 `json:"retirement_match_percent"`
}

// Technician is a billable field worker.
type Technician struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	HourlyRate        float64 `json:"hourly_rate"`
	PaidHoursPerDay   float64 `json:"paid_hours_per_day"`
	WorkDaysPerWeek   float64 `json:"work_days_per_week"`
	Status            string  `json:"status"`
	AssignedVehicleID string  `json:"assigned_vehicle_id,omitempty"`
	Benefits
}

// UnproductiveTimeEntry is a named block of a technician's day that cannot be billed.
type UnproductiveTimeEntry struct {
	Name        string  `json:"name"`
	HoursPerDay float64 `json:"hours_per_day"`
	IsPaid      bool    `json:"is_paid"`
}

// OfficeStaff is a non-billable employee whose cost is carried as overhead.
type OfficeStaff struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PayType      string  `json:"pay_type"`
	AnnualSalary float64 `json:"annual_salary"`
	BasePayRate  float64 `json:"base_pay_rate"`
	HoursPerWeek float64 `json:"hours_per_week"`
	Status       string  `json:"status"`
	Benefits
}

// Vehicle is a fleet unit with its recurring monthly costs and balance-sheet values.
type Vehicle struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Status             string  `json:"status"`
	MonthlyPayment     float64 `json:"monthly_payment"`
	InsuranceMonthly   float64 `json:"insurance_monthly"`
	FuelMonthly        float64 `json:"fuel_monthly"`
	MaintenanceMonthly float64 `json:"maintenance_monthly"`
	MarketValue        float64 `json:"market_value"`
	LoanBalance        float64 `json:"loan_balance"`
}

// MonthlyCost is the sum of the four recurring monthly cost fields.
func (v Vehicle) MonthlyCost() float64 {
	return v.MonthlyPayment + v.InsuranceMonthly + v.FuelMonthly + v.MaintenanceMonthly
}

// CountsTowardFleetCost reports whether the vehicle is still carried by the business.
func (v Vehicle) CountsTowardFleetCost() bool {
	switch v.Status {
	case VehicleActive, VehicleReserve, VehicleMaintenance:
		return true
	}
	return false
}

// ExpenseItem is a recurring or one-off discretionary expense.
type ExpenseItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
}

// ExpenseCategory groups expense items.
type ExpenseCategory struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Items []ExpenseItem `json:"items"`
}

// JobType is a priced service offering.
type JobType struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	TargetGrossMargin     float64 `json:"target_gross_margin"`
	MaterialGrossMargin   float64 `json:"material_gross_margin"`
	MemberDiscountPercent float64 `json:"member_discount_percent"`
	MinHours              float64 `json:"min_hours"`
	MaxHours              float64 `json:"max_hours"`
	FlatSurcharge         float64 `json:"flat_surcharge"`
}

// MarkupTier is the margin policy applied to materials whose cost falls in [MinCost, MaxCost).
// A MaxCost of 0 leaves the tier unbounded above.
type MarkupTier struct {
	ID                 string  `json:"id"`
	MinCost            float64 `json:"min_cost"`
	MaxCost            float64 `json:"max_cost"`
	GrossMarginPercent float64 `json:"gross_margin_percent"`
}

// OrganizationSettings holds the global knobs of one calculation pass.
type OrganizationSettings struct {
	MaterialCostPercent  float64        `json:"material_cost_percent"`
	TargetAnnualRevenue  float64        `json:"target_annual_revenue"`
	TargetMonthlyRevenue float64        `json:"target_monthly_revenue"`
	DefaultTargetMargin  float64        `json:"default_target_margin"`
	Statutory            StatutoryRates `json:"statutory"`
}

// ProjectedRevenue returns the annual revenue target, falling back to the monthly target.
func (s OrganizationSettings) ProjectedRevenue() float64 {
	if s.TargetAnnualRevenue > 0 {
		return s.TargetAnnualRevenue
	}
	if s.TargetMonthlyRevenue > 0 {
		return s.TargetMonthlyRevenue * 12
	}
	return 0
}

// Snapshot is the full input of one CalcFullSummary pass.
type Snapshot struct {
	Technicians       []Technician                       `json:"technicians"`
	UnproductiveTime  map[string][]UnproductiveTimeEntry `json:"unproductive_time"`
	OfficeStaff       []OfficeStaff                      `json:"office_staff"`
	Vehicles          []Vehicle                          `json:"vehicles"`
	ExpenseCategories []ExpenseCategory                  `json:"expense_categories"`
	JobTypes          []JobType                          `json:"job_types"`
	MarkupTiers       []MarkupTier                       `json:"markup_tiers"`
	Settings          OrganizationSettings               `json:"settings"`
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
