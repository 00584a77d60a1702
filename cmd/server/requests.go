package main

import "github.com/Simplici0/costbook/internal/pricing"

type hourlyRateRequest struct {
	LoadedCost float64 `json:"loaded_cost" validate:"gte=0"`
	Margin     float64 `json:"margin" validate:"gte=0,lt=100"`
}

type hourlyRateResponse struct {
	Rate float64 `json:"rate"`
}

type markupRequest struct {
	Margin float64 `json:"margin" validate:"gte=0,lt=100"`
}

type markupResponse struct {
	Markup     float64 `json:"markup"`
	Multiplier float64 `json:"multiplier"`
}

type settingsRequest struct {
	MaterialCostPercent  float64 `json:"material_cost_percent" validate:"gte=0,lte=100"`
	TargetAnnualRevenue  float64 `json:"target_annual_revenue" validate:"gte=0"`
	TargetMonthlyRevenue float64 `json:"target_monthly_revenue" validate:"gte=0"`
	DefaultTargetMargin  float64 `json:"default_target_margin" validate:"gte=0,lt=100"`
}

func (r settingsRequest) toSettings() pricing.OrganizationSettings {
	return pricing.OrganizationSettings{
		MaterialCostPercent:  r.MaterialCostPercent,
		TargetAnnualRevenue:  r.TargetAnnualRevenue,
		TargetMonthlyRevenue: r.TargetMonthlyRevenue,
		DefaultTargetMargin:  r.DefaultTargetMargin,
	}
}

// BenefitsRequest holds the benefit fields shared by technician and office staff payloads.
type BenefitsRequest struct {
	HealthMonthly          float64 `json:"health_insurance_monthly" validate:"gte=0"`
	DentalMonthly          float64 `json:"dental_insurance_monthly" validate:"gte=0"`
	VisionMonthly          float64 `json:"vision_insurance_monthly" validate:"gte=0"`
	LifeMonthly            float64 `json:"life_insurance_monthly" validate:"gte=0"`
	OtherMonthly           float64 `json:"other_benefits_monthly" validate:"gte=0"`
	RetirementMatchPercent float64 `json:"retirement_match_percent" validate:"gte=0,lte=100"`
}

func (r BenefitsRequest) toBenefits() pricing.Benefits {
	return pricing.Benefits(r)
}

type technicianRequest struct {
	Name              string  `json:"name" validate:"required"`
	HourlyRate        float64 `json:"hourly_rate" validate:"gte=0"`
	PaidHoursPerDay   float64 `json:"paid_hours_per_day" validate:"gt=0,lte=24"`
	WorkDaysPerWeek   float64 `json:"work_days_per_week" validate:"gte=1,lte=7"`
	Status            string  `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
	AssignedVehicleID string  `json:"assigned_vehicle_id"`
	BenefitsRequest
}

func (r technicianRequest) toTechnician() pricing.Technician {
	return pricing.Technician{
		Name:              r.Name,
		HourlyRate:        r.HourlyRate,
		PaidHoursPerDay:   r.PaidHoursPerDay,
		WorkDaysPerWeek:   r.WorkDaysPerWeek,
		Status:            r.Status,
		AssignedVehicleID: r.AssignedVehicleID,
		Benefits:          r.toBenefits(),
	}
}

// unproductiveTimeRequest treats a missing is_paid as paid. Paid hours come out of
// billable time; unpaid hours do not.
type unproductiveTimeRequest struct {
	Name        string  `json:"name" validate:"required"`
	HoursPerDay float64 `json:"hours_per_day" validate:"gte=0,lte=24"`
	IsPaid      *bool   `json:"is_paid"`
}

func (r unproductiveTimeRequest) toEntry() pricing.UnproductiveTimeEntry {
	paid := true
	if r.IsPaid != nil {
		paid = *r.IsPaid
	}
	return pricing.UnproductiveTimeEntry{Name: r.Name, HoursPerDay: r.HoursPerDay, IsPaid: paid}
}

type officeStaffRequest struct {
	Name         string  `json:"name" validate:"required"`
	PayType      string  `json:"pay_type" validate:"omitempty,oneof=salary hourly"`
	AnnualSalary float64 `json:"annual_salary" validate:"gte=0"`
	BasePayRate  float64 `json:"base_pay_rate" validate:"gte=0"`
	HoursPerWeek float64 `json:"hours_per_week" validate:"gte=0,lte=168"`
	Status       string  `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
	BenefitsRequest
}

func (r officeStaffRequest) toOfficeStaff() pricing.OfficeStaff {
	return pricing.OfficeStaff{
		Name:         r.Name,
		PayType:      r.PayType,
		AnnualSalary: r.AnnualSalary,
		BasePayRate:  r.BasePayRate,
		HoursPerWeek: r.HoursPerWeek,
		Status:       r.Status,
		Benefits:     r.toBenefits(),
	}
}

type vehicleRequest struct {
	Name               string  `json:"name" validate:"required"`
	Status             string  `json:"status" validate:"omitempty,oneof=active reserve maintenance sold totaled"`
	MonthlyPayment     float64 `json:"monthly_payment" validate:"gte=0"`
	InsuranceMonthly   float64 `json:"insurance_monthly" validate:"gte=0"`
	FuelMonthly        float64 `json:"fuel_monthly" validate:"gte=0"`
	MaintenanceMonthly float64 `json:"maintenance_monthly" validate:"gte=0"`
	MarketValue        float64 `json:"market_value" validate:"gte=0"`
	LoanBalance        float64 `json:"loan_balance" validate:"gte=0"`
}

func (r vehicleRequest) toVehicle() pricing.Vehicle {
	return pricing.Vehicle{
		Name:               r.Name,
		Status:             r.Status,
		MonthlyPayment:     r.MonthlyPayment,
		InsuranceMonthly:   r.InsuranceMonthly,
		FuelMonthly:        r.FuelMonthly,
		MaintenanceMonthly: r.MaintenanceMonthly,
		MarketValue:        r.MarketValue,
		LoanBalance:        r.LoanBalance,
	}
}

type expenseCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type expenseItemRequest struct {
	Name      string  `json:"name" validate:"required"`
	Amount    float64 `json:"amount" validate:"gte=0"`
	Frequency string  `json:"frequency" validate:"required,oneof=monthly annual quarterly weekly one_time"`
}

func (r expenseItemRequest) toItem() pricing.ExpenseItem {
	return pricing.ExpenseItem{Name: r.Name, Amount: r.Amount, Frequency: pricing.Frequency(r.Frequency)}
}

type jobTypeRequest struct {
	Name                  string  `json:"name" validate:"required"`
	TargetGrossMargin     float64 `json:"target_gross_margin" validate:"gte=0,lt=100"`
	MaterialGrossMargin   float64 `json:"material_gross_margin" validate:"gte=0,lt=100"`
	MemberDiscountPercent float64 `json:"member_discount_percent" validate:"gte=0,lt=100"`
	MinHours              float64 `json:"min_hours" validate:"gte=0"`
	MaxHours              float64 `json:"max_hours" validate:"gtefield=MinHours"`
	FlatSurcharge         float64 `json:"flat_surcharge" validate:"gte=0"`
}

func (r jobTypeRequest) toJobType() pricing.JobType {
	return pricing.JobType{
		Name:                  r.Name,
		TargetGrossMargin:     r.TargetGrossMargin,
		MaterialGrossMargin:   r.MaterialGrossMargin,
		MemberDiscountPercent: r.MemberDiscountPercent,
		MinHours:              r.MinHours,
		MaxHours:              r.MaxHours,
		FlatSurcharge:         r.FlatSurcharge,
	}
}

// markupTierRequest leaves max_cost at 0 for the unbounded top tier.
type markupTierRequest struct {
	MinCost            float64 `json:"min_cost" validate:"gte=0"`
	MaxCost            float64 `json:"max_cost" validate:"gte=0"`
	GrossMarginPercent float64 `json:"gross_margin_percent" validate:"gte=0,lt=100"`
}

func (r markupTierRequest) toTier() pricing.MarkupTier {
	return pricing.MarkupTier{MinCost: r.MinCost, MaxCost: r.MaxCost, GrossMarginPercent: r.GrossMarginPercent}
}

func (r markupTierRequest) bounded() bool {
	return r.MaxCost == 0 || r.MaxCost > r.MinCost
}
