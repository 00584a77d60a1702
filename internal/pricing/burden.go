package pricing

import "math"

// StatutoryRates holds the jurisdiction-specific employer rates used by CalcBurden.
// Percentages are expressed as 0-100. A wage base or match cap of 0 means uncapped.
type StatutoryRates struct {
	FICAPercent              float64 `json:"fica_percent" yaml:"fica_percent"`
	FUTAPercent              float64 `json:"futa_percent" yaml:"futa_percent"`
	FUTAWageBase             float64 `json:"futa_wage_base" yaml:"futa_wage_base"`
	SUTAPercent              float64 `json:"suta_percent" yaml:"suta_percent"`
	SUTAWageBase             float64 `json:"suta_wage_base" yaml:"suta_wage_base"`
	WorkersCompFieldPercent  float64 `json:"workers_comp_field_percent" yaml:"workers_comp_field_percent"`
	WorkersCompOfficePercent float64 `json:"workers_comp_office_percent" yaml:"workers_comp_office_percent"`
	RetirementMatchCap       float64 `json:"retirement_match_cap_percent" yaml:"retirement_match_cap_percent"`
}

// DefaultStatutoryRates returns the US federal baseline used when no rates file is configured.
func DefaultStatutoryRates() StatutoryRates {
	return StatutoryRates{
		FICAPercent:              7.65,
		FUTAPercent:              0.6,
		FUTAWageBase:             7000,
		SUTAPercent:              2.7,
		SUTAWageBase:             7000,
		WorkersCompFieldPercent:  5,
		WorkersCompOfficePercent: 0.5,
		RetirementMatchCap:       4,
	}
}

// BurdenInput is one compensated person's pay and benefit inputs.
type BurdenInput struct {
	BasePay float64
	Benefits
	WorkersCompPercent float64
}

// BurdenBreakdown contains every employer-side cost layered on top of base pay, annualized.
type BurdenBreakdown struct {
	BasePay         float64 `json:"basePay"`
	PayrollTaxes    float64 `json:"payrollTaxes"`
	FUTA            float64 `json:"futa"`
	SUTA            float64 `json:"suta"`
	WorkersComp     float64 `json:"workersComp"`
	HealthAnnual    float64 `json:"healthAnnual"`
	DentalAnnual    float64 `json:"dentalAnnual"`
	VisionAnnual    float64 `json:"visionAnnual"`
	LifeAnnual      float64 `json:"lifeAnnual"`
	OtherAnnual     float64 `json:"otherAnnual"`
	Retirement      float64 `json:"retirement"`
	TotalBurden     float64 `json:"totalBurden"`
	TotalCostAnnual float64 `json:"totalCostAnnual"`
	BurdenPercent   float64 `json:"burdenPercent"`
}

// TechnicianBasePay annualizes a technician's hourly pay.
func TechnicianBasePay(t Technician) float64 {
	return nonNegative(t.HourlyRate * t.PaidHoursPerDay * t.WorkDaysPerWeek * 52)
}

// StaffBasePay returns the annual salary, or annualizes hourly pay for hourly staff.
func StaffBasePay(s OfficeStaff) float64 {
	if s.PayType == PayTypeHourly {
		return nonNegative(s.BasePayRate * s.HoursPerWeek * 52)
	}
	return nonNegative(s.AnnualSalary)
}

// CalcBurden computes the annual burden breakdown for one person.
func CalcBurden(in BurdenInput, rates StatutoryRates) BurdenBreakdown {
	base := nonNegative(in.BasePay)

	b := BurdenBreakdown{
		BasePay:      base,
		PayrollTaxes: base * pct(rates.FICAPercent),
		FUTA:         capped(base, rates.FUTAWageBase) * pct(rates.FUTAPercent),
		SUTA:         capped(base, rates.SUTAWageBase) * pct(rates.SUTAPercent),
		WorkersComp:  base * pct(in.WorkersCompPercent),
		HealthAnnual: nonNegative(in.HealthMonthly) * 12,
		DentalAnnual: nonNegative(in.DentalMonthly) * 12,
		VisionAnnual: nonNegative(in.VisionMonthly) * 12,
		LifeAnnual:   nonNegative(in.LifeMonthly) * 12,
		OtherAnnual:  nonNegative(in.OtherMonthly) * 12,
	}

	match := in.RetirementMatchPercent
	if rates.RetirementMatchCap > 0 {
		match = math.Min(match, rates.RetirementMatchCap)
	}
	b.Retirement = base * pct(match)

	b.TotalBurden = b.PayrollTaxes + b.FUTA + b.SUTA + b.WorkersComp +
		b.HealthAnnual + b.DentalAnnual + b.VisionAnnual + b.LifeAnnual + b.OtherAnnual +
		b.Retirement
	b.TotalCostAnnual = base + b.TotalBurden
	b.BurdenPercent = ratio(b.TotalBurden, base) * 100

	return b
}

// pct converts a 0-100 percentage to a non-negative fraction.
func pct(p float64) float64 {
	return nonNegative(p) / 100.0
}

func capped(base, wageBase float64) float64 {
	if wageBase > 0 && base > wageBase {
		return wageBase
	}
	return base
}
