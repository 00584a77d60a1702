package pricing

import "fmt"

const (
	LevelWarning = "WARNING"

	CodeUnproductiveExceedsPaid = "UNPRODUCTIVE_EXCEEDS_PAID"
	CodeMissingVehicle          = "ASSIGNED_VEHICLE_NOT_FOUND"
)

// Warning is a data-quality note raised during a calculation. Warnings never fail it.
type Warning struct {
	Level   string `json:"level"`
	Code    string `json:"code"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// CalculationResults is the derived financial summary of one snapshot.
type CalculationResults struct {
	// Workforce
	TechCount                 int                 `json:"techCount"`
	TotalBillableHoursPerYear float64             `json:"totalBillableHoursPerYear"`
	TotalTechCostAnnual       float64             `json:"totalTechCostAnnual"`
	AvgTrueCostPerHour        float64             `json:"avgTrueCostPerHour"`
	AvgTechLoadedCostPerHour  float64             `json:"avgTechLoadedCostPerHour"`
	AvgBurdenPercent          float64             `json:"avgBurdenPercent"`
	AvgEfficiencyPercent      float64             `json:"avgEfficiencyPercent"`
	Technicians               []TechnicianMetrics `json:"technicians"`

	// Fleet
	Fleet              FleetMetrics `json:"fleet"`
	ActiveVehicleCount int          `json:"activeVehicleCount"`
	FleetCostMonthly   float64      `json:"fleetCostMonthly"`
	FleetCostAnnual    float64      `json:"fleetCostAnnual"`
	FleetCostPerHour   float64      `json:"fleetCostPerHour"`
	TotalMarketValue   float64      `json:"totalMarketValue"`
	TotalLoanBalance   float64      `json:"totalLoanBalance"`
	TotalEquity        float64      `json:"totalEquity"`

	// Overhead
	ActiveStaffCount     int             `json:"activeStaffCount"`
	TotalStaffCostAnnual float64         `json:"totalStaffCostAnnual"`
	StaffCostMonthly     float64         `json:"staffCostMonthly"`
	MonthlyExpenses      float64         `json:"monthlyExpenses"`
	MonthlyOverhead      float64         `json:"monthlyOverhead"`
	AnnualOverhead       float64         `json:"annualOverhead"`
	OverheadPerHour      float64         `json:"overheadPerHour"`
	ExpenseCategories    []CategoryTotal `json:"expenseCategories"`

	// Rate build
	AvgLoadedCostPerHour  float64          `json:"avgLoadedCostPerHour"`
	RecommendedHourlyRate float64          `json:"recommendedHourlyRate"`
	JobTypes              []JobTypePricing `json:"jobTypes"`

	// P&L and break-even
	ProjectedRevenue      float64 `json:"projectedRevenue"`
	MaterialsCost         float64 `json:"materialsCost"`
	GrossProfit           float64 `json:"grossProfit"`
	GrossMarginPercent    float64 `json:"grossMarginPercent"`
	NetProfit             float64 `json:"netProfit"`
	NetMarginPercent      float64 `json:"netMarginPercent"`
	BreakEvenAnnual       float64 `json:"breakEvenAnnual"`
	BreakEvenMonthly      float64 `json:"breakEvenMonthly"`
	BreakEvenDaily        float64 `json:"breakEvenDaily"`
	RevenuePerTechAnnual  float64 `json:"revenuePerTechAnnual"`
	RevenuePerTechMonthly float64 `json:"revenuePerTechMonthly"`

	Warnings []Warning `json:"warnings"`
}

// CalcFullSummary derives the full financial summary of a snapshot. Only active
// technicians and office staff participate. The only errors are ErrInvalidFrequency
// and ErrInvalidMargin; every empty-input ratio resolves to 0.
func CalcFullSummary(in Snapshot) (CalculationResults, error) {
	rates := in.Settings.Statutory
	res := CalculationResults{
		Technicians: make([]TechnicianMetrics, 0, len(in.Technicians)),
		JobTypes:    make([]JobTypePricing, 0, len(in.JobTypes)),
		Warnings:    []Warning{},
	}

	var sumTrue, sumLoaded, sumBurden, sumEfficiency float64
	for _, t := range in.Technicians {
		if t.Status != StatusActive {
			continue
		}
		vehicle := FindVehicle(in.Vehicles, t.AssignedVehicleID)
		if vehicle == nil && t.AssignedVehicleID != "" {
			res.Warnings = append(res.Warnings, Warning{
				Level:   LevelWarning,
				Code:    CodeMissingVehicle,
				Subject: t.ID,
				Message: fmt.Sprintf("Technician %s is assigned to unknown vehicle %s", t.Name, t.AssignedVehicleID),
			})
		}

		m := CalcTechnicianMetrics(t, in.UnproductiveTime[t.ID], vehicle, rates)
		if m.Productivity.Clamped {
			res.Warnings = append(res.Warnings, Warning{
				Level:   LevelWarning,
				Code:    CodeUnproductiveExceedsPaid,
				Subject: t.ID,
				Message: fmt.Sprintf("Paid unproductive time for %s exceeds paid hours; billable hours clamped to 0", t.Name),
			})
		}

		res.Technicians = append(res.Technicians, m)
		res.TotalBillableHoursPerYear += m.BillableHoursPerYear
		res.TotalTechCostAnnual += m.TotalCostAnnual
		sumTrue += m.TrueCostPerHour
		sumLoaded += m.LoadedCostPerHour
		sumBurden += m.BurdenPercent
		sumEfficiency += m.EfficiencyPercent
	}

	res.TechCount = len(res.Technicians)
	n := float64(res.TechCount)
	res.AvgTrueCostPerHour = ratio(sumTrue, n)
	res.AvgTechLoadedCostPerHour = ratio(sumLoaded, n)
	res.AvgBurdenPercent = ratio(sumBurden, n)
	res.AvgEfficiencyPercent = ratio(sumEfficiency, n)

	fleet := CalcFleet(in.Vehicles, res.TotalBillableHoursPerYear)
	res.Fleet = fleet.Metrics
	res.ActiveVehicleCount = fleet.ActiveVehicleCount
	res.FleetCostMonthly = fleet.FleetCostMonthly
	res.FleetCostAnnual = fleet.FleetCostAnnual
	res.FleetCostPerHour = fleet.FleetCostPerHour
	res.TotalMarketValue = fleet.TotalMarketValue
	res.TotalLoanBalance = fleet.TotalLoanBalance
	res.TotalEquity = fleet.TotalEquity

	overhead, err := CalcOverhead(in.OfficeStaff, in.ExpenseCategories, res.TotalBillableHoursPerYear, rates)
	if err != nil {
		return CalculationResults{}, err
	}
	res.ActiveStaffCount = overhead.ActiveStaffCount
	res.TotalStaffCostAnnual = overhead.TotalStaffCostAnnual
	res.StaffCostMonthly = overhead.StaffCostMonthly
	res.MonthlyExpenses = overhead.MonthlyExpenses
	res.MonthlyOverhead = overhead.MonthlyOverhead
	res.AnnualOverhead = overhead.AnnualOverhead
	res.OverheadPerHour = overhead.OverheadPerHour
	res.ExpenseCategories = overhead.CategoryTotals

	res.AvgLoadedCostPerHour = res.AvgTrueCostPerHour + res.FleetCostPerHour + res.OverheadPerHour
	if res.RecommendedHourlyRate, err = CalcHourlyRate(res.AvgLoadedCostPerHour, in.Settings.DefaultTargetMargin); err != nil {
		return CalculationResults{}, fmt.Errorf("default target margin: %w", err)
	}
	for _, jt := range in.JobTypes {
		p, err := PriceJobType(jt, res.AvgLoadedCostPerHour)
		if err != nil {
			return CalculationResults{}, err
		}
		res.JobTypes = append(res.JobTypes, p)
	}

	res.ProjectedRevenue = in.Settings.ProjectedRevenue()
	res.MaterialsCost = res.ProjectedRevenue * in.Settings.MaterialCostPercent / 100.0
	res.GrossProfit = res.ProjectedRevenue - res.MaterialsCost - res.TotalTechCostAnnual
	res.GrossMarginPercent = ratio(res.GrossProfit, res.ProjectedRevenue) * 100
	res.NetProfit = res.GrossProfit - res.AnnualOverhead
	res.NetMarginPercent = ratio(res.NetProfit, res.ProjectedRevenue) * 100

	if res.GrossMarginPercent > 0 {
		res.BreakEvenAnnual = (res.TotalTechCostAnnual + res.AnnualOverhead) / (res.GrossMarginPercent / 100.0)
	}
	res.BreakEvenMonthly = res.BreakEvenAnnual / 12
	res.BreakEvenDaily = res.BreakEvenAnnual / 365

	res.RevenuePerTechAnnual = ratio(res.ProjectedRevenue, n)
	res.RevenuePerTechMonthly = res.RevenuePerTechAnnual / 12

	return res, nil
}

// TechnicianMetricsByID computes the metrics of a single technician regardless of status.
func TechnicianMetricsByID(in Snapshot, id string) (TechnicianMetrics, bool) {
	for _, t := range in.Technicians {
		if t.ID != id {
			continue
		}
		vehicle := FindVehicle(in.Vehicles, t.AssignedVehicleID)
		return CalcTechnicianMetrics(t, in.UnproductiveTime[t.ID], vehicle, in.Settings.Statutory), true
	}
	return TechnicianMetrics{}, false
}
