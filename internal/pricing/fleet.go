package pricing

// FleetMetrics sums the monthly cost fields of the vehicles carried by the business.
type FleetMetrics struct {
	TotalPayments    float64 `json:"totalPayments"`
	TotalInsurance   float64 `json:"totalInsurance"`
	TotalFuel        float64 `json:"totalFuel"`
	TotalMaintenance float64 `json:"totalMaintenance"`
}

// FleetSummary is the aggregate fleet cost and its allocation per billable hour.
type FleetSummary struct {
	Metrics            FleetMetrics `json:"metrics"`
	ActiveVehicleCount int          `json:"activeVehicleCount"`
	FleetCostMonthly   float64      `json:"fleetCostMonthly"`
	FleetCostAnnual    float64      `json:"fleetCostAnnual"`
	FleetCostPerHour   float64      `json:"fleetCostPerHour"`
	TotalMarketValue   float64      `json:"totalMarketValue"`
	TotalLoanBalance   float64      `json:"totalLoanBalance"`
	TotalEquity        float64      `json:"totalEquity"`
}

// CalcFleet aggregates vehicle costs. Sold and totaled vehicles are excluded from cost
// but every vehicle counts toward equity.
func CalcFleet(vehicles []Vehicle, totalBillableHoursPerYear float64) FleetSummary {
	var fs FleetSummary
	for _, v := range vehicles {
		fs.TotalMarketValue += v.MarketValue
		fs.TotalLoanBalance += v.LoanBalance
		fs.TotalEquity += v.MarketValue - v.LoanBalance

		if !v.CountsTowardFleetCost() {
			continue
		}
		fs.ActiveVehicleCount++
		fs.Metrics.TotalPayments += v.MonthlyPayment
		fs.Metrics.TotalInsurance += v.InsuranceMonthly
		fs.Metrics.TotalFuel += v.FuelMonthly
		fs.Metrics.TotalMaintenance += v.MaintenanceMonthly
	}

	fs.FleetCostMonthly = fs.Metrics.TotalPayments + fs.Metrics.TotalInsurance +
		fs.Metrics.TotalFuel + fs.Metrics.TotalMaintenance
	fs.FleetCostAnnual = fs.FleetCostMonthly * 12
	fs.FleetCostPerHour = ratio(fs.FleetCostAnnual, totalBillableHoursPerYear)

	return fs
}
