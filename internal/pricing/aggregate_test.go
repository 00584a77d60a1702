package pricing

import "testing"

func TestCalcFleet_ExcludesSoldAndTotaledFromCost(t *testing.T) {
	vehicles := []Vehicle{
		{ID: "1", Status: VehicleActive, MonthlyPayment: 500, InsuranceMonthly: 100, FuelMonthly: 300, MaintenanceMonthly: 50, MarketValue: 30000, LoanBalance: 20000},
		{ID: "2", Status: VehicleReserve, MonthlyPayment: 200, InsuranceMonthly: 80, MarketValue: 10000},
		{ID: "3", Status: VehicleMaintenance, MaintenanceMonthly: 400, MarketValue: 8000, LoanBalance: 9000},
		{ID: "4", Status: VehicleSold, MonthlyPayment: 999, MarketValue: 5000},
		{ID: "5", Status: VehicleTotaled, FuelMonthly: 999, LoanBalance: 2000},
	}

	fs := CalcFleet(vehicles, 4160)

	nearlyEqual(t, "payments", fs.Metrics.TotalPayments, 700)
	nearlyEqual(t, "insurance", fs.Metrics.TotalInsurance, 180)
	nearlyEqual(t, "fuel", fs.Metrics.TotalFuel, 300)
	nearlyEqual(t, "maintenance", fs.Metrics.TotalMaintenance, 450)
	nearlyEqual(t, "fleetCostMonthly", fs.FleetCostMonthly, 1630)
	nearlyEqual(t, "fleetCostPerHour", fs.FleetCostPerHour, 1630*12/4160.0)
	nearlyEqual(t, "totalEquity", fs.TotalEquity, 10000+10000-1000+5000-2000)
	if fs.ActiveVehicleCount != 3 {
		t.Fatalf("expected 3 cost-bearing vehicles, got %d", fs.ActiveVehicleCount)
	}
}

func TestCalcFleet_ZeroHours(t *testing.T) {
	fs := CalcFleet([]Vehicle{{Status: VehicleActive, MonthlyPayment: 100}}, 0)
	nearlyEqual(t, "fleetCostPerHour", fs.FleetCostPerHour, 0)
}

func TestCalcOverhead_StaffAndExpenses(t *testing.T) {
	rates := StatutoryRates{}
	staff := []OfficeStaff{
		{ID: "s1", PayType: PayTypeSalary, AnnualSalary: 48000, Status: StatusActive, Benefits: Benefits{HealthMonthly: 100}},
		{ID: "s2", PayType: PayTypeHourly, BasePayRate: 20, HoursPerWeek: 40, Status: StatusActive},
		{ID: "s3", PayType: PayTypeSalary, AnnualSalary: 90000, Status: StatusInactive},
	}
	categories := []ExpenseCategory{
		{ID: "c1", Name: "Facilities", Items: []ExpenseItem{
			{Name: "Rent", Amount: 3000, Frequency: FrequencyMonthly},
			{Name: "Insurance", Amount: 6000, Frequency: FrequencyAnnual},
		}},
		{ID: "c2", Name: "Marketing", Items: []ExpenseItem{
			{Name: "Mailers", Amount: 1200, Frequency: FrequencyQuarterly},
		}},
	}

	ov, err := CalcOverhead(staff, categories, 2080, rates)
	if err != nil {
		t.Fatalf("CalcOverhead: %v", err)
	}

	staffAnnual := 48000.0 + 1200 + 41600
	nearlyEqual(t, "totalStaffCostAnnual", ov.TotalStaffCostAnnual, staffAnnual)
	nearlyEqual(t, "monthlyExpenses", ov.MonthlyExpenses, 3000+500+400)
	nearlyEqual(t, "monthlyOverhead", ov.MonthlyOverhead, 3900+staffAnnual/12)
	nearlyEqual(t, "overheadPerHour", ov.OverheadPerHour, (3900+staffAnnual/12)*12/2080)
	if ov.ActiveStaffCount != 2 {
		t.Fatalf("expected 2 active staff, got %d", ov.ActiveStaffCount)
	}
	if len(ov.CategoryTotals) != 2 {
		t.Fatalf("expected 2 category totals, got %d", len(ov.CategoryTotals))
	}
	nearlyEqual(t, "facilities", ov.CategoryTotals[0].Monthly, 3500)
}

func TestCalcOverhead_ZeroHours(t *testing.T) {
	ov, err := CalcOverhead(nil, []ExpenseCategory{{Items: []ExpenseItem{{Amount: 100, Frequency: FrequencyMonthly}}}}, 0, StatutoryRates{})
	if err != nil {
		t.Fatalf("CalcOverhead: %v", err)
	}
	nearlyEqual(t, "monthlyOverhead", ov.MonthlyOverhead, 100)
	nearlyEqual(t, "overheadPerHour", ov.OverheadPerHour, 0)
}
