package pricing

// TechnicianMetrics is the derived cost profile of one technician.
type TechnicianMetrics struct {
	TechnicianID         string          `json:"technicianId"`
	Name                 string          `json:"name"`
	BurdenPercent        float64         `json:"burdenPercent"`
	EfficiencyPercent    float64         `json:"efficiencyPercent"`
	TrueCostPerHour      float64         `json:"trueCostPerHour"`
	LoadedCostPerHour    float64         `json:"loadedCostPerHour"`
	TotalBurden          float64         `json:"totalBurden"`
	TotalCostAnnual      float64         `json:"totalCostAnnual"`
	BillableHoursPerDay  float64         `json:"billableHoursPerDay"`
	BillableHoursPerYear float64         `json:"billableHoursPerYear"`
	VehicleMonthlyCost   float64         `json:"vehicleMonthlyCost"`
	VehicleCostPerHour   float64         `json:"vehicleCostPerHour"`
	Breakdown            BurdenBreakdown `json:"breakdown"`
	Productivity         Productivity    `json:"productivity"`
}

// CalcTechnicianMetrics builds the metrics of one technician. vehicle is the assigned
// vehicle, or nil when none is assigned. Organization-wide overhead is not included.
func CalcTechnicianMetrics(t Technician, entries []UnproductiveTimeEntry, vehicle *Vehicle, rates StatutoryRates) TechnicianMetrics {
	burden := CalcBurden(BurdenInput{
		BasePay:            TechnicianBasePay(t),
		Benefits:           t.Benefits,
		WorkersCompPercent: rates.WorkersCompFieldPercent,
	}, rates)
	prod := CalcProductivity(t.PaidHoursPerDay, t.WorkDaysPerWeek, entries)

	m := TechnicianMetrics{
		TechnicianID:         t.ID,
		Name:                 t.Name,
		BurdenPercent:        burden.BurdenPercent,
		EfficiencyPercent:    prod.EfficiencyPercent,
		TotalBurden:          burden.TotalBurden,
		TotalCostAnnual:      burden.TotalCostAnnual,
		BillableHoursPerDay:  prod.BillableHoursPerDay,
		BillableHoursPerYear: prod.BillableHoursPerYear,
		Breakdown:            burden,
		Productivity:         prod,
	}

	if vehicle != nil {
		m.VehicleMonthlyCost = vehicle.MonthlyCost()
	}
	m.VehicleCostPerHour = ratio(m.VehicleMonthlyCost*12, m.BillableHoursPerYear)
	m.TrueCostPerHour = ratio(m.TotalCostAnnual, m.BillableHoursPerYear)
	m.LoadedCostPerHour = m.TrueCostPerHour + m.VehicleCostPerHour

	return m
}

// FindVehicle returns the vehicle with the given id, or nil.
func FindVehicle(vehicles []Vehicle, id string) *Vehicle {
	if id == "" {
		return nil
	}
	for i := range vehicles {
		if vehicles[i].ID == id {
			v := vehicles[i]
			return &v
		}
	}
	return nil
}
