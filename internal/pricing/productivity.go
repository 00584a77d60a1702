package pricing

// Productivity describes how much of a technician's paid day is billable.
type Productivity struct {
	PaidUnproductiveHours float64 `json:"paidUnproductiveHours"`
	UnpaidHours           float64 `json:"unpaidHours"`
	BillableHoursPerDay   float64 `json:"billableHoursPerDay"`
	BillableHoursPerYear  float64 `json:"billableHoursPerYear"`
	EfficiencyPercent     float64 `json:"efficiencyPercent"`
	// Clamped is set when paid unproductive time exceeded paid hours and
	// billable hours were floored at zero.
	Clamped bool `json:"clamped"`
}

// CalcProductivity derives billable hours and efficiency from a schedule and its
// unproductive-time entries. Negative entry hours count as zero.
func CalcProductivity(paidHoursPerDay, workDaysPerWeek float64, entries []UnproductiveTimeEntry) Productivity {
	var p Productivity
	for _, e := range entries {
		hours := nonNegative(e.HoursPerDay)
		if e.IsPaid {
			p.PaidUnproductiveHours += hours
		} else {
			p.UnpaidHours += hours
		}
	}

	p.BillableHoursPerDay = paidHoursPerDay - p.PaidUnproductiveHours
	if p.BillableHoursPerDay < 0 {
		p.BillableHoursPerDay = 0
		p.Clamped = true
	}
	p.BillableHoursPerYear = p.BillableHoursPerDay * workDaysPerWeek * 52
	if paidHoursPerDay > 0 {
		p.EfficiencyPercent = p.BillableHoursPerDay / paidHoursPerDay * 100
	}

	return p
}
