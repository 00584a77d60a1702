package pricing

// CategoryTotal is the monthly-equivalent spend of one expense category.
type CategoryTotal struct {
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Monthly    float64 `json:"monthly"`
}

// OverheadSummary is the organization's non-billable monthly cost and its allocation.
type OverheadSummary struct {
	ActiveStaffCount     int             `json:"activeStaffCount"`
	TotalStaffCostAnnual float64         `json:"totalStaffCostAnnual"`
	StaffCostMonthly     float64         `json:"staffCostMonthly"`
	MonthlyExpenses      float64         `json:"monthlyExpenses"`
	MonthlyOverhead      float64         `json:"monthlyOverhead"`
	AnnualOverhead       float64         `json:"annualOverhead"`
	OverheadPerHour      float64         `json:"overheadPerHour"`
	CategoryTotals       []CategoryTotal `json:"categoryTotals"`
}

// CalcOverhead sums active office staff cost and expense items into monthly overhead and
// allocates it over the given billable hours.
func CalcOverhead(staff []OfficeStaff, categories []ExpenseCategory, totalBillableHoursPerYear float64, rates StatutoryRates) (OverheadSummary, error) {
	ov := OverheadSummary{CategoryTotals: make([]CategoryTotal, 0, len(categories))}

	for _, s := range staff {
		if s.Status != StatusActive {
			continue
		}
		b := CalcBurden(BurdenInput{
			BasePay:            StaffBasePay(s),
			Benefits:           s.Benefits,
			WorkersCompPercent: rates.WorkersCompOfficePercent,
		}, rates)
		ov.ActiveStaffCount++
		ov.TotalStaffCostAnnual += b.TotalCostAnnual
	}

	for _, c := range categories {
		ct := CategoryTotal{CategoryID: c.ID, Name: c.Name}
		for _, item := range c.Items {
			monthly, err := CalcExpenseMonthly(item)
			if err != nil {
				return OverheadSummary{}, err
			}
			ct.Monthly += monthly
		}
		ov.MonthlyExpenses += ct.Monthly
		ov.CategoryTotals = append(ov.CategoryTotals, ct)
	}

	ov.StaffCostMonthly = ov.TotalStaffCostAnnual / 12
	ov.MonthlyOverhead = ov.MonthlyExpenses + ov.StaffCostMonthly
	ov.AnnualOverhead = ov.MonthlyOverhead * 12
	ov.OverheadPerHour = ratio(ov.AnnualOverhead, totalBillableHoursPerYear)

	return ov, nil
}
