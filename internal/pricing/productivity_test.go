package pricing

import "testing"

func TestCalcProductivity_NoUnproductiveTime(t *testing.T) {
	p := CalcProductivity(8, 5, nil)

	nearlyEqual(t, "billableHoursPerDay", p.BillableHoursPerDay, 8)
	nearlyEqual(t, "billableHoursPerYear", p.BillableHoursPerYear, 2080)
	nearlyEqual(t, "efficiencyPercent", p.EfficiencyPercent, 100)
	if p.Clamped {
		t.Fatal("did not expect clamp")
	}
}

func TestCalcProductivity_PaidAndUnpaidEntries(t *testing.T) {
	entries := []UnproductiveTimeEntry{
		{Name: "Shop meeting", HoursPerDay: 0.5, IsPaid: true},
		{Name: "Drive time", HoursPerDay: 1.5, IsPaid: true},
		{Name: "Lunch", HoursPerDay: 1, IsPaid: false},
	}
	p := CalcProductivity(8, 5, entries)

	nearlyEqual(t, "paidUnproductive", p.PaidUnproductiveHours, 2)
	nearlyEqual(t, "unpaid", p.UnpaidHours, 1)
	nearlyEqual(t, "billableHoursPerDay", p.BillableHoursPerDay, 6)
	nearlyEqual(t, "billableHoursPerYear", p.BillableHoursPerYear, 6*5*52)
	nearlyEqual(t, "efficiencyPercent", p.EfficiencyPercent, 75)
}

func TestCalcProductivity_ClampsAtZero(t *testing.T) {
	entries := []UnproductiveTimeEntry{{Name: "Training", HoursPerDay: 10, IsPaid: true}}
	p := CalcProductivity(8, 5, entries)

	nearlyEqual(t, "billableHoursPerDay", p.BillableHoursPerDay, 0)
	nearlyEqual(t, "billableHoursPerYear", p.BillableHoursPerYear, 0)
	nearlyEqual(t, "efficiencyPercent", p.EfficiencyPercent, 0)
	if !p.Clamped {
		t.Fatal("expected clamp flag")
	}
}

func TestCalcProductivity_ZeroPaidHours(t *testing.T) {
	p := CalcProductivity(0, 5, nil)
	nearlyEqual(t, "efficiencyPercent", p.EfficiencyPercent, 0)
}

func TestCalcProductivity_NegativeEntryHoursCountAsZero(t *testing.T) {
	entries := []UnproductiveTimeEntry{
		{Name: "Bad paid entry", HoursPerDay: -3, IsPaid: true},
		{Name: "Bad unpaid entry", HoursPerDay: -1, IsPaid: false},
		{Name: "Drive time", HoursPerDay: 1, IsPaid: true},
	}
	p := CalcProductivity(8, 5, entries)

	nearlyEqual(t, "paidUnproductive", p.PaidUnproductiveHours, 1)
	nearlyEqual(t, "unpaid", p.UnpaidHours, 0)
	nearlyEqual(t, "billableHoursPerDay", p.BillableHoursPerDay, 7)
	if p.EfficiencyPercent > 100 {
		t.Fatalf("efficiency must not exceed 100%%, got %v", p.EfficiencyPercent)
	}
}
