package pricing

import (
	"errors"
	"math"
	"testing"
)

func TestCalcExpenseMonthly_UnknownFrequency(t *testing.T) {
	_, err := CalcExpenseMonthly(ExpenseItem{Name: "Rent", Amount: 100, Frequency: "biweekly"})
	if !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("expected ErrInvalidFrequency, got %v", err)
	}

	if Frequency("biweekly").Valid() {
		t.Fatal("biweekly should not be valid")
	}
	if !FrequencyOneTime.Valid() {
		t.Fatal("one_time should be valid")
	}
}

func TestCalcHourlyRate_MarginAtOrAbove100(t *testing.T) {
	for _, margin := range []float64{100, 150, -1, math.NaN()} {
		if _, err := CalcHourlyRate(50, margin); !errors.Is(err, ErrInvalidMargin) {
			t.Fatalf("margin %v: expected ErrInvalidMargin, got %v", margin, err)
		}
	}
}

func TestMarkupAndMultiplier_RejectOutOfDomain(t *testing.T) {
	if _, err := CalcMarkupFromMargin(100); !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("markup: expected ErrInvalidMargin, got %v", err)
	}
	if _, err := CalcMultiplierFromMargin(100); !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("multiplier: expected ErrInvalidMargin, got %v", err)
	}
	if _, err := CalcMarginFromMarkup(-5); !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("margin from markup: expected ErrInvalidMargin, got %v", err)
	}
}

func TestCalcFullSummary_PropagatesInvalidFrequency(t *testing.T) {
	_, err := CalcFullSummary(Snapshot{
		ExpenseCategories: []ExpenseCategory{{
			Name:  "Office",
			Items: []ExpenseItem{{Name: "Coffee", Amount: 10, Frequency: "daily"}},
		}},
	})
	if !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("expected ErrInvalidFrequency, got %v", err)
	}
}

func TestCalcFullSummary_PropagatesInvalidMargin(t *testing.T) {
	_, err := CalcFullSummary(Snapshot{
		JobTypes: []JobType{{Name: "Repair", TargetGrossMargin: 100}},
	})
	if !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("expected ErrInvalidMargin, got %v", err)
	}

	_, err = CalcFullSummary(Snapshot{Settings: OrganizationSettings{DefaultTargetMargin: 120}})
	if !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("expected ErrInvalidMargin for default margin, got %v", err)
	}
}
