package pricing

import (
	"fmt"
	"math"
)

func checkMargin(margin float64) error {
	if math.IsNaN(margin) || margin < 0 || margin >= 100 {
		return fmt.Errorf("%w: %v (must be in [0, 100))", ErrInvalidMargin, margin)
	}
	return nil
}

// CalcHourlyRate returns the sell rate that yields marginPercent gross margin over loadedCost.
func CalcHourlyRate(loadedCost, marginPercent float64) (float64, error) {
	if err := checkMargin(marginPercent); err != nil {
		return 0, err
	}
	return loadedCost / (1 - marginPercent/100.0), nil
}

// CalcMarkupFromMargin converts a gross margin percentage to the equivalent markup on cost.
func CalcMarkupFromMargin(margin float64) (float64, error) {
	if err := checkMargin(margin); err != nil {
		return 0, err
	}
	return margin / (100 - margin) * 100, nil
}

// CalcMultiplierFromMargin returns the cost multiplier that yields the given gross margin.
func CalcMultiplierFromMargin(margin float64) (float64, error) {
	if err := checkMargin(margin); err != nil {
		return 0, err
	}
	return 1 / (1 - margin/100.0), nil
}

// CalcMarginFromMarkup is the inverse of CalcMarkupFromMargin.
func CalcMarginFromMarkup(markup float64) (float64, error) {
	if math.IsNaN(markup) || math.IsInf(markup, 0) || markup < 0 {
		return 0, fmt.Errorf("%w: markup %v must be non-negative", ErrInvalidMargin, markup)
	}
	return markup / (100 + markup) * 100, nil
}
