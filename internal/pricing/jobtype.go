package pricing

import "fmt"

// JobTypePricing is the rate card of one job type against a loaded cost per hour.
type JobTypePricing struct {
	JobTypeID          string  `json:"jobTypeId"`
	Name               string  `json:"name"`
	LoadedCostPerHour  float64 `json:"loadedCostPerHour"`
	HourlyRate         float64 `json:"hourlyRate"`
	MemberHourlyRate   float64 `json:"memberHourlyRate"`
	MaterialMultiplier float64 `json:"materialMultiplier"`
	MaterialMarkup     float64 `json:"materialMarkup"`
	MinPrice           float64 `json:"minPrice"`
	MaxPrice           float64 `json:"maxPrice"`
}

// PriceJobType builds the rate card of a job type.
func PriceJobType(jt JobType, loadedCostPerHour float64) (JobTypePricing, error) {
	rate, err := CalcHourlyRate(loadedCostPerHour, jt.TargetGrossMargin)
	if err != nil {
		return JobTypePricing{}, fmt.Errorf("job type %q target margin: %w", jt.Name, err)
	}
	if err := checkMargin(jt.MemberDiscountPercent); err != nil {
		return JobTypePricing{}, fmt.Errorf("job type %q member discount: %w", jt.Name, err)
	}
	multiplier, err := CalcMultiplierFromMargin(jt.MaterialGrossMargin)
	if err != nil {
		return JobTypePricing{}, fmt.Errorf("job type %q material margin: %w", jt.Name, err)
	}
	markup, err := CalcMarkupFromMargin(jt.MaterialGrossMargin)
	if err != nil {
		return JobTypePricing{}, fmt.Errorf("job type %q material margin: %w", jt.Name, err)
	}

	return JobTypePricing{
		JobTypeID:          jt.ID,
		Name:               jt.Name,
		LoadedCostPerHour:  loadedCostPerHour,
		HourlyRate:         rate,
		MemberHourlyRate:   rate * (1 - jt.MemberDiscountPercent/100.0),
		MaterialMultiplier: multiplier,
		MaterialMarkup:     markup,
		MinPrice:           rate*jt.MinHours + jt.FlatSurcharge,
		MaxPrice:           rate*jt.MaxHours + jt.FlatSurcharge,
	}, nil
}
