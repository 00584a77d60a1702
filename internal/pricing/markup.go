package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaterialPrice is the sell price of one material cost under its markup tier.
type MaterialPrice struct {
	Cost               float64    `json:"cost"`
	Tier               MarkupTier `json:"tier"`
	GrossMarginPercent float64    `json:"grossMarginPercent"`
	MarkupPercent      float64    `json:"markupPercent"`
	Multiplier         float64    `json:"multiplier"`
	SellPrice          float64    `json:"sellPrice"`
}

// SelectMarkupTier returns the first tier with MinCost <= cost < MaxCost.
func SelectMarkupTier(tiers []MarkupTier, cost float64) (MarkupTier, bool) {
	for _, t := range tiers {
		if cost < t.MinCost {
			continue
		}
		if t.MaxCost > 0 && cost >= t.MaxCost {
			continue
		}
		return t, true
	}
	return MarkupTier{}, false
}

// PriceMaterial prices a material cost using the tier that covers it. The sell price is
// rounded to cents.
func PriceMaterial(tiers []MarkupTier, cost float64) (MaterialPrice, error) {
	tier, ok := SelectMarkupTier(tiers, cost)
	if !ok {
		return MaterialPrice{}, fmt.Errorf("%w: %v", ErrNoMarkupTier, cost)
	}

	multiplier, err := CalcMultiplierFromMargin(tier.GrossMarginPercent)
	if err != nil {
		return MaterialPrice{}, fmt.Errorf("tier %s: %w", tier.ID, err)
	}
	markup, err := CalcMarkupFromMargin(tier.GrossMarginPercent)
	if err != nil {
		return MaterialPrice{}, fmt.Errorf("tier %s: %w", tier.ID, err)
	}

	sell := decimal.NewFromFloat(cost).Mul(decimal.NewFromFloat(multiplier)).Round(2)

	return MaterialPrice{
		Cost:               cost,
		Tier:               tier,
		GrossMarginPercent: tier.GrossMarginPercent,
		MarkupPercent:      markup,
		Multiplier:         multiplier,
		SellPrice:          sell.InexactFloat64(),
	}, nil
}
