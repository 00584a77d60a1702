package pricing

import "errors"

var (
	// ErrInvalidFrequency is returned when an expense frequency is outside the known set.
	ErrInvalidFrequency = errors.New("invalid frequency")
	// ErrInvalidMargin is returned for margin or discount percentages outside [0, 100).
	ErrInvalidMargin = errors.New("invalid margin")
	// ErrNoMarkupTier is returned when no markup tier covers a material cost.
	ErrNoMarkupTier = errors.New("no markup tier for cost")
)
