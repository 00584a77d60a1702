package pricing

import "fmt"

// Frequency tags how often an expense recurs.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyAnnual    Frequency = "annual"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyOneTime   Frequency = "one_time"
)

// Valid reports whether f is one of the recognized frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyMonthly, FrequencyAnnual, FrequencyQuarterly, FrequencyWeekly, FrequencyOneTime:
		return true
	}
	return false
}

// MonthlyAmount converts amount at the given frequency to its monthly equivalent.
// One-time amounts are amortized over twelve months.
func MonthlyAmount(amount float64, freq Frequency) (float64, error) {
	switch freq {
	case FrequencyMonthly:
		return amount, nil
	case FrequencyAnnual, FrequencyOneTime:
		return amount / 12, nil
	case FrequencyQuarterly:
		return amount / 3, nil
	case FrequencyWeekly:
		return amount * 52 / 12, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, string(freq))
}

// CalcExpenseMonthly returns the monthly-equivalent cost of one expense item.
func CalcExpenseMonthly(item ExpenseItem) (float64, error) {
	monthly, err := MonthlyAmount(item.Amount, item.Frequency)
	if err != nil {
		if item.Name != "" {
			return 0, fmt.Errorf("expense %q: %w", item.Name, err)
		}
		return 0, err
	}
	return monthly, nil
}
