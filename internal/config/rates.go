package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Simplici0/costbook/internal/pricing"
)

// ratesFile is the on-disk shape of the statutory rates file.
//
//	metadata:
//	  jurisdiction: US-TX
//	  data_year: 2025
//	rates:
//	  fica_percent: 7.65
//	  futa_percent: 0.6
//	  futa_wage_base: 7000
//	  ...
type ratesFile struct {
	Metadata struct {
		Jurisdiction string `yaml:"jurisdiction"`
		DataYear     int    `yaml:"data_year"`
	} `yaml:"metadata"`
	Rates pricing.StatutoryRates `yaml:"rates"`
}

// LoadStatutoryRates reads employer tax and insurance rates from a YAML file. Fields
// missing from the file keep their default values. An empty path returns the defaults.
func LoadStatutoryRates(path string) (pricing.StatutoryRates, error) {
	if path == "" {
		return pricing.DefaultStatutoryRates(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pricing.StatutoryRates{}, fmt.Errorf("read rates file %s: %w", path, err)
	}

	f := ratesFile{Rates: pricing.DefaultStatutoryRates()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return pricing.StatutoryRates{}, fmt.Errorf("parse rates file %s: %w", path, err)
	}

	if err := validateRates(f.Rates); err != nil {
		return pricing.StatutoryRates{}, fmt.Errorf("rates file %s: %w", path, err)
	}

	return f.Rates, nil
}

func validateRates(r pricing.StatutoryRates) error {
	percents := []struct {
		name  string
		value float64
	}{
		{"fica_percent", r.FICAPercent},
		{"futa_percent", r.FUTAPercent},
		{"suta_percent", r.SUTAPercent},
		{"workers_comp_field_percent", r.WorkersCompFieldPercent},
		{"workers_comp_office_percent", r.WorkersCompOfficePercent},
		{"retirement_match_cap_percent", r.RetirementMatchCap},
	}
	for _, p := range percents {
		if p.value < 0 || p.value > 100 {
			return fmt.Errorf("%s must be between 0 and 100, got %v", p.name, p.value)
		}
	}
	if r.FUTAWageBase < 0 {
		return fmt.Errorf("futa_wage_base must be non-negative")
	}
	if r.SUTAWageBase < 0 {
		return fmt.Errorf("suta_wage_base must be non-negative")
	}
	return nil
}
