package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Simplici0/costbook/internal/pricing"
)

func newRateCmd() *cobra.Command {
	var cost, margin float64

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Hourly sell rate for a loaded cost and target gross margin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cost < 0 {
				return fmt.Errorf("cost must be greater than or equal to 0, got %v", cost)
			}
			rate, err := pricing.CalcHourlyRate(cost, margin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded cost:  %s/hr\n", money(cost))
			fmt.Fprintf(cmd.OutOrStdout(), "Margin:       %s\n", percent(margin))
			fmt.Fprintf(cmd.OutOrStdout(), "Hourly rate:  %s/hr\n", money(rate))
			return nil
		},
	}

	cmd.Flags().Float64Var(&cost, "cost", 0, "Loaded cost per hour (required)")
	cmd.Flags().Float64Var(&margin, "margin", 0, "Target gross margin percent, 0 to <100 (required)")
	if err := cmd.MarkFlagRequired("cost"); err != nil {
		panic(fmt.Sprintf("failed to mark cost flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("margin"); err != nil {
		panic(fmt.Sprintf("failed to mark margin flag as required: %v", err))
	}
	return cmd
}

func newMarkupCmd() *cobra.Command {
	var margin float64

	cmd := &cobra.Command{
		Use:   "markup",
		Short: "Markup and cost multiplier equivalent to a gross margin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			markup, err := pricing.CalcMarkupFromMargin(margin)
			if err != nil {
				return err
			}
			multiplier, err := pricing.CalcMultiplierFromMargin(margin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Margin:      %s\n", percent(margin))
			fmt.Fprintf(cmd.OutOrStdout(), "Markup:      %s\n", percent(markup))
			fmt.Fprintf(cmd.OutOrStdout(), "Multiplier:  %.4fx\n", multiplier)
			return nil
		},
	}

	cmd.Flags().Float64Var(&margin, "margin", 0, "Gross margin percent, 0 to <100 (required)")
	if err := cmd.MarkFlagRequired("margin"); err != nil {
		panic(fmt.Sprintf("failed to mark margin flag as required: %v", err))
	}
	return cmd
}
