// Command costcalc prints labor cost, hourly rate and markup figures from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Simplici0/costbook/internal/config"
)

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "costcalc",
		Short:         "Field-service cost and pricing calculator",
		Long:          "costcalc derives burdened labor cost, fleet and overhead recovery, break-even revenue and recommended rates from the costbook database or a JSON snapshot.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSummaryCmd(cfg))
	root.AddCommand(newRateCmd())
	root.AddCommand(newMarkupCmd())
	return root
}

func main() {
	cfg := config.Load()

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
