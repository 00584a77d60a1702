package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Simplici0/costbook/internal/config"
	"github.com/Simplici0/costbook/internal/db"
	"github.com/Simplici0/costbook/internal/migrations"
	"github.com/Simplici0/costbook/internal/pricing"
	"github.com/Simplici0/costbook/internal/store"
)

type summaryOptions struct {
	dbPath    string
	file      string
	ratesPath string
	asJSON    bool
	migrate   bool
}

func newSummaryCmd(cfg config.Config) *cobra.Command {
	opts := summaryOptions{dbPath: cfg.DBPath, ratesPath: cfg.RatesPath, migrate: cfg.IsDev()}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Full cost and pricing summary",
		Long:  "Computes the full summary from the costbook database, or from a JSON snapshot file when --file is given.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.dbPath, "db", opts.dbPath, "SQLite database path (defaults to DB_PATH)")
	cmd.Flags().StringVar(&opts.file, "file", "", "JSON snapshot file to read instead of the database")
	cmd.Flags().StringVar(&opts.ratesPath, "rates", opts.ratesPath, "Statutory rates YAML file (defaults to RATES_PATH)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the summary as JSON")
	cmd.MarkFlagsMutuallyExclusive("db", "file")
	return cmd
}

func runSummary(ctx context.Context, out io.Writer, opts summaryOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rates, err := config.LoadStatutoryRates(opts.ratesPath)
	if err != nil {
		return err
	}

	var snap pricing.Snapshot
	if opts.file != "" {
		snap, err = readSnapshotFile(opts.file, rates)
	} else {
		snap, err = readSnapshotDB(ctx, opts.dbPath, rates, opts.migrate)
	}
	if err != nil {
		return err
	}

	res, err := pricing.CalcFullSummary(snap)
	if err != nil {
		return fmt.Errorf("calculate summary: %w", err)
	}

	if opts.asJSON {
		payload, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encode summary: %w", err)
		}
		_, err = fmt.Fprintln(out, string(payload))
		return err
	}
	return printSummary(out, res)
}

// readSnapshotFile loads a snapshot from JSON. A file without statutory rates gets rates.
func readSnapshotFile(path string, rates pricing.StatutoryRates) (pricing.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return pricing.Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}

	var snap pricing.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return pricing.Snapshot{}, fmt.Errorf("parse snapshot file %s: %w", path, err)
	}
	if snap.Settings.Statutory == (pricing.StatutoryRates{}) {
		snap.Settings.Statutory = rates
	}
	return snap, nil
}

// readSnapshotDB loads a snapshot from an existing database. The schema is migrated
// only when migrate is set.
func readSnapshotDB(ctx context.Context, path string, rates pricing.StatutoryRates, migrate bool) (pricing.Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return pricing.Snapshot{}, fmt.Errorf("database %s does not exist", path)
		}
		return pricing.Snapshot{}, fmt.Errorf("stat database: %w", err)
	}

	database, err := db.Open(path)
	if err != nil {
		return pricing.Snapshot{}, err
	}
	defer database.Close()

	if migrate {
		if err := migrations.Up(database); err != nil {
			return pricing.Snapshot{}, err
		}
	}
	return store.New(database).LoadSnapshot(ctx, rates)
}

func printSummary(out io.Writer, res pricing.CalculationResults) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "WORKFORCE\t")
	fmt.Fprintf(tw, "  Active technicians\t%d\n", res.TechCount)
	fmt.Fprintf(tw, "  Billable hours / year\t%s\n", hours(res.TotalBillableHoursPerYear))
	fmt.Fprintf(tw, "  Technician cost / year\t%s\n", money(res.TotalTechCostAnnual))
	fmt.Fprintf(tw, "  Avg true cost / hr\t%s\n", money(res.AvgTrueCostPerHour))
	fmt.Fprintf(tw, "  Avg burden\t%s\n", percent(res.AvgBurdenPercent))
	fmt.Fprintf(tw, "  Avg efficiency\t%s\n", percent(res.AvgEfficiencyPercent))

	fmt.Fprintln(tw, "FLEET\t")
	fmt.Fprintf(tw, "  Vehicles carried\t%d\n", res.ActiveVehicleCount)
	fmt.Fprintf(tw, "  Fleet cost / month\t%s\n", money(res.FleetCostMonthly))
	fmt.Fprintf(tw, "  Fleet cost / hr\t%s\n", money(res.FleetCostPerHour))
	fmt.Fprintf(tw, "  Equity\t%s\n", money(res.TotalEquity))

	fmt.Fprintln(tw, "OVERHEAD\t")
	fmt.Fprintf(tw, "  Active office staff\t%d\n", res.ActiveStaffCount)
	fmt.Fprintf(tw, "  Overhead / month\t%s\n", money(res.MonthlyOverhead))
	fmt.Fprintf(tw, "  Overhead / hr\t%s\n", money(res.OverheadPerHour))

	fmt.Fprintln(tw, "RATES\t")
	fmt.Fprintf(tw, "  Loaded cost / hr\t%s\n", money(res.AvgLoadedCostPerHour))
	fmt.Fprintf(tw, "  Recommended rate / hr\t%s\n", money(res.RecommendedHourlyRate))
	for _, jt := range res.JobTypes {
		fmt.Fprintf(tw, "  %s\t%s/hr (%s to %s)\n", jt.Name, money(jt.HourlyRate), money(jt.MinPrice), money(jt.MaxPrice))
	}

	fmt.Fprintln(tw, "PROFIT\t")
	fmt.Fprintf(tw, "  Projected revenue\t%s\n", money(res.ProjectedRevenue))
	fmt.Fprintf(tw, "  Gross profit\t%s (%s)\n", money(res.GrossProfit), percent(res.GrossMarginPercent))
	fmt.Fprintf(tw, "  Net profit\t%s (%s)\n", money(res.NetProfit), percent(res.NetMarginPercent))
	fmt.Fprintf(tw, "  Break-even / month\t%s\n", money(res.BreakEvenMonthly))

	if err := tw.Flush(); err != nil {
		return err
	}

	for _, w := range res.Warnings {
		if _, err := fmt.Fprintf(out, "%s %s: %s\n", w.Level, w.Code, w.Message); err != nil {
			return err
		}
	}
	return nil
}
