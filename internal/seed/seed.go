package seed

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

const (
	defaultExpenseCategory = "General"
	defaultTargetMargin    = 50
	defaultMaterialPercent = 20
)

// defaultMarkupTiers cover the material cost range with no gaps; the last tier is unbounded.
var defaultMarkupTiers = []struct {
	minCost, maxCost, margin float64
}{
	{0, 10, 75},
	{10, 50, 60},
	{50, 200, 50},
	{200, 0, 35},
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run executes the startup seed in an idempotent way.
func Run(db *sql.DB) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureSettings(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureExpenseCategory(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureMarkupTiers(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureSettings(tx *sql.Tx, stats *Stats) error {
	result, err := tx.Exec(`
		INSERT INTO organization_settings (
			id,
			material_cost_percent,
			target_annual_revenue,
			target_monthly_revenue,
			default_target_margin
		)
		VALUES (1, ?, 0, 0, ?)
		ON CONFLICT(id) DO NOTHING
	`, defaultMaterialPercent, defaultTargetMargin)
	if err != nil {
		return fmt.Errorf("insert organization settings singleton: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert organization settings singleton: %w", err)
	}
	stats.Inserts += int(affected)
	return nil
}

func ensureExpenseCategory(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM expense_categories WHERE name = ? LIMIT 1)`, defaultExpenseCategory).Scan(&exists); err != nil {
		return fmt.Errorf("check default expense category existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO expense_categories (id, name, sort_order)
		VALUES (?, ?, 0)
	`, uuid.NewString(), defaultExpenseCategory); err != nil {
		return fmt.Errorf("insert default expense category: %w", err)
	}
	stats.Inserts++
	return nil
}

// ensureMarkupTiers only seeds an empty table so user-edited tiers are never touched.
func ensureMarkupTiers(tx *sql.Tx, stats *Stats) error {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM markup_tiers`).Scan(&count); err != nil {
		return fmt.Errorf("count markup tiers: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, tier := range defaultMarkupTiers {
		if _, err := tx.Exec(`
			INSERT INTO markup_tiers (id, min_cost, max_cost, gross_margin_percent)
			VALUES (?, ?, ?, ?)
		`, uuid.NewString(), tier.minCost, tier.maxCost, tier.margin); err != nil {
			return fmt.Errorf("insert default markup tier: %w", err)
		}
		stats.Inserts++
	}
	return nil
}
