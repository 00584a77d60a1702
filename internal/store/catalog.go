package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/costbook/internal/pricing"
)

// ListExpenseCategories returns every category with its items.
func (s *Store) ListExpenseCategories(ctx context.Context) ([]pricing.ExpenseCategory, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.name, i.id, i.name, i.amount, i.frequency
		FROM expense_categories c
		LEFT JOIN expense_items i ON i.category_id = c.id
		ORDER BY c.sort_order, c.name, i.created_at, i.id
	`)
	if err != nil {
		return nil, fmt.Errorf("query expense categories: %w", err)
	}
	defer rows.Close()

	categories := make([]pricing.ExpenseCategory, 0)
	index := make(map[string]int)
	for rows.Next() {
		var catID, catName string
		var itemID, itemName, frequency sql.NullString
		var amount sql.NullFloat64
		if err := rows.Scan(&catID, &catName, &itemID, &itemName, &amount, &frequency); err != nil {
			return nil, fmt.Errorf("scan expense category: %w", err)
		}

		i, ok := index[catID]
		if !ok {
			i = len(categories)
			index[catID] = i
			categories = append(categories, pricing.ExpenseCategory{ID: catID, Name: catName, Items: []pricing.ExpenseItem{}})
		}
		if !itemID.Valid {
			continue
		}
		categories[i].Items = append(categories[i].Items, pricing.ExpenseItem{
			ID:        itemID.String,
			Name:      itemName.String,
			Amount:    amount.Float64,
			Frequency: pricing.Frequency(frequency.String),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense categories: %w", err)
	}

	return categories, nil
}

// CreateExpenseCategory inserts a category, or returns the existing one with the same name.
func (s *Store) CreateExpenseCategory(ctx context.Context, name string) (pricing.ExpenseCategory, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM expense_categories WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return pricing.ExpenseCategory{ID: id, Name: name, Items: []pricing.ExpenseItem{}}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return pricing.ExpenseCategory{}, fmt.Errorf("query expense category: %w", err)
	}

	id = newID("")
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO expense_categories (id, name, sort_order)
		VALUES (?, ?, (SELECT COUNT(*) FROM expense_categories))
	`, id, name); err != nil {
		return pricing.ExpenseCategory{}, fmt.Errorf("insert expense category: %w", err)
	}
	return pricing.ExpenseCategory{ID: id, Name: name, Items: []pricing.ExpenseItem{}}, nil
}

// AddExpenseItem inserts an item into a category. The frequency is stored as given;
// unknown values surface as pricing.ErrInvalidFrequency at calculation time.
func (s *Store) AddExpenseItem(ctx context.Context, categoryID string, item pricing.ExpenseItem) (pricing.ExpenseItem, error) {
	item.ID = newID(item.ID)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO expense_items (id, category_id, name, amount, frequency)
		SELECT ?, id, ?, ?, ?
		FROM expense_categories
		WHERE id = ?
	`, item.ID, item.Name, item.Amount, string(item.Frequency), categoryID)
	if err != nil {
		return pricing.ExpenseItem{}, fmt.Errorf("insert expense item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return pricing.ExpenseItem{}, fmt.Errorf("insert expense item: %w", err)
	}
	if affected == 0 {
		return pricing.ExpenseItem{}, fmt.Errorf("expense category %s: %w", categoryID, ErrNotFound)
	}
	return item, nil
}

// ListJobTypes returns every job type.
func (s *Store) ListJobTypes(ctx context.Context) ([]pricing.JobType, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, target_gross_margin, material_gross_margin, member_discount_percent,
			min_hours, max_hours, flat_surcharge
		FROM job_types
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("query job types: %w", err)
	}
	defer rows.Close()

	jobTypes := make([]pricing.JobType, 0)
	for rows.Next() {
		var jt pricing.JobType
		if err := rows.Scan(
			&jt.ID, &jt.Name, &jt.TargetGrossMargin, &jt.MaterialGrossMargin, &jt.MemberDiscountPercent,
			&jt.MinHours, &jt.MaxHours, &jt.FlatSurcharge,
		); err != nil {
			return nil, fmt.Errorf("scan job type: %w", err)
		}
		jobTypes = append(jobTypes, jt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate job types: %w", err)
	}

	return jobTypes, nil
}

// CreateJobType inserts a job type. Names are unique; a repeated name yields ErrConflict.
func (s *Store) CreateJobType(ctx context.Context, jt pricing.JobType) (pricing.JobType, error) {
	jt.ID = newID(jt.ID)

	taken, err := s.exists(ctx, `SELECT 1 FROM job_types WHERE name = ?`, jt.Name)
	if err != nil {
		return pricing.JobType{}, fmt.Errorf("look up job type: %w", err)
	}
	if taken {
		return pricing.JobType{}, fmt.Errorf("job type %q: %w", jt.Name, ErrConflict)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO job_types (
			id, name, target_gross_margin, material_gross_margin, member_discount_percent,
			min_hours, max_hours, flat_surcharge
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		jt.ID, jt.Name, jt.TargetGrossMargin, jt.MaterialGrossMargin, jt.MemberDiscountPercent,
		jt.MinHours, jt.MaxHours, jt.FlatSurcharge,
	)
	if err != nil {
		return pricing.JobType{}, fmt.Errorf("insert job type: %w", err)
	}
	return jt, nil
}

// ListMarkupTiers returns the markup tiers ordered by their lower bound.
func (s *Store) ListMarkupTiers(ctx context.Context) ([]pricing.MarkupTier, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, min_cost, max_cost, gross_margin_percent
		FROM markup_tiers
		ORDER BY min_cost
	`)
	if err != nil {
		return nil, fmt.Errorf("query markup tiers: %w", err)
	}
	defer rows.Close()

	tiers := make([]pricing.MarkupTier, 0)
	for rows.Next() {
		var t pricing.MarkupTier
		if err := rows.Scan(&t.ID, &t.MinCost, &t.MaxCost, &t.GrossMarginPercent); err != nil {
			return nil, fmt.Errorf("scan markup tier: %w", err)
		}
		tiers = append(tiers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate markup tiers: %w", err)
	}

	return tiers, nil
}

// CreateMarkupTier inserts a markup tier.
func (s *Store) CreateMarkupTier(ctx context.Context, t pricing.MarkupTier) (pricing.MarkupTier, error) {
	t.ID = newID(t.ID)

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO markup_tiers (id, min_cost, max_cost, gross_margin_percent)
		VALUES (?, ?, ?, ?)
	`, t.ID, t.MinCost, t.MaxCost, t.GrossMarginPercent); err != nil {
		return pricing.MarkupTier{}, fmt.Errorf("insert markup tier: %w", err)
	}
	return t, nil
}
