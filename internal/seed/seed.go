// Package seed fills an empty catalog database with the shop's default
// markups, equipment and materials.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/production"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	// Skipped counts default records that were already present.
	Skipped int
}

func (s *Stats) count(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		s.Skipped++
		return false, nil
	}
	s.Inserts++
	return true, nil
}

// Run inserts the default catalog in an idempotent way. Records that already
// exist are left untouched, so edits made after the first run survive.
func Run(ctx context.Context, db *sql.DB) (Stats, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensureMarkups(ctx, tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	for i, e := range defaultEquipment {
		if err := ensureEquipment(ctx, tx, i, e, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}
	for i, m := range defaultMaterials {
		if err := ensureMaterial(ctx, tx, i, m, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensureMarkups(ctx context.Context, tx *sql.Tx, stats *Stats) error {
	m := defaultMarkups
	res, err := tx.ExecContext(ctx, `
		INSERT INTO markups (
			id,
			operator_cost,
			margin_material,
			margin_operation,
			margin_min,
			ready_economy,
			ready_standard,
			ready_rush
		)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`, m.OperatorCost, m.MarginMaterial, m.MarginOperation, m.MarginMin,
		m.Ready[production.Economy], m.Ready[production.Standard], m.Ready[production.Rush])
	if err != nil {
		return fmt.Errorf("insert markups singleton: %w", err)
	}
	if _, err := stats.count(res); err != nil {
		return fmt.Errorf("count markups insert: %w", err)
	}

	names := make([]string, 0, len(defaultExtras))
	for name := range defaultExtras {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO markup_extras (name, margin) VALUES (?, ?)
			ON CONFLICT (name) DO NOTHING
		`, name, defaultExtras[name])
		if err != nil {
			return fmt.Errorf("insert markup extra %q: %w", name, err)
		}
		if _, err := stats.count(res); err != nil {
			return fmt.Errorf("count markup extra %q: %w", name, err)
		}
	}
	return nil
}

func ensureEquipment(ctx context.Context, tx *sql.Tx, position int, e catalog.Equipment, stats *Stats) error {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO equipment (
			id, category, name, max_width, max_height,
			margin_top, margin_right, margin_bottom, margin_left,
			purchase_cost, depreciation_years, work_days, hours_per_day,
			process_cost, job_cost, operator_cost, setup_time, throughput,
			load_time, mark_time, max_stack,
			ready_economy, ready_standard, ready_rush, position
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING
	`, e.ID, e.Category, e.Name, e.MaxSize.W, e.MaxSize.H,
		e.Margins.Top, e.Margins.Right, e.Margins.Bottom, e.Margins.Left,
		e.PurchaseCost, e.DepreciationYears, e.WorkDays, e.HoursPerDay,
		e.ProcessCost, e.JobCost, e.OperatorCost, e.SetupTime, e.Throughput,
		e.LoadTime, e.MarkTime, e.MaxStack,
		e.Ready[production.Economy], e.Ready[production.Standard], e.Ready[production.Rush], position)
	if err != nil {
		return fmt.Errorf("insert equipment %q: %w", e.ID, err)
	}
	inserted, err := stats.count(res)
	if err != nil {
		return fmt.Errorf("count equipment %q: %w", e.ID, err)
	}
	if !inserted {
		return nil
	}

	for _, b := range e.Defects {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO equipment_defects (equipment_id, quantity, rate) VALUES (?, ?, ?)
		`, e.ID, b.Quantity, b.Rate); err != nil {
			return fmt.Errorf("insert defect curve of %q: %w", e.ID, err)
		}
	}
	for _, st := range e.ThroughputTable {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO equipment_throughput (equipment_id, upto, rate) VALUES (?, ?, ?)
		`, e.ID, st.Upto, st.Value); err != nil {
			return fmt.Errorf("insert throughput table of %q: %w", e.ID, err)
		}
	}
	return nil
}

func ensureMaterial(ctx context.Context, tx *sql.Tx, position int, m catalog.Material, stats *Stats) error {
	res, err := tx.ExecContext(ctx, `
		INSERT INTO materials (
			category, id, grp, name, price_flat, price_basis,
			density, density_unit, thickness, min_length, max_batch,
			unit_weight, available, position
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?)
		ON CONFLICT (category, id) DO NOTHING
	`, m.Category, m.ID, m.Group, m.Name, m.Price.Flat, string(m.Price.Basis),
		m.Density, m.DensityUnit, m.Thickness, m.MinLength, m.MaxBatch,
		m.UnitWeight, position)
	if err != nil {
		return fmt.Errorf("insert material %s/%s: %w", m.Category, m.ID, err)
	}
	inserted, err := stats.count(res)
	if err != nil {
		return fmt.Errorf("count material %s/%s: %w", m.Category, m.ID, err)
	}
	if !inserted {
		return nil
	}

	for i, s := range m.Sizes {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO material_sizes (category, material_id, position, width, height)
			VALUES (?, ?, ?, ?, ?)
		`, m.Category, m.ID, i, s.W, s.H); err != nil {
			return fmt.Errorf("insert size of %s/%s: %w", m.Category, m.ID, err)
		}
	}
	for _, st := range m.Price.Tiers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO material_price_tiers (category, material_id, upto, price)
			VALUES (?, ?, ?, ?)
		`, m.Category, m.ID, st.Upto, st.Value); err != nil {
			return fmt.Errorf("insert price tier of %s/%s: %w", m.Category, m.ID, err)
		}
	}
	return nil
}
