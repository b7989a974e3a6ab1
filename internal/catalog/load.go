package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
)

type materialKey struct{ category, id string }

// Load reads the whole catalog from db.
func Load(ctx context.Context, db *sql.DB) (*Catalog, error) {
	markups, err := loadMarkups(ctx, db)
	if err != nil {
		return nil, err
	}
	materials, err := loadMaterials(ctx, db)
	if err != nil {
		return nil, err
	}
	equipment, err := loadEquipment(ctx, db)
	if err != nil {
		return nil, err
	}
	return New(markups, materials, equipment), nil
}

func loadMarkups(ctx context.Context, db *sql.DB) (Markups, error) {
	m := DefaultMarkups()
	err := db.QueryRowContext(ctx, `
		SELECT operator_cost, margin_material, margin_operation, margin_min,
		       ready_economy, ready_standard, ready_rush
		FROM markups WHERE id = 1
	`).Scan(&m.OperatorCost, &m.MarginMaterial, &m.MarginOperation, &m.MarginMin,
		&m.Ready[production.Economy], &m.Ready[production.Standard], &m.Ready[production.Rush])
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return Markups{}, fmt.Errorf("query markups: %w", err)
	}

	rows, err := db.QueryContext(ctx, `SELECT name, margin FROM markup_extras ORDER BY name`)
	if err != nil {
		return Markups{}, fmt.Errorf("query markup extras: %w", err)
	}
	defer rows.Close()

	m.Extra = make(map[string]float64)
	for rows.Next() {
		var name string
		var margin float64
		if err := rows.Scan(&name, &margin); err != nil {
			return Markups{}, fmt.Errorf("scan markup extra: %w", err)
		}
		m.Extra[name] = margin
	}
	if err := rows.Err(); err != nil {
		return Markups{}, fmt.Errorf("iterate markup extras: %w", err)
	}
	return m, nil
}

func loadMaterials(ctx context.Context, db *sql.DB) ([]Material, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT category, id, grp, name, price_flat, price_basis, density, density_unit,
		       thickness, min_length, max_batch, unit_weight, available
		FROM materials
		ORDER BY category, position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query materials: %w", err)
	}
	defer rows.Close()

	var out []Material
	index := make(map[materialKey]int)
	for rows.Next() {
		var m Material
		var basis string
		if err := rows.Scan(&m.Category, &m.ID, &m.Group, &m.Name, &m.Price.Flat, &basis,
			&m.Density, &m.DensityUnit, &m.Thickness, &m.MinLength, &m.MaxBatch,
			&m.UnitWeight, &m.Available); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		m.Price.Basis = Basis(basis)
		index[materialKey{m.Category, m.ID}] = len(out)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate materials: %w", err)
	}

	sizes, err := db.QueryContext(ctx, `
		SELECT category, material_id, width, height
		FROM material_sizes
		ORDER BY category, material_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("query material sizes: %w", err)
	}
	defer sizes.Close()
	for sizes.Next() {
		var k materialKey
		var s layout.Size
		if err := sizes.Scan(&k.category, &k.id, &s.W, &s.H); err != nil {
			return nil, fmt.Errorf("scan material size: %w", err)
		}
		if i, ok := index[k]; ok {
			out[i].Sizes = append(out[i].Sizes, s)
		}
	}
	if err := sizes.Err(); err != nil {
		return nil, fmt.Errorf("iterate material sizes: %w", err)
	}

	tiers, err := db.QueryContext(ctx, `
		SELECT category, material_id, upto, price
		FROM material_price_tiers
		ORDER BY category, material_id, upto
	`)
	if err != nil {
		return nil, fmt.Errorf("query material price tiers: %w", err)
	}
	defer tiers.Close()
	for tiers.Next() {
		var k materialKey
		var st Step
		if err := tiers.Scan(&k.category, &k.id, &st.Upto, &st.Value); err != nil {
			return nil, fmt.Errorf("scan material price tier: %w", err)
		}
		if i, ok := index[k]; ok {
			out[i].Price.Tiers = append(out[i].Price.Tiers, st)
		}
	}
	if err := tiers.Err(); err != nil {
		return nil, fmt.Errorf("iterate material price tiers: %w", err)
	}

	return out, nil
}

func loadEquipment(ctx context.Context, db *sql.DB) ([]Equipment, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, category, name, max_width, max_height,
		       margin_top, margin_right, margin_bottom, margin_left,
		       purchase_cost, depreciation_years, work_days, hours_per_day,
		       process_cost, job_cost, operator_cost, setup_time, throughput,
		       load_time, mark_time, max_stack,
		       ready_economy, ready_standard, ready_rush
		FROM equipment
		ORDER BY category, position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	defer rows.Close()

	var out []Equipment
	index := make(map[string]int)
	for rows.Next() {
		var e Equipment
		if err := rows.Scan(&e.ID, &e.Category, &e.Name, &e.MaxSize.W, &e.MaxSize.H,
			&e.Margins.Top, &e.Margins.Right, &e.Margins.Bottom, &e.Margins.Left,
			&e.PurchaseCost, &e.DepreciationYears, &e.WorkDays, &e.HoursPerDay,
			&e.ProcessCost, &e.JobCost, &e.OperatorCost, &e.SetupTime, &e.Throughput,
			&e.LoadTime, &e.MarkTime, &e.MaxStack,
			&e.Ready[production.Economy], &e.Ready[production.Standard], &e.Ready[production.Rush]); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		index[e.ID] = len(out)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate equipment: %w", err)
	}

	defects, err := db.QueryContext(ctx, `
		SELECT equipment_id, quantity, rate FROM equipment_defects ORDER BY equipment_id, quantity
	`)
	if err != nil {
		return nil, fmt.Errorf("query equipment defects: %w", err)
	}
	defer defects.Close()
	for defects.Next() {
		var id string
		var b production.Breakpoint
		if err := defects.Scan(&id, &b.Quantity, &b.Rate); err != nil {
			return nil, fmt.Errorf("scan equipment defect: %w", err)
		}
		if i, ok := index[id]; ok {
			out[i].Defects = append(out[i].Defects, b)
		}
	}
	if err := defects.Err(); err != nil {
		return nil, fmt.Errorf("iterate equipment defects: %w", err)
	}

	speeds, err := db.QueryContext(ctx, `
		SELECT equipment_id, upto, rate FROM equipment_throughput ORDER BY equipment_id, upto
	`)
	if err != nil {
		return nil, fmt.Errorf("query equipment throughput: %w", err)
	}
	defer speeds.Close()
	for speeds.Next() {
		var id string
		var st Step
		if err := speeds.Scan(&id, &st.Upto, &st.Value); err != nil {
			return nil, fmt.Errorf("scan equipment throughput: %w", err)
		}
		if i, ok := index[id]; ok {
			out[i].ThroughputTable = append(out[i].ThroughputTable, st)
		}
	}
	if err := speeds.Err(); err != nil {
		return nil, fmt.Errorf("iterate equipment throughput: %w", err)
	}

	return out, nil
}
