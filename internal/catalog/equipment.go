package catalog

import (
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
)

// Equipment is a machine or a manual tool with its cost constants.
type Equipment struct {
	ID       string         `json:"id"`
	Category string         `json:"category"`
	Name     string         `json:"name"`
	MaxSize  layout.Size    `json:"max_size"`
	Margins  layout.Margins `json:"margins"`

	PurchaseCost      float64 `json:"purchase_cost"`
	DepreciationYears float64 `json:"depreciation_years"`
	WorkDays          float64 `json:"work_days"`
	HoursPerDay       float64 `json:"hours_per_day"`

	// ProcessCost is charged per unit of work: a cut, a metre, a square
	// metre or a kilogram depending on the equipment.
	ProcessCost float64 `json:"process_cost"`
	// JobCost is charged once per job.
	JobCost float64 `json:"job_cost"`
	// OperatorCost overrides the shop-wide operator rate when positive.
	OperatorCost float64 `json:"operator_cost"`

	// SetupTime in hours, scaled by the production mode.
	SetupTime float64 `json:"setup_time"`
	// Throughput is units of work per hour. ThroughputTable, keyed by
	// material thickness, takes precedence when present.
	Throughput      float64 `json:"throughput"`
	ThroughputTable Steps   `json:"throughput_table,omitempty"`
	// LoadTime is hours per loaded sheet, MarkTime hours per registration
	// mark search.
	LoadTime float64 `json:"load_time"`
	MarkTime float64 `json:"mark_time"`
	MaxStack int     `json:"max_stack"`

	Defects production.Curve      `json:"defects,omitempty"`
	Ready   production.ReadyTable `json:"ready"`
}

// DepreciationPerHour spreads the purchase cost over the working hours of
// the depreciation horizon.
func (e Equipment) DepreciationPerHour() float64 {
	hours := e.DepreciationYears * e.WorkDays * e.HoursPerDay
	if hours <= 0 {
		return 0
	}
	return e.PurchaseCost / hours
}

// ThroughputFor returns the throughput for material of the given thickness.
func (e Equipment) ThroughputFor(thickness float64) float64 {
	if v, ok := e.ThroughputTable.Lookup(thickness); ok {
		return v
	}
	return e.Throughput
}

// Scrap returns the effective scrap rate for q units in mode m.
func (e Equipment) Scrap(q float64, m production.Mode) float64 {
	return e.Defects.ScrapFor(q, m)
}

// Fits reports whether a piece of size s fits the equipment bed in either
// orientation. Equipment without a bed size accepts anything; a bed with
// zero height is unbounded in length.
func (e Equipment) Fits(s layout.Size) bool {
	if e.MaxSize.W <= 0 {
		return true
	}
	if e.MaxSize.H == 0 {
		return s.Short() <= e.MaxSize.W
	}
	return s.Short() <= e.MaxSize.Short() && s.Long() <= e.MaxSize.Long()
}
