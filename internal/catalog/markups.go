package catalog

import (
	"math"

	"github.com/Simplici0/shopquote/internal/production"
)

// Markups are the shop-wide rates and margins.
type Markups struct {
	// OperatorCost is the hourly operator rate.
	OperatorCost    float64               `json:"operator_cost"`
	MarginMaterial  float64               `json:"margin_material"`
	MarginOperation float64               `json:"margin_operation"`
	MarginMin       float64               `json:"margin_min"`
	Ready           production.ReadyTable `json:"ready"`
	// Extra holds per-calculator margins added on top of the base ones.
	Extra map[string]float64 `json:"extra,omitempty"`
}

// DefaultMarkups returns the rates used when the catalog has none stored.
func DefaultMarkups() Markups {
	return Markups{
		OperatorCost:    1400,
		MarginMaterial:  0.6,
		MarginOperation: 0.55,
		MarginMin:       0.25,
		Ready:           production.ReadyTable{24, 8, 1},
	}
}

// ExtraFor returns the extra margin registered under name.
func (m Markups) ExtraFor(name string) float64 {
	return m.Extra[name]
}

// Operation is the margin applied to work done under name, never below
// MarginMin.
func (m Markups) Operation(name string) float64 {
	return math.Max(m.MarginOperation+m.ExtraFor(name), m.MarginMin)
}

// Material is the margin applied to material resold under name.
func (m Markups) Material(name string) float64 {
	return math.Max(m.MarginMaterial+m.ExtraFor(name), m.MarginMin)
}
