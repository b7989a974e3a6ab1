package catalog

import "github.com/Simplici0/shopquote/internal/layout"

// Basis is the unit a material price refers to.
type Basis string

const (
	BasisSheet Basis = "sheet"
	BasisArea  Basis = "m2"
	BasisMetre Basis = "m"
	BasisUnit  Basis = "pcs"
)

// Density units.
const (
	DensityVolume  = "g/cm3"
	DensitySurface = "g/m2"
)

// Step is one row of a threshold table: values up to Upto map to Value.
type Step struct {
	Upto  float64 `json:"upto"`
	Value float64 `json:"value"`
}

// Steps is a threshold table ordered by ascending Upto.
type Steps []Step

// Lookup returns the value of the first step whose Upto is at least v, or
// the last step's value when v exceeds every threshold. ok is false for an
// empty table.
func (s Steps) Lookup(v float64) (value float64, ok bool) {
	if len(s) == 0 {
		return 0, false
	}
	for _, st := range s {
		if v <= st.Upto {
			return st.Value, true
		}
	}
	return s[len(s)-1].Value, true
}

// Price is a flat or tiered material price.
type Price struct {
	Flat  float64 `json:"flat"`
	Tiers Steps   `json:"tiers,omitempty"`
	Basis Basis   `json:"basis"`
}

// At returns the unit price for an order of volume q, measured in sheets for
// sheet stock and in running metres for rolls.
func (p Price) At(q float64) float64 {
	if v, ok := p.Tiers.Lookup(q); ok {
		return v
	}
	return p.Flat
}

// Material is a purchasable stock item. A size with zero height is a roll.
type Material struct {
	ID       string        `json:"id"`
	Category string        `json:"category"`
	Group    string        `json:"group"`
	Name     string        `json:"name"`
	Sizes    []layout.Size `json:"sizes"`
	Price    Price         `json:"price"`

	Density     float64 `json:"density"`
	DensityUnit string  `json:"density_unit"`
	// Thickness in millimetres.
	Thickness float64 `json:"thickness"`
	// MinLength is the purchase increment of rolls in millimetres.
	MinLength float64 `json:"min_length"`
	// MaxBatch caps the number of sheets in one production batch; 0 means
	// unlimited.
	MaxBatch int `json:"max_batch"`
	// UnitWeight is the weight of one counted unit in grams.
	UnitWeight float64 `json:"unit_weight"`
	Available  bool    `json:"available"`
}

// IsRoll reports whether the material's first size is a roll.
func (m Material) IsRoll() bool {
	return len(m.Sizes) > 0 && m.Sizes[0].IsRoll()
}

// Batches returns how many production batches sheets sheets are split into.
func (m Material) Batches(sheets int) int {
	if m.MaxBatch <= 0 || sheets <= m.MaxBatch {
		return 1
	}
	return (sheets + m.MaxBatch - 1) / m.MaxBatch
}

// Weight returns the weight in kilograms of n pieces of size item cut from
// the material. Counted goods without a density use UnitWeight.
func (m Material) Weight(item layout.Size, n int) float64 {
	if n <= 0 {
		return 0
	}
	var grams float64
	switch m.DensityUnit {
	case DensityVolume:
		grams = (item.W / 10) * (item.H / 10) * (m.Thickness / 10) * m.Density
	case DensitySurface:
		grams = item.Area() * m.Density
	default:
		grams = m.UnitWeight
	}
	return float64(n) * grams / 1000
}
