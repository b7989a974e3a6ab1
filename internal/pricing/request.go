package pricing

import (
	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
	"github.com/Simplici0/shopquote/internal/quote"
)

// Geometry is the physical description of the ordered item.
type Geometry struct {
	Item layout.Size `json:"item"`
	// Sheet is the stock the item is cut from, for calculators that take
	// the stock as given.
	Sheet layout.Size `json:"sheet"`
	// Depth is the item thickness in millimetres.
	Depth   float64        `json:"depth"`
	Margins layout.Margins `json:"margins"`
	Gap     float64        `json:"gap"`
	Axis    layout.Axis    `json:"axis"`
}

// Request is the input of every calculator.
type Request struct {
	Quantity   int             `json:"quantity"`
	Geometry   Geometry        `json:"geometry"`
	MaterialID string          `json:"material_id"`
	Options    Options         `json:"options"`
	Mode       production.Mode `json:"mode"`
}

// Func computes a quote. Implementations are pure: the same catalog and
// request always give the same quote.
type Func func(cat *catalog.Catalog, req Request) (quote.Quote, error)

// validate performs the checks every calculator shares.
func (r Request) validate(calc string, accepted []string, needSize bool) error {
	if r.Quantity <= 0 {
		return invalidf(calc, "quantity must be positive, got %d", r.Quantity)
	}
	if !r.Mode.Valid() {
		return invalidf(calc, "unknown production mode %d", int(r.Mode))
	}
	if needSize && (r.Geometry.Item.W <= 0 || r.Geometry.Item.H <= 0) {
		return infeasiblef(calc, "item size %gx%g must be positive", r.Geometry.Item.W, r.Geometry.Item.H)
	}
	if r.Geometry.Gap < 0 || r.Geometry.Depth < 0 {
		return infeasiblef(calc, "gap and depth must be non-negative")
	}
	return r.Options.check(calc, accepted)
}

// child returns a copy of r for a sub-step with different options.
func (r Request) child(opts ...Option) Request {
	r.Options = opts
	return r
}
