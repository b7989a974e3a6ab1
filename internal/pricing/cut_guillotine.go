package pricing

import (
	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
	"github.com/Simplici0/shopquote/internal/quote"
)

const (
	SlugCutGuillotine = "cut_guillotine"
	cutterID          = "KWTrio3971"

	// stackPaperDensity is the paper weight in g/m2 a cutter's stack height
	// is rated for.
	stackPaperDensity = 80.0
	defaultMaxStack   = 500
)

// CutGuillotine prices cutting Quantity sheets of Geometry.Sheet into items
// on the stack cutter. The stock is supplied, so no material is charged.
func CutGuillotine(cat *catalog.Catalog, req Request) (quote.Quote, error) {
	const calc = SlugCutGuillotine
	if err := req.validate(calc, nil, true); err != nil {
		return quote.Quote{}, err
	}
	g := req.Geometry
	if g.Sheet.W <= 0 || g.Sheet.H <= 0 {
		return quote.Quote{}, infeasiblef(calc, "sheet size %gx%g must be positive", g.Sheet.W, g.Sheet.H)
	}

	cutter, err := equipment(cat, calc, cutterID)
	if err != nil {
		return quote.Quote{}, err
	}
	if !cutter.Fits(g.Sheet) {
		return quote.Quote{}, infeasiblef(calc, "sheet %gx%g does not fit the cutter", g.Sheet.W, g.Sheet.H)
	}
	grid := layout.OnSheet(g.Item, g.Sheet, g.Margins, g.Gap, g.Axis)
	if !grid.Fits() {
		return quote.Quote{}, infeasiblef(calc, "item %gx%g does not fit sheet %gx%g", g.Item.W, g.Item.H, g.Sheet.W, g.Sheet.H)
	}

	var m catalog.Material
	equiv := 1.0
	if req.MaterialID != "" {
		m, err = material(cat, calc, req.MaterialID, productMaterials...)
		if err != nil {
			return quote.Quote{}, err
		}
		equiv = stackEquivalent(m)
	}

	rate, err := throughput(calc, cutter, 0)
	if err != nil {
		return quote.Quote{}, err
	}

	sheets := production.Inflate(req.Quantity, cutter.Scrap(float64(req.Quantity), req.Mode))
	maxStack := cutter.MaxStack
	if maxStack <= 0 {
		maxStack = defaultMaxStack
	}
	stacks := ceilInt(float64(sheets) * equiv / float64(maxStack))
	cuts := float64(stacks * cutsPerStack(g, grid))

	hours := cuts/rate + setupHours(cutter, req.Mode, m.Batches(sheets))
	j := job{margin: calc, equipment: cutter, hours: hours, operator: hours, units: cuts}
	return finish(cat, req.Mode, j), nil
}

// stackEquivalent is how many reference sheets one sheet of m counts as in
// the cutter's stack.
func stackEquivalent(m catalog.Material) float64 {
	switch {
	case m.DensityUnit == catalog.DensitySurface && m.Density > 0:
		return m.Density / stackPaperDensity
	case m.Thickness > 0:
		// A reference sheet is 0.1 mm thick.
		return m.Thickness / 0.1
	}
	return 1
}

// cutsPerStack counts the knife strokes needed to trim a sheet and cut it
// into the grid. Strips are cut first along whichever side needs fewer
// strokes.
func cutsPerStack(g Geometry, grid layout.SheetResult) int {
	between := func(k int) int {
		switch {
		case k <= 1:
			return 0
		case g.Gap > 0:
			return 2 * (k - 1)
		}
		return k - 1
	}
	a := between(grid.AlongLong) + grid.AlongLong*between(grid.AlongShort)
	b := between(grid.AlongShort) + grid.AlongShort*between(grid.AlongLong)
	return min(a, b) + trims(g, grid)
}

// trims counts the edges with waste between the grid and the sheet border.
func trims(g Geometry, grid layout.SheetResult) int {
	s, m := g.Sheet, g.Margins
	longLead, longEnd := m.Top, s.H-m.Top-grid.LengthConsumed
	shortLead, shortEnd := m.Left, s.W-m.Left-grid.OccupiedWidth
	if s.W > s.H {
		longLead, longEnd = m.Left, s.W-m.Left-grid.LengthConsumed
		shortLead, shortEnd = m.Top, s.H-m.Top-grid.OccupiedWidth
	}
	n := 0
	for _, w := range []float64{longLead, longEnd, shortLead, shortEnd} {
		if w > 1e-9 {
			n++
		}
	}
	return n
}
