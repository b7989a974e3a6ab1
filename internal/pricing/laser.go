package pricing

import (
	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
	"github.com/Simplici0/shopquote/internal/quote"
	"github.com/Simplici0/shopquote/internal/variant"
)

const (
	SlugLaser       = "laser"
	laserID         = "Qualitech11G1290"
	defaultLaserGap = 5.0
)

// Laser prices laser cutting of Quantity items from hard sheet stock,
// material included. The cut speed depends on the material thickness.
func Laser(cat *catalog.Catalog, req Request) (quote.Quote, error) {
	const calc = SlugLaser
	if err := req.validate(calc, []string{KindPlotterCut, KindFindMarks}, true); err != nil {
		return quote.Quote{}, err
	}
	laser, err := equipment(cat, calc, laserID)
	if err != nil {
		return quote.Quote{}, err
	}
	m, err := material(cat, calc, req.MaterialID, "hardsheet")
	if err != nil {
		return quote.Quote{}, err
	}
	rate, err := throughput(calc, laser, m.Thickness)
	if err != nil {
		return quote.Quote{}, err
	}

	g := req.Geometry
	gap := g.Gap
	if gap == 0 {
		gap = defaultLaserGap
	}
	bed := layout.OnSheet(g.Item, laser.MaxSize, laser.Margins, gap, layout.AxisAuto)
	if !bed.Fits() {
		return quote.Quote{}, infeasiblef(calc, "item %gx%g does not fit the laser bed", g.Item.W, g.Item.H)
	}

	n := production.Inflate(req.Quantity, laser.Scrap(float64(req.Quantity), req.Mode))
	stock, err := optimize(calc, m, variant.Demand{
		Count:   n,
		Item:    g.Item,
		Gap:     gap,
		Margins: laser.Margins,
		Axis:    g.Axis,
	})
	if err != nil {
		return quote.Quote{}, err
	}

	loads := float64(ceilInt(float64(n) / float64(bed.Placed)))
	cut, _ := Find[PlotterCut](req.Options)
	length := cutPath(g.Item, cut) * float64(n)

	hours := length/rate + loads*laser.LoadTime + setupHours(laser, req.Mode, stock.Runs())
	if _, ok := Find[FindMarks](req.Options); ok {
		hours += loads * laser.MarkTime
	}

	j := job{margin: calc, equipment: laser, hours: hours, operator: hours, units: length}
	stockQ := stockQuote(cat, calc, m, stock, m.Weight(g.Item, req.Quantity))
	return finish(cat, req.Mode, j, stockQ), nil
}
