package pricing

import (
	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/production"
	"github.com/Simplici0/shopquote/internal/quote"
	"github.com/Simplici0/shopquote/internal/variant"
)

const (
	SlugCutPlotter = "cut_plotter"
	plotterID      = "GraphtecCE5000-60"

	// defaultPlotterGap is the spacing between contours when the request
	// sets none.
	defaultPlotterGap = 4.0
)

var plotterMaterials = []string{"sheet", "roll"}

// plotterRun is a priced plotter job together with the stock it cuts.
type plotterRun struct {
	quote    quote.Quote
	material catalog.Material
	stock    variant.Choice
}

// CutPlotter prices contour cutting of Quantity items from sheet or roll
// stock. The stock consumption is reported but not charged.
func CutPlotter(cat *catalog.Catalog, req Request) (quote.Quote, error) {
	const calc = SlugCutPlotter
	if err := req.validate(calc, []string{KindPlotterCut, KindFindMarks}, true); err != nil {
		return quote.Quote{}, err
	}
	run, err := plotterJob(cat, calc, req)
	if err != nil {
		return quote.Quote{}, err
	}
	return run.quote, nil
}

func plotterJob(cat *catalog.Catalog, calc string, req Request) (plotterRun, error) {
	plotter, err := equipment(cat, calc, plotterID)
	if err != nil {
		return plotterRun{}, err
	}
	m, err := material(cat, calc, req.MaterialID, plotterMaterials...)
	if err != nil {
		return plotterRun{}, err
	}
	rate, err := throughput(calc, plotter, m.Thickness)
	if err != nil {
		return plotterRun{}, err
	}

	g := req.Geometry
	gap := g.Gap
	if gap == 0 {
		gap = defaultPlotterGap
	}
	n := production.Inflate(req.Quantity, plotter.Scrap(float64(req.Quantity), req.Mode))

	stock, err := optimize(calc, m, variant.Demand{
		Count:    n,
		Item:     g.Item,
		Gap:      gap,
		Margins:  plotter.Margins,
		Axis:     g.Axis,
		MaxWidth: plotter.MaxSize.W,
	})
	if err != nil {
		return plotterRun{}, err
	}

	// Rolls are fed in segments of the bed length.
	loads := stock.Sheets
	if stock.IsRoll() {
		loads = 1
		if plotter.MaxSize.H > 0 {
			loads = ceilInt(stock.Length / plotter.MaxSize.H)
		}
	}

	cut, _ := Find[PlotterCut](req.Options)
	length := cutPath(g.Item, cut) * float64(n)

	hours := length/rate + setupHours(plotter, req.Mode, stock.Runs()) + float64(loads)*plotter.LoadTime
	if _, ok := Find[FindMarks](req.Options); ok {
		hours += float64(loads) * plotter.MarkTime
	}

	qty, unit := stock.Quantity()
	consumed := quote.Quote{}.WithMaterial(m.ID, quote.Line{Name: m.Name, Size: stock.Size, Quantity: qty, Unit: unit})

	j := job{margin: "plotter", equipment: plotter, hours: hours, operator: hours, units: length}
	return plotterRun{
		quote:    finish(cat, req.Mode, j, consumed),
		material: m,
		stock:    stock,
	}, nil
}
