package pricing

import (
	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/production"
	"github.com/Simplici0/shopquote/internal/quote"
	"github.com/Simplici0/shopquote/internal/variant"
)

const (
	SlugPrintWide    = "print_wide"
	defaultPrinterID = "HPLatex335"

	// operatorShare is the part of the print run that needs an operator.
	operatorShare = 0.5
)

// PrintWide prices printing Quantity items on roll media, media included.
// The printer defaults to the shop's latex printer unless a Print option
// names another one.
func PrintWide(cat *catalog.Catalog, req Request) (quote.Quote, error) {
	const calc = SlugPrintWide
	if err := req.validate(calc, []string{KindPrint}, true); err != nil {
		return quote.Quote{}, err
	}
	return printJob(cat, calc, req)
}

// printJob prices the print run together with the media it consumes.
func printJob(cat *catalog.Catalog, calc string, req Request) (quote.Quote, error) {
	printer, err := printerFor(cat, calc, req.Options)
	if err != nil {
		return quote.Quote{}, err
	}
	m, err := material(cat, calc, req.MaterialID, "roll")
	if err != nil {
		return quote.Quote{}, err
	}

	g := req.Geometry
	n := production.Inflate(req.Quantity, printer.Scrap(float64(req.Quantity), req.Mode))
	stock, err := optimize(calc, m, variant.Demand{
		Count:    n,
		Item:     g.Item,
		Gap:      g.Gap,
		Margins:  printer.Margins,
		Axis:     g.Axis,
		MaxWidth: printer.MaxSize.W,
	})
	if err != nil {
		return quote.Quote{}, err
	}

	area := g.Item.Area() * float64(n)
	work, err := printWork(cat, calc, printer, m, area, req.Mode)
	if err != nil {
		return quote.Quote{}, err
	}
	media := stockQuote(cat, calc, m, stock, m.Weight(g.Item, req.Quantity))
	return quote.Combine(work, media), nil
}

// printWork prices area square metres of ink on printer, media excluded.
func printWork(cat *catalog.Catalog, calc string, printer catalog.Equipment, m catalog.Material, area float64, mode production.Mode) (quote.Quote, error) {
	rate, err := throughput(calc, printer, m.Thickness)
	if err != nil {
		return quote.Quote{}, err
	}
	hours := area/rate + mode.Setup(printer.SetupTime)
	j := job{margin: SlugPrintWide, equipment: printer, hours: hours, operator: hours * operatorShare, units: area}
	return finish(cat, mode, j), nil
}

func printerFor(cat *catalog.Catalog, calc string, opts Options) (catalog.Equipment, error) {
	id := defaultPrinterID
	if p, ok := Find[Print](opts); ok {
		id = p.PrinterID
	}
	return equipment(cat, calc, id)
}
