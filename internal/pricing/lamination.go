package pricing

import (
	"slices"

	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
	"github.com/Simplici0/shopquote/internal/quote"
	"github.com/Simplici0/shopquote/internal/variant"
)

const (
	SlugLamination    = "lamination"
	laminatorCategory = "laminator"
	filmCategory      = "laminat"

	// filmGap is the film left between items and at the start of a roll run,
	// in millimetres.
	filmGap = 20.0

	// Manual handling per item, in hours.
	rollTrimTime  = 10.0 / 3600
	pouchPackTime = 20.0 / 3600
)

// Laminate prices covering Quantity items with the film of the Lamination
// option. Roll film runs through the narrowest laminator that takes the
// item; sheet film is sold as pouches.
func Laminate(cat *catalog.Catalog, req Request) (quote.Quote, error) {
	const calc = SlugLamination
	if err := req.validate(calc, []string{KindLamination}, true); err != nil {
		return quote.Quote{}, err
	}
	opt, ok := Find[Lamination](req.Options)
	if !ok {
		return quote.Quote{}, invalidf(calc, "lamination option is required")
	}
	return laminateJob(cat, calc, req.Mode, req.Geometry.Item, req.Quantity, opt)
}

// laminateJob laminates count finished items, adding the laminator's own
// scrap.
func laminateJob(cat *catalog.Catalog, calc string, mode production.Mode, item layout.Size, count int, opt Lamination) (quote.Quote, error) {
	return laminate(cat, calc, mode, item, count, opt, true)
}

// laminatePieces laminates stock whose quantity already covers scrap, such
// as the media a plotter run was sized for.
func laminatePieces(cat *catalog.Catalog, calc string, mode production.Mode, piece layout.Size, count int, opt Lamination) (quote.Quote, error) {
	return laminate(cat, calc, mode, piece, count, opt, false)
}

func laminate(cat *catalog.Catalog, calc string, mode production.Mode, item layout.Size, count int, opt Lamination, withScrap bool) (quote.Quote, error) {
	film, err := material(cat, calc, opt.FilmID, filmCategory)
	if err != nil {
		return quote.Quote{}, err
	}
	laminator, err := pickLaminator(cat, calc, item)
	if err != nil {
		return quote.Quote{}, err
	}
	rate, err := throughput(calc, laminator, film.Thickness)
	if err != nil {
		return quote.Quote{}, err
	}

	n := count
	if withScrap {
		n = production.Inflate(count, laminator.Scrap(float64(count), mode))
	}
	if film.IsRoll() {
		return rollLamination(cat, calc, mode, laminator, film, rate, item, n, opt.DoubleSide)
	}
	return pouchLamination(cat, calc, mode, laminator, film, rate, item, n)
}

// pickLaminator returns the narrowest laminator whose bed takes item.
func pickLaminator(cat *catalog.Catalog, calc string, item layout.Size) (catalog.Equipment, error) {
	all := cat.EquipmentIn(laminatorCategory)
	if len(all) == 0 {
		return catalog.Equipment{}, failf(ErrMissingEquipment, calc, "no equipment in %q", laminatorCategory)
	}
	slices.SortStableFunc(all, func(a, b catalog.Equipment) int {
		switch {
		case a.MaxSize.W < b.MaxSize.W:
			return -1
		case a.MaxSize.W > b.MaxSize.W:
			return 1
		}
		return 0
	})
	for _, e := range all {
		if e.Fits(item) {
			return e, nil
		}
	}
	return catalog.Equipment{}, infeasiblef(calc, "item %gx%g is wider than every laminator", item.W, item.H)
}

func rollLamination(cat *catalog.Catalog, calc string, mode production.Mode, laminator catalog.Equipment, film catalog.Material, rate float64, item layout.Size, n int, double bool) (quote.Quote, error) {
	stock, err := optimize(calc, film, variant.Demand{
		Count:    n,
		Item:     item,
		Gap:      filmGap,
		Margins:  layout.Margins{Top: filmGap},
		MaxWidth: laminator.MaxSize.W,
	})
	if err != nil {
		return quote.Quote{}, err
	}
	sides := 1.0
	if double {
		sides = 2
	}
	metres := stock.Metres()
	hours := metres/rate + mode.Setup(laminator.SetupTime)
	operator := hours + float64(n)*sides*rollTrimTime

	stock.Cost *= sides
	stock.Length *= sides
	stock.Area *= sides
	weight := item.Area() * float64(n) * sides * film.Density / 1000

	j := job{margin: calc, equipment: laminator, hours: hours, operator: operator, units: metres}
	return finish(cat, mode, j, stockQuote(cat, calc, film, stock, weight)), nil
}

func pouchLamination(cat *catalog.Catalog, calc string, mode production.Mode, laminator catalog.Equipment, film catalog.Material, rate float64, item layout.Size, n int) (quote.Quote, error) {
	stock, err := optimize(calc, film, variant.Demand{Count: n, Item: item})
	if err != nil {
		return quote.Quote{}, err
	}
	pouches := float64(stock.Sheets)
	metres := pouches * stock.Size.Long() / 1000
	hours := metres/rate + mode.Setup(laminator.SetupTime)
	operator := hours + float64(n)*pouchPackTime
	weight := stock.Size.Area() * pouches * film.Density / 1000

	j := job{margin: calc, equipment: laminator, hours: hours, operator: operator, units: metres}
	return finish(cat, mode, j, stockQuote(cat, calc, film, stock, weight)), nil
}
