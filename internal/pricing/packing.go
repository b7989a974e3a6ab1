package pricing

import (
	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
	"github.com/Simplici0/shopquote/internal/quote"
)

const (
	SlugPacking  = "packing"
	packerID     = "Packing"
	bagCategory  = "pack"
	bagAllowance = 5.0
)

// Pack prices bagging Quantity items one per bag. The Packing option may
// name the bag; otherwise the smallest bag that takes the item is used.
func Pack(cat *catalog.Catalog, req Request) (quote.Quote, error) {
	const calc = SlugPacking
	if err := req.validate(calc, []string{KindPacking}, true); err != nil {
		return quote.Quote{}, err
	}
	opt, _ := Find[Packing](req.Options)
	return packJob(cat, calc, req.Mode, req.Geometry, req.Quantity, opt)
}

func packJob(cat *catalog.Catalog, calc string, mode production.Mode, g Geometry, count int, opt Packing) (quote.Quote, error) {
	bag, err := pickBag(cat, calc, g, opt.PackID)
	if err != nil {
		return quote.Quote{}, err
	}
	packer, err := equipment(cat, calc, packerID)
	if err != nil {
		return quote.Quote{}, err
	}
	rate, err := throughput(calc, packer, 0)
	if err != nil {
		return quote.Quote{}, err
	}

	n := production.Inflate(count, packer.Scrap(float64(count), mode))
	hours := float64(n)/rate + mode.Setup(packer.SetupTime)
	j := job{margin: SlugPacking, equipment: packer, hours: hours, operator: hours, units: float64(n)}

	bags := float64(n)
	cost := bag.Price.At(bags) * bags
	bagQ := materialQuote(cat, SlugPacking, bag, cost, bag.Weight(layout.Size{}, n), bag.Sizes[0], bags, string(catalog.BasisUnit))
	return finish(cat, mode, j, bagQ), nil
}

// pickBag returns bag id, or the smallest bag by area that holds an item of
// g when id is empty.
func pickBag(cat *catalog.Catalog, calc string, g Geometry, id string) (catalog.Material, error) {
	if id != "" {
		bag, err := material(cat, calc, id, bagCategory)
		if err != nil {
			return catalog.Material{}, err
		}
		if !bagHolds(bag, g) {
			return catalog.Material{}, infeasiblef(calc, "item %gx%g does not fit bag %s", g.Item.W, g.Item.H, id)
		}
		return bag, nil
	}

	var best catalog.Material
	found := false
	for _, bag := range cat.Materials(bagCategory) {
		if !bagHolds(bag, g) {
			continue
		}
		if !found || bag.Sizes[0].Area() < best.Sizes[0].Area() {
			best, found = bag, true
		}
	}
	if !found {
		return catalog.Material{}, infeasiblef(calc, "no bag holds item %gx%gx%g", g.Item.W, g.Item.H, g.Depth)
	}
	return best, nil
}

// bagHolds reports whether the item with its depth and an allowance passes
// through the bag in either orientation.
func bagHolds(bag catalog.Material, g Geometry) bool {
	if len(bag.Sizes) == 0 {
		return false
	}
	s := bag.Sizes[0]
	w := g.Item.W + g.Depth + bagAllowance
	h := g.Item.H + g.Depth + bagAllowance
	return (s.W > w && s.H > h) || (s.W > h && s.H > w)
}
