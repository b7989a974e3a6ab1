package pricing

import (
	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
	"github.com/Simplici0/shopquote/internal/quote"
)

const (
	SlugCuttingEdge = "cutting_edge"
	knifeID         = "CuttingKnife"
)

// allEdges trims every edge once.
var allEdges = Cutting{Edges: [4]int{1, 1, 1, 1}}

// CuttingEdge prices trimming the edges of Quantity finished items by hand.
// Without a Cutting option every edge is cut once.
func CuttingEdge(cat *catalog.Catalog, req Request) (quote.Quote, error) {
	const calc = SlugCuttingEdge
	if err := req.validate(calc, []string{KindCutting}, true); err != nil {
		return quote.Quote{}, err
	}
	opt, ok := Find[Cutting](req.Options)
	if !ok {
		opt = allEdges
	}
	return edgeJob(cat, calc, req.Mode, req.Geometry.Item, req.Quantity, opt)
}

func edgeJob(cat *catalog.Catalog, calc string, mode production.Mode, item layout.Size, count int, opt Cutting) (quote.Quote, error) {
	sides := [4]float64{item.W, item.H, item.W, item.H}
	var perItem float64
	for i, e := range opt.Edges {
		perItem += sides[i] * float64(e)
	}
	if perItem == 0 {
		return quote.Quote{}, nil
	}

	knife, err := equipment(cat, calc, knifeID)
	if err != nil {
		return quote.Quote{}, err
	}
	rate, err := throughput(calc, knife, 0)
	if err != nil {
		return quote.Quote{}, err
	}
	// Recut edges are charged by length, not by whole item.
	metres := production.InflateLength(perItem*float64(count)/1000, knife.Scrap(float64(count), mode))

	hours := metres/rate + mode.Setup(knife.SetupTime)
	j := job{margin: SlugCuttingEdge, equipment: knife, hours: hours, operator: hours, units: metres}
	return finish(cat, mode, j), nil
}
