package pricing

import (
	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/quote"
)

const SlugBanner = "banner"

// Banner prices printed banners on roll media with optional edge trimming,
// lamination, packing and delivery. Delivery is priced on the weight of the
// finished order unless the Shipment option gives one.
func Banner(cat *catalog.Catalog, req Request) (quote.Quote, error) {
	const calc = SlugBanner
	accepted := []string{KindPrint, KindCutting, KindLamination, KindPacking, KindShipment}
	if err := req.validate(calc, accepted, true); err != nil {
		return quote.Quote{}, err
	}
	g, n := req.Geometry, req.Quantity

	printed, err := printJob(cat, SlugPrintWide, req)
	if err != nil {
		return quote.Quote{}, wrap(calc, err)
	}
	parts := []quote.Quote{printed}

	if c, ok := Find[Cutting](req.Options); ok {
		edge, err := edgeJob(cat, SlugCuttingEdge, req.Mode, g.Item, n, c)
		if err != nil {
			return quote.Quote{}, wrap(calc, err)
		}
		parts = append(parts, edge)
	}
	if l, ok := Find[Lamination](req.Options); ok {
		lam, err := laminateJob(cat, SlugLamination, req.Mode, g.Item, n, l)
		if err != nil {
			return quote.Quote{}, wrap(calc, err)
		}
		parts = append(parts, lam)
	}
	if p, ok := Find[Packing](req.Options); ok {
		pack, err := packJob(cat, SlugPacking, req.Mode, g, n, p)
		if err != nil {
			return quote.Quote{}, wrap(calc, err)
		}
		parts = append(parts, pack)
	}

	product := quote.Combine(parts...).Markup(cat.Markups().ExtraFor(calc))
	s, ok := Find[Shipment](req.Options)
	if !ok {
		return product, nil
	}
	ship, err := shipJob(cat, SlugShipment, req, shipmentFor(s, product.Weight))
	if err != nil {
		return quote.Quote{}, wrap(calc, err)
	}
	return quote.Combine(product, ship), nil
}
