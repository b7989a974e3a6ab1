package pricing

import (
	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/quote"
)

const (
	SlugShipment  = "shipment"
	cargoCategory = "cargo"
)

// Ship prices delivering the order with the carrier of the Shipment option.
// The tariff is a flat fee plus a rate per kilogram; transit time is the
// readiness buffer.
func Ship(cat *catalog.Catalog, req Request) (quote.Quote, error) {
	const calc = SlugShipment
	if err := req.validate(calc, []string{KindShipment}, false); err != nil {
		return quote.Quote{}, err
	}
	opt, ok := Find[Shipment](req.Options)
	if !ok {
		return quote.Quote{}, invalidf(calc, "shipment option is required")
	}
	if opt.Weight == 0 && req.MaterialID != "" {
		m, err := material(cat, calc, req.MaterialID, productMaterials...)
		if err != nil {
			return quote.Quote{}, err
		}
		opt.Weight = m.Weight(req.Geometry.Item, req.Quantity)
	}
	return shipJob(cat, calc, req, opt)
}

func shipJob(cat *catalog.Catalog, calc string, req Request, opt Shipment) (quote.Quote, error) {
	carrier, err := equipment(cat, calc, opt.Carrier)
	if err != nil {
		return quote.Quote{}, err
	}
	if carrier.Category != cargoCategory {
		return quote.Quote{}, failf(ErrMissingEquipment, calc, "%q is not a carrier", opt.Carrier)
	}
	if !carrier.Fits(req.Geometry.Item) {
		return quote.Quote{}, infeasiblef(calc, "item %gx%g exceeds the parcel limit of %s", req.Geometry.Item.W, req.Geometry.Item.H, carrier.ID)
	}
	places := max(opt.Places, 1)

	hours := float64(places) * carrier.LoadTime
	j := job{equipment: carrier, hours: hours, operator: hours, units: opt.Weight}
	c := j.cost(cat)
	q := quote.Quote{Cost: c, Price: c, Time: hours}.
		Markup(cat.Markups().Material(SlugShipment))
	return q.FloorPrice(cat.Markups().MarginMin).
		Settle(cat.ReadyFor(carrier, req.Mode)), nil
}

// shipmentFor fills in the weight of a composite's product.
func shipmentFor(opt Shipment, weight float64) Shipment {
	if opt.Weight == 0 {
		opt.Weight = weight
	}
	return opt
}
