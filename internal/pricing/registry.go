package pricing

import "slices"

// Entry describes a calculator to callers that discover them at run time.
type Entry struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Categories are the material categories MaterialID is looked up in.
	Categories []string `json:"categories"`
	// Options are the option kinds the calculator accepts.
	Options []string `json:"options"`
	Calc    Func     `json:"-"`
}

// Registry is an ordered set of calculators keyed by slug.
type Registry struct {
	entries []Entry
	bySlug  map[string]int
}

// NewRegistry builds a registry. A later entry with the same slug replaces
// the earlier one in place.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{bySlug: make(map[string]int, len(entries))}
	for _, e := range entries {
		if i, ok := r.bySlug[e.Slug]; ok {
			r.entries[i] = e
			continue
		}
		r.bySlug[e.Slug] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r
}

// Lookup returns the calculator registered under slug.
func (r *Registry) Lookup(slug string) (Entry, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries lists the calculators in registration order.
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// DefaultRegistry returns the shop's calculators.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Entry{
			Slug:        SlugCutGuillotine,
			Name:        "Guillotine cutting",
			Description: "Stack cutting of printed sheets into items.",
			Categories:  productMaterials,
			Calc:        CutGuillotine,
		},
		Entry{
			Slug:        SlugCutPlotter,
			Name:        "Plotter cutting",
			Description: "Contour cutting on the cutting plotter.",
			Categories:  plotterMaterials,
			Options:     []string{KindPlotterCut, KindFindMarks},
			Calc:        CutPlotter,
		},
		Entry{
			Slug:        SlugLaser,
			Name:        "Laser cutting",
			Description: "Laser cutting of hard sheet materials, material included.",
			Categories:  []string{"hardsheet"},
			Options:     []string{KindPlotterCut, KindFindMarks},
			Calc:        Laser,
		},
		Entry{
			Slug:        SlugLamination,
			Name:        "Lamination",
			Description: "Roll or pouch lamination of finished items.",
			Categories:  []string{filmCategory},
			Options:     []string{KindLamination},
			Calc:        Laminate,
		},
		Entry{
			Slug:        SlugPrintWide,
			Name:        "Wide format print",
			Description: "Printing on roll media, media included.",
			Categories:  []string{"roll"},
			Options:     []string{KindPrint},
			Calc:        PrintWide,
		},
		Entry{
			Slug:        SlugCuttingEdge,
			Name:        "Edge trimming",
			Description: "Manual trimming of item edges.",
			Options:     []string{KindCutting},
			Calc:        CuttingEdge,
		},
		Entry{
			Slug:        SlugPacking,
			Name:        "Packing",
			Description: "Bagging items one per bag.",
			Categories:  []string{bagCategory},
			Options:     []string{KindPacking},
			Calc:        Pack,
		},
		Entry{
			Slug:        SlugShipment,
			Name:        "Shipment",
			Description: "Delivery by carrier.",
			Categories:  productMaterials,
			Options:     []string{KindShipment},
			Calc:        Ship,
		},
		Entry{
			Slug:        SlugSticker,
			Name:        "Stickers",
			Description: "Contour-cut stickers with optional print, lamination and packing.",
			Categories:  plotterMaterials,
			Options:     []string{KindPlotterCut, KindFindMarks, KindPrint, KindLamination, KindPacking},
			Calc:        Sticker,
		},
		Entry{
			Slug:        SlugBanner,
			Name:        "Banner",
			Description: "Printed banners with optional trimming, lamination, packing and delivery.",
			Categories:  []string{"roll"},
			Options:     []string{KindPrint, KindCutting, KindLamination, KindPacking, KindShipment},
			Calc:        Banner,
		},
	)
}
