package pricing

import (
	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/quote"
	"github.com/Simplici0/shopquote/internal/variant"
)

const (
	SlugSticker = "sticker"
	// stickerMedia is the margin key of the media sold with stickers.
	stickerMedia = "sticker_media"
)

// Sticker prices contour-cut stickers: the plotter run, the media it cuts,
// and optionally printing and laminating that media before cutting and
// bagging the finished stickers.
func Sticker(cat *catalog.Catalog, req Request) (quote.Quote, error) {
	const calc = SlugSticker
	accepted := []string{KindPlotterCut, KindFindMarks, KindPrint, KindLamination, KindPacking}
	if err := req.validate(calc, accepted, true); err != nil {
		return quote.Quote{}, err
	}

	run, err := plotterJob(cat, SlugCutPlotter, req)
	if err != nil {
		return quote.Quote{}, wrap(calc, err)
	}
	m, stock := run.material, run.stock
	ops := []quote.Quote{run.quote}

	if p, ok := Find[Print](req.Options); ok {
		printer, err := equipment(cat, SlugPrintWide, p.PrinterID)
		if err != nil {
			return quote.Quote{}, wrap(calc, err)
		}
		if !acceptsStock(printer, stock) {
			return quote.Quote{}, wrap(calc, infeasiblef(SlugPrintWide, "%s is wider than %s", m.ID, printer.ID))
		}
		work, err := printWork(cat, SlugPrintWide, printer, m, stock.Area, req.Mode)
		if err != nil {
			return quote.Quote{}, wrap(calc, err)
		}
		ops = append(ops, work)
	}
	if l, ok := Find[Lamination](req.Options); ok {
		piece, count := stockPieces(stock)
		lam, err := laminatePieces(cat, SlugLamination, req.Mode, piece, count, l)
		if err != nil {
			return quote.Quote{}, wrap(calc, err)
		}
		ops = append(ops, lam)
	}

	// The plotter run already lists the media consumed.
	media := quote.Quote{Cost: stock.Cost, Price: stock.Cost, Weight: m.Weight(req.Geometry.Item, req.Quantity)}.
		Markup(cat.Markups().Material(stickerMedia))
	parts := []quote.Quote{
		quote.Combine(ops...).Markup(cat.Markups().ExtraFor(calc)),
		media,
	}

	if pk, ok := Find[Packing](req.Options); ok {
		pack, err := packJob(cat, SlugPacking, req.Mode, req.Geometry, req.Quantity, pk)
		if err != nil {
			return quote.Quote{}, wrap(calc, err)
		}
		parts = append(parts, pack)
	}
	return quote.Combine(parts...), nil
}

// acceptsStock reports whether e can take the stock picked in c.
func acceptsStock(e catalog.Equipment, c variant.Choice) bool {
	if c.IsRoll() {
		return e.MaxSize.W <= 0 || c.Size.W <= e.MaxSize.W
	}
	return e.Fits(c.Size)
}

// stockPieces describes the stock of c as pieces for a follow-up process:
// the sheets themselves, or one strip of the consumed roll length.
func stockPieces(c variant.Choice) (layout.Size, int) {
	if c.IsRoll() {
		return layout.Size{W: c.Size.W, H: c.Length}, 1
	}
	return c.Size, c.Sheets
}
