// Package variant picks the cheapest stock size of a material for a run of
// identical items.
package variant

import (
	"errors"
	"math"

	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
)

// ErrNoSolution is returned when no size of the material can hold the item.
var ErrNoSolution = errors.New("variant: item fits no size of the material")

// Demand describes what has to be cut from the material.
type Demand struct {
	Count   int
	Item    layout.Size
	Gap     float64
	Margins layout.Margins
	Axis    layout.Axis
	// MaxWidth is the widest stock the processing equipment accepts;
	// zero means unlimited.
	MaxWidth float64
}

// Choice is the selected stock size and what it costs.
type Choice struct {
	Size layout.Size `json:"size"`

	// Sheet stock.
	Sheet   layout.SheetResult `json:"sheet"`
	Sheets  int                `json:"sheets"`
	// Batches is the number of production batches the sheets need; each
	// one is set up separately.
	Batches int `json:"batches"`

	// Roll stock. Length includes margins and the purchase increment.
	Roll   layout.RollResult `json:"roll"`
	Length float64           `json:"length"`

	// Area is the purchased area in square metres.
	Area      float64 `json:"area"`
	UnitPrice float64 `json:"unit_price"`
	Cost      float64 `json:"cost"`
}

// IsRoll reports whether the choice is roll stock.
func (c Choice) IsRoll() bool { return c.Size.IsRoll() }

// Runs is the number of separate setups the stock needs: its sheet batches,
// or one for a roll.
func (c Choice) Runs() int {
	return max(c.Batches, 1)
}

// Metres is the running length consumed in metres.
func (c Choice) Metres() float64 { return c.Length / 1000 }

// Quantity returns the consumed amount and its unit: running metres for
// rolls, sheets otherwise.
func (c Choice) Quantity() (float64, string) {
	if c.IsRoll() {
		return c.Metres(), "m"
	}
	return float64(c.Sheets), "sheet"
}

// Optimize evaluates every size of m in catalog order and returns the
// cheapest that holds d.Count items. Ties keep the earlier size.
func Optimize(m catalog.Material, d Demand) (Choice, error) {
	if d.Count <= 0 {
		return Choice{}, ErrNoSolution
	}

	var best Choice
	found := false
	for _, size := range m.Sizes {
		var c Choice
		var ok bool
		if size.IsRoll() {
			c, ok = onRoll(m, size, d)
		} else {
			c, ok = onSheet(m, size, d)
		}
		if !ok {
			continue
		}
		if !found || c.Cost < best.Cost {
			best, found = c, true
		}
	}
	if !found {
		return Choice{}, ErrNoSolution
	}
	return best, nil
}

func onRoll(m catalog.Material, size layout.Size, d Demand) (Choice, bool) {
	if d.MaxWidth > 0 && size.W > d.MaxWidth {
		return Choice{}, false
	}
	usable := layout.Size{W: size.W - d.Margins.Left - d.Margins.Right}
	r := layout.OnRoll(d.Count, d.Item, usable, d.Gap, d.Axis)
	if !r.Fits() {
		return Choice{}, false
	}

	length := r.LengthConsumed + d.Margins.Top + d.Margins.Bottom
	if m.MinLength > 0 {
		length = math.Ceil(length/m.MinLength) * m.MinLength
	}
	metres := length / 1000
	area := metres * size.W / 1000
	unit := m.Price.At(metres)

	cost := unit * metres
	if m.Price.Basis == catalog.BasisArea {
		cost = unit * area
	}
	return Choice{
		Size:      size,
		Roll:      r,
		Length:    length,
		Area:      area,
		UnitPrice: unit,
		Cost:      cost,
	}, true
}

func onSheet(m catalog.Material, size layout.Size, d Demand) (Choice, bool) {
	if d.MaxWidth > 0 && size.Short() > d.MaxWidth {
		return Choice{}, false
	}
	s := layout.OnSheet(d.Item, size, d.Margins, d.Gap, d.Axis)
	if !s.Fits() {
		return Choice{}, false
	}

	sheets := ceilDiv(d.Count, s.Placed)
	batches := m.Batches(sheets)
	area := float64(sheets) * size.Area()
	unit := m.Price.At(float64(sheets))

	var cost float64
	switch m.Price.Basis {
	case catalog.BasisArea:
		cost = unit * area
	case catalog.BasisMetre:
		cost = unit * float64(sheets) * size.Long() / 1000
	default:
		cost = unit * float64(sheets)
	}
	return Choice{
		Size:      size,
		Sheet:     s,
		Sheets:    sheets,
		Batches:   batches,
		Area:      area,
		UnitPrice: unit,
		Cost:      cost,
	}, true
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
