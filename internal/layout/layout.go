// Package layout places copies of a rectangular item on a bounded sheet or
// along a roll of fixed width and unbounded length.
//
// The solver is a guillotine grid heuristic: every item in a layout shares one
// orientation and the grid is axis-aligned. Mixed or staggered layouts are not
// considered. "Does not fit" is a zero result, never an error.
package layout

import "math"

// Size is a width/height pair in millimetres. A zero height denotes a roll.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// IsRoll reports whether s describes a roll of width W.
func (s Size) IsRoll() bool { return s.H == 0 && s.W > 0 }

// Long returns the longer side.
func (s Size) Long() float64 { return math.Max(s.W, s.H) }

// Short returns the shorter side.
func (s Size) Short() float64 { return math.Min(s.W, s.H) }

// Transpose swaps width and height.
func (s Size) Transpose() Size { return Size{W: s.H, H: s.W} }

// Area returns the area in square metres.
func (s Size) Area() float64 { return s.W * s.H / 1e6 }

// Margins are the unusable borders of a sheet or roll in millimetres.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Axis selects the orientation of items relative to the stock.
type Axis int

const (
	// AxisShort puts the item's long side across the stock's short side
	// (sheets) or the item's short side across the roll width (rolls).
	AxisShort Axis = -1
	// AxisAuto lets the solver choose.
	AxisAuto Axis = 0
	// AxisLong puts the item's long side parallel to the sheet's long side
	// (sheets) or across the roll width (rolls).
	AxisLong Axis = 1
)

func (a Axis) String() string {
	switch a {
	case AxisShort:
		return "short"
	case AxisLong:
		return "long"
	default:
		return "auto"
	}
}

// fitSlack absorbs float error in exact fits such as 72.1/10.3 = 6.999999999999999.
const fitSlack = 1e-9

// fit returns how many cells of size side+gap fit into extent+gap.
// The trailing gap is not reserved.
func fit(extent, side, gap float64) int {
	if extent <= 0 || side <= 0 || side+gap <= 0 {
		return 0
	}
	n := math.Floor((extent+gap)/(side+gap) + fitSlack)
	if n < 0 {
		return 0
	}
	return int(n)
}
