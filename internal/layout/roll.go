package layout

import "math"

// RollResult describes how count items are laid out along a roll.
// The zero value means the item does not fit the roll width.
type RollResult struct {
	Axis Axis `json:"axis"`
	// Across is the number of items per row across the roll width,
	// Along the number of rows.
	Across         int     `json:"across"`
	Along          int     `json:"along"`
	WidthUsed      float64 `json:"width_used"`
	LengthConsumed float64 `json:"length_consumed"`
}

// Fits reports whether the layout is usable.
func (r RollResult) Fits() bool { return r.Across > 0 && r.Along > 0 }

// OnRoll lays count items along a roll of width roll.W. AxisShort puts the
// item's short side across the width, AxisLong its long side. AxisAuto picks
// the orientation consuming less length, AxisLong on a tie.
func OnRoll(count int, item, roll Size, gap float64, hint Axis) RollResult {
	if count <= 0 || item.W <= 0 || item.H <= 0 || roll.W <= 0 || gap < 0 {
		return RollResult{}
	}
	short, long := item.Short(), item.Long()
	if short > roll.W {
		return RollResult{}
	}

	shortAcross := rollRows(AxisShort, count, roll.W, short, long, gap)
	if long > roll.W {
		if hint == AxisLong {
			return RollResult{}
		}
		return shortAcross
	}
	longAcross := rollRows(AxisLong, count, roll.W, long, short, gap)

	switch hint {
	case AxisShort:
		return shortAcross
	case AxisLong:
		return longAcross
	}
	if shortAcross.LengthConsumed < longAcross.LengthConsumed {
		return shortAcross
	}
	return longAcross
}

func rollRows(axis Axis, count int, width, across, along, gap float64) RollResult {
	n := fit(width, across, gap)
	if n == 0 {
		return RollResult{}
	}
	rows := int(math.Ceil(float64(count) / float64(n)))
	return RollResult{
		Axis:           axis,
		Across:         n,
		Along:          rows,
		WidthUsed:      float64(n)*(across+gap) - gap,
		LengthConsumed: float64(rows)*along + float64(rows-1)*gap,
	}
}
