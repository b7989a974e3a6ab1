package layout

// SheetResult describes a grid of items on one sheet. Placed == 0 means the
// item does not fit and the other fields are zero.
type SheetResult struct {
	Placed     int  `json:"placed"`
	AlongLong  int  `json:"along_long"`
	AlongShort int  `json:"along_short"`
	Axis       Axis `json:"axis"`
	// OccupiedWidth is the extent used along the sheet's short side and
	// LengthConsumed along its long side, gaps between items included.
	OccupiedWidth  float64 `json:"occupied_width"`
	LengthConsumed float64 `json:"length_consumed"`
}

// Fits reports whether at least one item was placed.
func (r SheetResult) Fits() bool { return r.Placed > 0 }

// OnSheet computes the largest grid of items that fits on sheet after margins
// and with gap between neighbouring items. hint forces an axis assignment;
// AxisAuto picks the assignment placing more items, AxisLong on a tie.
func OnSheet(item, sheet Size, m Margins, gap float64, hint Axis) SheetResult {
	if item.W <= 0 || item.H <= 0 || gap < 0 {
		return SheetResult{}
	}
	printable := Size{W: sheet.W - m.Left - m.Right, H: sheet.H - m.Top - m.Bottom}
	if printable.W <= 0 || printable.H <= 0 {
		return SheetResult{}
	}

	sheetLong, sheetShort := printable.Long(), printable.Short()
	itemLong, itemShort := item.Long(), item.Short()

	long := grid(AxisLong, sheetLong, sheetShort, itemLong, itemShort, gap)
	short := grid(AxisShort, sheetLong, sheetShort, itemShort, itemLong, gap)

	switch hint {
	case AxisLong:
		return long
	case AxisShort:
		return short
	}
	if short.Placed > long.Placed {
		return short
	}
	return long
}

// grid lays alongLongSide items along the sheet's long side and
// alongShortSide along its short side.
func grid(axis Axis, sheetLong, sheetShort, alongLongSide, alongShortSide, gap float64) SheetResult {
	nl := fit(sheetLong, alongLongSide, gap)
	ns := fit(sheetShort, alongShortSide, gap)
	if nl == 0 || ns == 0 {
		return SheetResult{}
	}
	return SheetResult{
		Placed:         nl * ns,
		AlongLong:      nl,
		AlongShort:     ns,
		Axis:           axis,
		OccupiedWidth:  float64(ns)*(alongShortSide+gap) - gap,
		LengthConsumed: float64(nl)*(alongLongSide+gap) - gap,
	}
}
