// Package production models how the production mode and the equipment's
// defect curve change the quantities and times a calculator works with.
package production

import (
	"fmt"
	"math"
	"strings"
)

// Mode is the production mode of an order.
type Mode int

const (
	Economy  Mode = 0
	Standard Mode = 1
	Rush     Mode = 2
)

// Modes lists every mode in index order.
var Modes = []Mode{Economy, Standard, Rush}

func (m Mode) String() string {
	switch m {
	case Economy:
		return "economy"
	case Standard:
		return "standard"
	case Rush:
		return "rush"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool { return m >= Economy && m <= Rush }

// ParseMode accepts a mode name or its index. An empty string is Standard.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "1":
		return Standard, nil
	case "economy", "0":
		return Economy, nil
	case "rush", "2":
		return Rush, nil
	}
	return 0, fmt.Errorf("unknown production mode %q", s)
}

// Scrap returns the effective scrap rate for base. Modes above Standard add
// base once more per step.
func (m Mode) Scrap(base float64) float64 {
	if m > Standard {
		return base + base*float64(m-Standard)
	}
	return base
}

// Setup scales a setup time by the mode index, so Economy carries no setup.
func (m Mode) Setup(hours float64) float64 {
	return hours * float64(m)
}

// Breakpoint is one step of a defect curve: up to Quantity units the rate
// is Rate.
type Breakpoint struct {
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
}

// Curve is a defect-rate table ordered by ascending Quantity.
type Curve []Breakpoint

// Rate returns the rate of the first breakpoint whose Quantity is at least q,
// or the last breakpoint's rate when q exceeds them all.
func (c Curve) Rate(q float64) float64 {
	if len(c) == 0 {
		return 0
	}
	for _, b := range c {
		if b.Quantity >= q {
			return b.Rate
		}
	}
	return c[len(c)-1].Rate
}

// ScrapFor combines the curve lookup with the mode adjustment.
func (c Curve) ScrapFor(q float64, m Mode) float64 {
	return m.Scrap(c.Rate(q))
}

// roundingSlack absorbs float error such as 100*1.1 = 110.00000000000001.
const roundingSlack = 1e-9

// Inflate returns the whole number of units to produce so that n good units
// remain after scrap.
func Inflate(n int, scrap float64) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(float64(n)*(1+scrap) - roundingSlack))
}

// InflateLength is Inflate for continuous quantities such as running length.
func InflateLength(v, scrap float64) float64 {
	if v <= 0 {
		return 0
	}
	return v * (1 + scrap)
}

// ReadyTable holds readiness buffers in hours indexed by Mode.
type ReadyTable [3]float64

// For returns the buffer of mode m. Unknown modes fall back to Standard.
func (r ReadyTable) For(m Mode) float64 {
	if !m.Valid() {
		return r[Standard]
	}
	return r[m]
}

// IsZero reports whether no buffer is configured.
func (r ReadyTable) IsZero() bool { return r == ReadyTable{} }

// Or returns r, or fallback when r is not configured.
func (r ReadyTable) Or(fallback ReadyTable) ReadyTable {
	if r.IsZero() {
		return fallback
	}
	return r
}
