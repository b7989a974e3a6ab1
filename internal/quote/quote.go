// Package quote defines the aggregate every calculator returns and the
// operations used to combine child results.
package quote

import (
	"math"

	"github.com/Simplici0/shopquote/internal/layout"
)

// Line is one material consumed by a quote.
type Line struct {
	Name     string      `json:"name"`
	Size     layout.Size `json:"size"`
	Quantity float64     `json:"quantity"`
	// Unit names what Quantity counts: "sheet", "m", "m2" or "pcs".
	Unit string `json:"unit"`
}

// Quote is the cost, price, time and material consumption of a job.
//
// The zero value is an empty quote. Quotes are values: the operations below
// never modify their receiver or arguments.
type Quote struct {
	Cost  float64 `json:"cost"`
	Price float64 `json:"price"`
	// Time is hands-on production time in hours.
	Time float64 `json:"time"`
	// TimeReady is the wall-clock time in hours until the order can be
	// collected.
	TimeReady float64         `json:"time_ready"`
	Weight    float64         `json:"weight"`
	Materials map[string]Line `json:"materials"`
}

// Merge combines two quotes. Cost, price, time and weight add up; readiness
// is the later of the two since buffers of parallel steps overlap. Material
// quantities under the same id are summed and the first occurrence keeps its
// name, size and unit.
func Merge(a, b Quote) Quote {
	out := Quote{
		Cost:      a.Cost + b.Cost,
		Price:     a.Price + b.Price,
		Time:      a.Time + b.Time,
		TimeReady: math.Max(a.TimeReady, b.TimeReady),
		Weight:    a.Weight + b.Weight,
	}
	if len(a.Materials)+len(b.Materials) == 0 {
		return out
	}
	out.Materials = make(map[string]Line, len(a.Materials)+len(b.Materials))
	for id, l := range a.Materials {
		out.Materials[id] = l
	}
	for id, l := range b.Materials {
		if prev, ok := out.Materials[id]; ok {
			prev.Quantity += l.Quantity
			out.Materials[id] = prev
			continue
		}
		out.Materials[id] = l
	}
	return out
}

// Sum folds Merge over qs from left to right. Sum() is the zero Quote.
func Sum(qs ...Quote) Quote {
	var out Quote
	for _, q := range qs {
		out = Merge(out, q)
	}
	return out
}

// Scale multiplies cost, price and weight by f. Times and material
// quantities are left alone.
func (q Quote) Scale(f float64) Quote {
	out := q.clone()
	out.Cost *= f
	out.Price *= f
	out.Weight *= f
	return out
}

// Markup raises the price by rate, e.g. 0.3 for 30%.
func (q Quote) Markup(rate float64) Quote {
	out := q.clone()
	out.Price *= 1 + rate
	return out
}

// FloorPrice raises the price to at least cost*(1+minMargin).
func (q Quote) FloorPrice(minMargin float64) Quote {
	out := q.clone()
	if floor := out.Cost * (1 + minMargin); out.Price < floor {
		out.Price = floor
	}
	return out
}

// Buffer is the readiness time carried on top of production time.
func (q Quote) Buffer() float64 {
	return math.Max(q.TimeReady-q.Time, 0)
}

// Settle finalises readiness: production time plus the longer of the buffer
// already carried and buffer. Settling twice with the same buffer is a no-op.
func (q Quote) Settle(buffer float64) Quote {
	out := q.clone()
	out.TimeReady = out.Time + math.Max(out.Buffer(), buffer)
	return out
}

// Combine merges settled child quotes into a parent step. The parent is
// ready after its total production time plus the longest child buffer.
func Combine(children ...Quote) Quote {
	out := Sum(children...)
	var buffer float64
	for _, c := range children {
		buffer = math.Max(buffer, c.Buffer())
	}
	out.TimeReady = out.Time + buffer
	return out
}

// WithMaterial returns q with l added under id.
func (q Quote) WithMaterial(id string, l Line) Quote {
	return Merge(q, Quote{Materials: map[string]Line{id: l}})
}

// UnitPrice is the price per item for n items. It is zero for n <= 0.
func (q Quote) UnitPrice(n int) float64 {
	if n <= 0 {
		return 0
	}
	return q.Price / float64(n)
}

func (q Quote) clone() Quote {
	out := q
	if q.Materials != nil {
		out.Materials = make(map[string]Line, len(q.Materials))
		for id, l := range q.Materials {
			out.Materials[id] = l
		}
	}
	return out
}
