package pricing

import (
	"errors"
	"math"

	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
	"github.com/Simplici0/shopquote/internal/quote"
	"github.com/Simplici0/shopquote/internal/variant"
)

// productMaterials are the categories an ordered item can be made of.
var productMaterials = []string{"sheet", "roll", "hardsheet"}

// job is the work a leaf step books on one piece of equipment.
type job struct {
	// margin is the key of the step's extra margin.
	margin    string
	equipment catalog.Equipment
	// hours of machine time, setup included.
	hours float64
	// operator hours; equal to hours unless the step runs unattended.
	operator float64
	// units of work charged at the equipment's ProcessCost.
	units float64
}

func (j job) cost(cat *catalog.Catalog) float64 {
	e := j.equipment
	return e.DepreciationPerHour()*j.hours +
		e.ProcessCost*j.units +
		e.JobCost +
		cat.OperatorRate(e)*j.operator
}

// quote prices the work at the operation margin.
func (j job) quote(cat *catalog.Catalog) quote.Quote {
	c := j.cost(cat)
	return quote.Quote{Cost: c, Price: c, Time: j.hours}.
		Markup(cat.Markups().Operation(j.margin))
}

// materialQuote prices consumed stock at the material margin of step.
func materialQuote(cat *catalog.Catalog, step string, m catalog.Material, cost, weight float64, size layout.Size, qty float64, unit string) quote.Quote {
	q := quote.Quote{Cost: cost, Price: cost, Weight: weight}.
		Markup(cat.Markups().Material(step))
	return q.WithMaterial(m.ID, quote.Line{Name: m.Name, Size: size, Quantity: qty, Unit: unit})
}

// finish settles a leaf step: work plus materials, price floored at the
// minimum margin, readiness from the equipment.
func finish(cat *catalog.Catalog, mode production.Mode, j job, parts ...quote.Quote) quote.Quote {
	return quote.Sum(append([]quote.Quote{j.quote(cat)}, parts...)...).
		FloorPrice(cat.Markups().MarginMin).
		Settle(cat.ReadyFor(j.equipment, mode))
}

// setupHours is the setup time of e in mode, repeated for every run.
func setupHours(e catalog.Equipment, mode production.Mode, runs int) float64 {
	return mode.Setup(e.SetupTime) * float64(max(runs, 1))
}

func equipment(cat *catalog.Catalog, calc, id string) (catalog.Equipment, error) {
	e, ok := cat.Equipment(id)
	if !ok {
		return catalog.Equipment{}, missingEquipment(calc, id)
	}
	return e, nil
}

// throughput returns the equipment's rate for material thickness, failing
// when the equipment has none configured.
func throughput(calc string, e catalog.Equipment, thickness float64) (float64, error) {
	v := e.ThroughputFor(thickness)
	if v <= 0 {
		return 0, failf(ErrMissingEquipment, calc, "%s has no throughput configured", e.ID)
	}
	return v, nil
}

func material(cat *catalog.Catalog, calc, id string, categories ...string) (catalog.Material, error) {
	if id == "" {
		return catalog.Material{}, failf(ErrMissingMaterial, calc, "material id is required")
	}
	m, ok := cat.FindMaterial(id, categories...)
	if !ok {
		return catalog.Material{}, missingMaterial(calc, id)
	}
	return m, nil
}

// optimize runs the variant optimizer and turns "no solution" into an
// infeasible-geometry error.
func optimize(calc string, m catalog.Material, d variant.Demand) (variant.Choice, error) {
	c, err := variant.Optimize(m, d)
	if errors.Is(err, variant.ErrNoSolution) {
		return variant.Choice{}, infeasiblef(calc, "%gx%g fits no size of %s", d.Item.W, d.Item.H, m.ID)
	}
	return c, err
}

// stockQuote prices the stock picked by the optimizer.
func stockQuote(cat *catalog.Catalog, step string, m catalog.Material, c variant.Choice, weight float64) quote.Quote {
	qty, unit := c.Quantity()
	return materialQuote(cat, step, m, c.Cost, weight, c.Size, qty, unit)
}

// cutPath returns the cut length of one item in metres.
func cutPath(item layout.Size, o PlotterCut) float64 {
	if o.CutLength > 0 {
		return o.CutLength
	}
	mm := (item.W + item.H) * 2
	if o.Density > 0 && o.ItemSize > 0 {
		mm += 4 * item.W * item.H * o.Density / o.ItemSize
	}
	if o.Difficulty > 0 {
		mm *= o.Difficulty
	}
	return mm / 1000
}

func ceilInt(v float64) int {
	return int(math.Ceil(v - 1e-9))
}
