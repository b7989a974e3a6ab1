// Package catalog holds the read-only material and equipment database the
// calculators consult. A Catalog is built once and never modified, so it can
// be shared between goroutines without locking.
package catalog

import "github.com/Simplici0/shopquote/internal/production"

// Catalog indexes materials by category and id and equipment by id.
type Catalog struct {
	markups   Markups
	materials map[string]map[string]Material
	order     map[string][]string
	equipment map[string]Equipment
	eqOrder   []string
}

// New builds a catalog. Later records with a duplicate key replace earlier
// ones but keep the earlier position.
func New(markups Markups, materials []Material, equipment []Equipment) *Catalog {
	c := &Catalog{
		markups:   markups,
		materials: make(map[string]map[string]Material),
		order:     make(map[string][]string),
		equipment: make(map[string]Equipment, len(equipment)),
	}
	if c.markups.Ready.IsZero() {
		c.markups.Ready = DefaultMarkups().Ready
	}
	for _, m := range materials {
		byID, ok := c.materials[m.Category]
		if !ok {
			byID = make(map[string]Material)
			c.materials[m.Category] = byID
		}
		if _, dup := byID[m.ID]; !dup {
			c.order[m.Category] = append(c.order[m.Category], m.ID)
		}
		byID[m.ID] = m
	}
	for _, e := range equipment {
		if _, dup := c.equipment[e.ID]; !dup {
			c.eqOrder = append(c.eqOrder, e.ID)
		}
		c.equipment[e.ID] = e
	}
	return c
}

// Markups returns the shop-wide rates.
func (c *Catalog) Markups() Markups { return c.markups }

// Material looks up a material by category and id.
func (c *Catalog) Material(category, id string) (Material, bool) {
	m, ok := c.materials[category][id]
	return m, ok
}

// FindMaterial tries each category in turn and returns the first match.
func (c *Catalog) FindMaterial(id string, categories ...string) (Material, bool) {
	for _, cat := range categories {
		if m, ok := c.Material(cat, id); ok {
			return m, true
		}
	}
	return Material{}, false
}

// Materials lists the available materials of a category in catalog order.
func (c *Catalog) Materials(category string) []Material {
	out := make([]Material, 0, len(c.order[category]))
	for _, id := range c.order[category] {
		if m := c.materials[category][id]; m.Available {
			out = append(out, m)
		}
	}
	return out
}

// Equipment looks up equipment by id.
func (c *Catalog) Equipment(id string) (Equipment, bool) {
	e, ok := c.equipment[id]
	return e, ok
}

// EquipmentIn lists the equipment of a category in catalog order.
func (c *Catalog) EquipmentIn(category string) []Equipment {
	var out []Equipment
	for _, id := range c.eqOrder {
		if e := c.equipment[id]; e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// OperatorRate returns the hourly operator cost for e, falling back to the
// shop-wide rate.
func (c *Catalog) OperatorRate(e Equipment) float64 {
	if e.OperatorCost > 0 {
		return e.OperatorCost
	}
	return c.markups.OperatorCost
}

// ReadyFor returns the readiness buffer of e in mode m, falling back to the
// shop-wide table.
func (c *Catalog) ReadyFor(e Equipment, m production.Mode) float64 {
	return e.Ready.Or(c.markups.Ready).For(m)
}
