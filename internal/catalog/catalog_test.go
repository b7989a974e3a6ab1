package catalog

import (
	"math"
	"testing"

	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func testCatalog() *Catalog {
	materials := []Material{
		{ID: "PaperCoated300", Category: "sheet", Name: "Coated 300", Available: true},
		{ID: "FilmWhiteGloss", Category: "roll", Name: "White gloss film", Available: true},
		{ID: "FilmHidden", Category: "roll", Name: "Discontinued film", Available: false},
		{ID: "FilmWhiteGloss", Category: "sheet", Name: "White gloss film A3", Available: true},
		{ID: "PaperCoated300", Category: "sheet", Name: "Coated 300 (updated)", Available: true},
	}
	equipment := []Equipment{
		{ID: "KWTrio3971", Category: "cutter", OperatorCost: 0},
		{ID: "GraphtecCE5000-60", Category: "plotter", OperatorCost: 900, Ready: production.ReadyTable{4, 2, 1}},
		{ID: "Plotter2", Category: "plotter"},
	}
	return New(DefaultMarkups(), materials, equipment)
}

func TestCatalog_MaterialLookup(t *testing.T) {
	c := testCatalog()

	m, ok := c.Material("sheet", "PaperCoated300")
	if !ok {
		t.Fatalf("expected PaperCoated300 in sheet")
	}
	if m.Name != "Coated 300 (updated)" {
		t.Fatalf("name = %q, want the later record", m.Name)
	}

	if _, ok := c.Material("roll", "PaperCoated300"); ok {
		t.Fatalf("PaperCoated300 must not be found in roll")
	}
	if _, ok := c.Material("nope", "PaperCoated300"); ok {
		t.Fatalf("unknown category must report not found")
	}
}

func TestCatalog_FindMaterialFallsBackAcrossCategories(t *testing.T) {
	c := testCatalog()

	m, ok := c.FindMaterial("FilmWhiteGloss", "roll", "sheet")
	if !ok || m.Category != "roll" {
		t.Fatalf("FindMaterial(roll, sheet) = %+v, %v; want roll record", m, ok)
	}
	m, ok = c.FindMaterial("FilmWhiteGloss", "hardsheet", "sheet")
	if !ok || m.Category != "sheet" {
		t.Fatalf("FindMaterial(hardsheet, sheet) = %+v, %v; want sheet record", m, ok)
	}
	if _, ok := c.FindMaterial("Missing", "roll", "sheet"); ok {
		t.Fatalf("expected not found")
	}
}

func TestCatalog_MaterialsListsAvailableInOrder(t *testing.T) {
	c := testCatalog()

	sheets := c.Materials("sheet")
	if len(sheets) != 2 || sheets[0].ID != "PaperCoated300" || sheets[1].ID != "FilmWhiteGloss" {
		t.Fatalf("sheet materials = %+v", sheets)
	}
	rolls := c.Materials("roll")
	if len(rolls) != 1 || rolls[0].ID != "FilmWhiteGloss" {
		t.Fatalf("roll materials = %+v", rolls)
	}
}

func TestCatalog_EquipmentAndRates(t *testing.T) {
	c := testCatalog()

	cutter, ok := c.Equipment("KWTrio3971")
	if !ok {
		t.Fatalf("cutter not found")
	}
	plotter, _ := c.Equipment("GraphtecCE5000-60")

	nearlyEqual(t, "fallback operator", c.OperatorRate(cutter), 1400)
	nearlyEqual(t, "own operator", c.OperatorRate(plotter), 900)
	nearlyEqual(t, "fallback ready", c.ReadyFor(cutter, production.Standard), 8)
	nearlyEqual(t, "own ready", c.ReadyFor(plotter, production.Standard), 2)

	if got := c.EquipmentIn("plotter"); len(got) != 2 || got[0].ID != "GraphtecCE5000-60" {
		t.Fatalf("EquipmentIn(plotter) = %+v", got)
	}
	if _, ok := c.Equipment("Missing"); ok {
		t.Fatalf("expected missing equipment")
	}
}

func TestEquipment_DepreciationPerHour(t *testing.T) {
	e := Equipment{PurchaseCost: 1_000_000, DepreciationYears: 5, WorkDays: 250, HoursPerDay: 4}
	nearlyEqual(t, "depreciation", e.DepreciationPerHour(), 200)
	nearlyEqual(t, "no horizon", Equipment{PurchaseCost: 100}.DepreciationPerHour(), 0)
}

func TestEquipment_ThroughputTable(t *testing.T) {
	e := Equipment{Throughput: 50, ThroughputTable: Steps{{Upto: 3, Value: 20}, {Upto: 6, Value: 8}, {Upto: 10, Value: 3}}}
	nearlyEqual(t, "thin", e.ThroughputFor(2), 20)
	nearlyEqual(t, "exact", e.ThroughputFor(6), 8)
	nearlyEqual(t, "thick", e.ThroughputFor(20), 3)
	nearlyEqual(t, "flat", Equipment{Throughput: 50}.ThroughputFor(4), 50)
}

func TestEquipment_Fits(t *testing.T) {
	cutter := Equipment{MaxSize: layout.Size{W: 475, H: 650}}
	if !cutter.Fits(layout.Size{W: 640, H: 450}) {
		t.Fatalf("rotated sheet should fit the cutter")
	}
	if cutter.Fits(layout.Size{W: 500, H: 700}) {
		t.Fatalf("oversized sheet should not fit")
	}
	laminator := Equipment{MaxSize: layout.Size{W: 330}}
	if !laminator.Fits(layout.Size{W: 320, H: 5000}) {
		t.Fatalf("long piece should fit a roll-fed bed")
	}
	if !(Equipment{}).Fits(layout.Size{W: 9999, H: 9999}) {
		t.Fatalf("unbounded equipment should accept anything")
	}
}

func TestPrice_Tiers(t *testing.T) {
	p := Price{Flat: 99, Tiers: Steps{{Upto: 10, Value: 50}, {Upto: 100, Value: 40}, {Upto: 1000, Value: 30}}}
	nearlyEqual(t, "small", p.At(1), 50)
	nearlyEqual(t, "boundary", p.At(10), 50)
	nearlyEqual(t, "mid", p.At(11), 40)
	nearlyEqual(t, "beyond", p.At(5000), 30)
	nearlyEqual(t, "flat", Price{Flat: 99}.At(5000), 99)
}

func TestMaterial_Weight(t *testing.T) {
	acrylic := Material{Density: 1.19, DensityUnit: DensityVolume, Thickness: 3}
	// 100x100x3 mm = 30 cm3 -> 35.7 g per piece.
	nearlyEqual(t, "volume", acrylic.Weight(layout.Size{W: 100, H: 100}, 10), 0.357)

	paper := Material{Density: 300, DensityUnit: DensitySurface}
	nearlyEqual(t, "surface", paper.Weight(layout.Size{W: 1000, H: 500}, 4), 0.6)

	bag := Material{UnitWeight: 2.5}
	nearlyEqual(t, "counted", bag.Weight(layout.Size{}, 100), 0.25)
	nearlyEqual(t, "none", bag.Weight(layout.Size{}, 0), 0)
}

func TestMarkups_Margins(t *testing.T) {
	m := DefaultMarkups()
	m.Extra = map[string]float64{"plotter": 0.1, "discount": -0.5}

	nearlyEqual(t, "operation", m.Operation("plotter"), 0.65)
	nearlyEqual(t, "operation floor", m.Operation("discount"), 0.25)
	nearlyEqual(t, "material", m.Material("none"), 0.6)
}

func TestMaterial_Batches(t *testing.T) {
	m := Material{MaxBatch: 400}
	for sheets, want := range map[int]int{0: 1, 400: 1, 401: 2, 1000: 3} {
		if got := m.Batches(sheets); got != want {
			t.Fatalf("Batches(%d) = %d, want %d", sheets, got, want)
		}
	}
	if got := (Material{}).Batches(5000); got != 1 {
		t.Fatalf("unlimited Batches = %d, want 1", got)
	}
}
