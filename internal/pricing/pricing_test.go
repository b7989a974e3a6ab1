package pricing

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
	"github.com/Simplici0/shopquote/internal/quote"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func testMarkups() catalog.Markups {
	return catalog.Markups{
		OperatorCost:    1000,
		MarginMaterial:  0.5,
		MarginOperation: 0.5,
		MarginMin:       0.25,
		Ready:           production.ReadyTable{24, 8, 1},
		Extra:           map[string]float64{SlugSticker: 0.1, SlugBanner: 0.2},
	}
}

func testMaterials() []catalog.Material {
	return []catalog.Material{
		{
			ID: "Paper300", Category: "sheet", Name: "Coated 300",
			Sizes:   []layout.Size{{W: 320, H: 450}},
			Price:   catalog.Price{Flat: 10, Basis: catalog.BasisSheet},
			Density: 300, DensityUnit: catalog.DensitySurface, Available: true,
		},
		{
			ID: "Vinyl", Category: "roll", Name: "White vinyl",
			Sizes:   []layout.Size{{W: 500}, {W: 1000}},
			Price:   catalog.Price{Flat: 50, Basis: catalog.BasisMetre},
			Density: 200, DensityUnit: catalog.DensitySurface, Available: true,
		},
		{
			ID: "Banner440", Category: "roll", Name: "Banner 440",
			Sizes:   []layout.Size{{W: 1000}, {W: 1600}},
			Price:   catalog.Price{Flat: 200, Basis: catalog.BasisArea},
			Density: 440, DensityUnit: catalog.DensitySurface, Available: true,
		},
		{
			ID: "Acrylic3", Category: "hardsheet", Name: "Acrylic 3 mm",
			Sizes:   []layout.Size{{W: 1000, H: 1000}},
			Price:   catalog.Price{Flat: 2000, Basis: catalog.BasisSheet},
			Density: 1.2, DensityUnit: catalog.DensityVolume, Thickness: 3, Available: true,
		},
		{
			ID: "GlossRoll", Category: filmCategory, Name: "Gloss film",
			Sizes:   []layout.Size{{W: 330}, {W: 1000}},
			Price:   catalog.Price{Flat: 10, Basis: catalog.BasisMetre},
			Density: 100, DensityUnit: catalog.DensitySurface, Available: true,
		},
		{
			ID: "PouchA4", Category: filmCategory, Name: "Pouch A4",
			Sizes:   []layout.Size{{W: 216, H: 303}},
			Price:   catalog.Price{Flat: 5, Basis: catalog.BasisUnit},
			Density: 250, DensityUnit: catalog.DensitySurface, Available: true,
		},
		{
			ID: "Bag100", Category: bagCategory, Name: "Bag 100x150",
			Sizes: []layout.Size{{W: 100, H: 150}},
			Price: catalog.Price{Flat: 1, Basis: catalog.BasisUnit}, UnitWeight: 2, Available: true,
		},
		{
			ID: "Bag200", Category: bagCategory, Name: "Bag 200x300",
			Sizes: []layout.Size{{W: 200, H: 300}},
			Price: catalog.Price{Flat: 2, Basis: catalog.BasisUnit}, UnitWeight: 5, Available: true,
		},
	}
}

func testEquipment() []catalog.Equipment {
	return []catalog.Equipment{
		{ID: cutterID, Category: "cutter", MaxSize: layout.Size{W: 480, H: 700}, ProcessCost: 1, SetupTime: 0.1, Throughput: 100, MaxStack: 500},
		{ID: plotterID, Category: "plotter", MaxSize: layout.Size{W: 600, H: 1000}, SetupTime: 0.1, Throughput: 10, LoadTime: 0.01, MarkTime: 0.02},
		{ID: laserID, Category: "laser", MaxSize: layout.Size{W: 1200, H: 900}, SetupTime: 0.2, LoadTime: 0.1,
			ThroughputTable: catalog.Steps{{Upto: 3, Value: 20}, {Upto: 10, Value: 5}}},
		{ID: "Bulros1600", Category: laminatorCategory, MaxSize: layout.Size{W: 1600}, Throughput: 120},
		{ID: "FGKFM360", Category: laminatorCategory, MaxSize: layout.Size{W: 360}, Throughput: 60},
		{ID: defaultPrinterID, Category: "printer", MaxSize: layout.Size{W: 1371}, ProcessCost: 100, SetupTime: 0.1, Throughput: 10},
		{ID: knifeID, Category: "manual", Throughput: 60},
		{ID: packerID, Category: "manual", SetupTime: 0.1, Throughput: 400},
		{ID: "Dellin", Category: cargoCategory, MaxSize: layout.Size{W: 2000}, JobCost: 300, ProcessCost: 20, LoadTime: 0.5,
			Ready: production.ReadyTable{72, 48, 24}},
	}
}

func testCatalog() *catalog.Catalog {
	return catalog.New(testMarkups(), testMaterials(), testEquipment())
}

// catalogWith builds the test catalog after edit has adjusted its records.
func catalogWith(edit func(ms []catalog.Material, es []catalog.Equipment)) *catalog.Catalog {
	ms, es := testMaterials(), testEquipment()
	edit(ms, es)
	return catalog.New(testMarkups(), ms, es)
}

func withMaxBatch(id string, n int) *catalog.Catalog {
	return catalogWith(func(ms []catalog.Material, _ []catalog.Equipment) {
		for i := range ms {
			if ms[i].ID == id {
				ms[i].MaxBatch = n
			}
		}
	})
}

func cardRequest(mode production.Mode) Request {
	return Request{
		Quantity: 100,
		Geometry: Geometry{Item: layout.Size{W: 90, H: 50}, Sheet: layout.Size{W: 320, H: 450}},
		Mode:     mode,
	}
}

func requireKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("err = %v, want kind %v", err, kind)
	}
}

func TestCutGuillotine_CountsStrokes(t *testing.T) {
	q, err := CutGuillotine(testCatalog(), cardRequest(production.Economy))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 5x6 grid: 29 strokes between items plus one trim, 0.3 h at 100/h.
	nearlyEqual(t, "time", q.Time, 0.3)
	nearlyEqual(t, "cost", q.Cost, 330)
	nearlyEqual(t, "price", q.Price, 495)
	nearlyEqual(t, "timeReady", q.TimeReady, 24.3)
	if len(q.Materials) != 0 {
		t.Fatalf("materials = %v, want none for supplied stock", q.Materials)
	}
}

func TestCutGuillotine_ModeScalesSetupAndReadiness(t *testing.T) {
	cat := testCatalog()
	var costs []float64
	for _, m := range production.Modes {
		q, err := CutGuillotine(cat, cardRequest(m))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", m, err)
		}
		costs = append(costs, q.Cost)
	}
	nearlyEqual(t, "economy", costs[0], 330)
	nearlyEqual(t, "standard", costs[1], 430)
	nearlyEqual(t, "rush", costs[2], 530)

	q, _ := CutGuillotine(cat, cardRequest(production.Standard))
	nearlyEqual(t, "standard timeReady", q.TimeReady, 8.4)
}

func TestCutGuillotine_HeavyPaperNeedsMoreStacks(t *testing.T) {
	req := cardRequest(production.Economy)
	req.Quantity = 1000

	plain, err := CutGuillotine(testCatalog(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "plain cost", plain.Cost, 60+600)

	req.MaterialID = "Paper300"
	heavy, err := CutGuillotine(testCatalog(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1000 sheets of 300 g/m2 make 3750 reference sheets: 8 stacks.
	nearlyEqual(t, "heavy cost", heavy.Cost, 240+2400)
}

func TestCutGuillotine_Infeasible(t *testing.T) {
	cat := testCatalog()

	req := cardRequest(production.Economy)
	req.Geometry.Sheet = layout.Size{W: 800, H: 800}
	_, err := CutGuillotine(cat, req)
	requireKind(t, err, ErrInfeasibleGeometry)

	req = cardRequest(production.Economy)
	req.Geometry.Item = layout.Size{W: 400, H: 400}
	_, err = CutGuillotine(cat, req)
	requireKind(t, err, ErrInfeasibleGeometry)

	req = cardRequest(production.Economy)
	req.MaterialID = "Unobtainium"
	_, err = CutGuillotine(cat, req)
	requireKind(t, err, ErrMissingMaterial)
}

func TestValidate_RejectsBadRequests(t *testing.T) {
	cat := testCatalog()
	cases := []struct {
		name   string
		mutate func(*Request)
		kind   error
	}{
		{"zero quantity", func(r *Request) { r.Quantity = 0 }, ErrInvalidOptions},
		{"unknown mode", func(r *Request) { r.Mode = production.Mode(7) }, ErrInvalidOptions},
		{"zero item", func(r *Request) { r.Geometry.Item = layout.Size{} }, ErrInfeasibleGeometry},
		{"negative gap", func(r *Request) { r.Geometry.Gap = -1 }, ErrInfeasibleGeometry},
		{"unsupported option", func(r *Request) { r.Options = Options{FindMarks{}} }, ErrInvalidOptions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := cardRequest(production.Economy)
			tc.mutate(&req)
			_, err := CutGuillotine(cat, req)
			requireKind(t, err, tc.kind)
			var perr *Error
			if !errors.As(err, &perr) || perr.Calculator != SlugCutGuillotine {
				t.Fatalf("err = %#v, want *Error from %s", err, SlugCutGuillotine)
			}
		})
	}
}

func TestValidate_DuplicateOption(t *testing.T) {
	req := Request{
		Quantity: 10,
		Geometry: Geometry{Item: layout.Size{W: 100, H: 100}},
		Options:  Options{FindMarks{}, FindMarks{}},
	}
	_, err := CutPlotter(testCatalog(), req)
	requireKind(t, err, ErrInvalidOptions)
}

func plotterRequest() Request {
	return Request{
		Quantity:   10,
		Geometry:   Geometry{Item: layout.Size{W: 100, H: 100}},
		MaterialID: "Vinyl",
	}
}

func TestCutPlotter_RollStock(t *testing.T) {
	q, err := CutPlotter(testCatalog(), plotterRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 4 m of contour at 10 m/h plus one load.
	nearlyEqual(t, "time", q.Time, 0.41)
	nearlyEqual(t, "cost", q.Cost, 410)
	nearlyEqual(t, "price", q.Price, 615)

	line, ok := q.Materials["Vinyl"]
	if !ok {
		t.Fatalf("materials = %v, want Vinyl consumption", q.Materials)
	}
	nearlyEqual(t, "vinyl metres", line.Quantity, 0.308)
	if line.Unit != "m" || line.Size.W != 500 {
		t.Fatalf("line = %+v, want 500 mm roll in metres", line)
	}
}

func TestCutPlotter_FindMarksAddsSearchTime(t *testing.T) {
	req := plotterRequest()
	req.Options = Options{FindMarks{}}
	q, err := CutPlotter(testCatalog(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "cost", q.Cost, 430)
}

func TestCutPlotter_ExplicitCutLength(t *testing.T) {
	req := plotterRequest()
	req.Options = Options{PlotterCut{CutLength: 1}}
	q, err := CutPlotter(testCatalog(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "time", q.Time, 1.01)
}

func TestCutPlotter_WiderThanPlotter(t *testing.T) {
	req := plotterRequest()
	req.Geometry.Item = layout.Size{W: 700, H: 700}
	_, err := CutPlotter(testCatalog(), req)
	requireKind(t, err, ErrInfeasibleGeometry)
}

func TestCutPath(t *testing.T) {
	item := layout.Size{W: 100, H: 50}
	nearlyEqual(t, "perimeter", cutPath(item, PlotterCut{}), 0.3)
	nearlyEqual(t, "difficulty", cutPath(item, PlotterCut{Difficulty: 2}), 0.6)
	// 4*100*50*0.5/10 = 1000 mm of inner cuts.
	nearlyEqual(t, "density", cutPath(item, PlotterCut{Density: 0.5, ItemSize: 10}), 1.3)
	nearlyEqual(t, "given", cutPath(item, PlotterCut{CutLength: 2.5, Difficulty: 3}), 2.5)
}

func TestLaser_ChargesSheetsAndCutting(t *testing.T) {
	req := Request{
		Quantity:   10,
		Geometry:   Geometry{Item: layout.Size{W: 100, H: 100}},
		MaterialID: "Acrylic3",
	}
	q, err := Laser(testCatalog(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 4 m at 20 m/h for 3 mm plus one load; one 1000x1000 sheet.
	nearlyEqual(t, "time", q.Time, 0.3)
	nearlyEqual(t, "cost", q.Cost, 300+2000)
	nearlyEqual(t, "price", q.Price, 450+3000)
	nearlyEqual(t, "weight", q.Weight, 0.36)
	if l := q.Materials["Acrylic3"]; l.Quantity != 1 || l.Unit != "sheet" {
		t.Fatalf("acrylic line = %+v, want 1 sheet", l)
	}
}

func TestLaser_ItemLargerThanBed(t *testing.T) {
	req := Request{
		Quantity:   1,
		Geometry:   Geometry{Item: layout.Size{W: 950, H: 950}},
		MaterialID: "Acrylic3",
	}
	_, err := Laser(testCatalog(), req)
	requireKind(t, err, ErrInfeasibleGeometry)
}

func laminationRequest(film string, double bool) Request {
	return Request{
		Quantity: 5,
		Geometry: Geometry{Item: layout.Size{W: 300, H: 200}},
		Options:  Options{Lamination{FilmID: film, DoubleSide: double}},
	}
}

func TestLaminate_RollFilm(t *testing.T) {
	q, err := Laminate(testCatalog(), laminationRequest("GlossRoll", false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Five rows of 200 mm with 20 mm gaps and a 20 mm lead: 1.1 m of film.
	line := q.Materials["GlossRoll"]
	nearlyEqual(t, "film metres", line.Quantity, 1.1)
	if line.Size.W != 330 {
		t.Fatalf("film width = %v, want the 330 mm roll", line.Size.W)
	}
	nearlyEqual(t, "time", q.Time, 1.1/60)
	nearlyEqual(t, "cost", q.Cost, 11+1000*(1.1/60+5*10.0/3600))
	nearlyEqual(t, "weight", q.Weight, 0.03)
}

func TestLaminate_DoubleSideUsesTwiceTheFilm(t *testing.T) {
	q, err := Laminate(testCatalog(), laminationRequest("GlossRoll", true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "film metres", q.Materials["GlossRoll"].Quantity, 2.2)
	nearlyEqual(t, "cost", q.Cost, 22+1000*(1.1/60+10*10.0/3600))
	nearlyEqual(t, "weight", q.Weight, 0.06)
}

func TestLaminate_WideItemUsesWideLaminator(t *testing.T) {
	req := laminationRequest("GlossRoll", false)
	req.Geometry.Item = layout.Size{W: 500, H: 400}
	q, err := Laminate(testCatalog(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w := q.Materials["GlossRoll"].Size.W; w != 1000 {
		t.Fatalf("film width = %v, want 1000", w)
	}
	// Two across in three rows of 500 mm plus gaps and lead at 120 m/h.
	nearlyEqual(t, "time", q.Time, 1.56/120)
}

func TestLaminate_Pouch(t *testing.T) {
	req := laminationRequest("PouchA4", false)
	req.Quantity = 4
	req.Geometry.Item = layout.Size{W: 210, H: 297}
	q, err := Laminate(testCatalog(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l := q.Materials["PouchA4"]; l.Quantity != 4 || l.Unit != "sheet" {
		t.Fatalf("pouch line = %+v, want 4 pouches", l)
	}
	nearlyEqual(t, "cost", q.Cost, 20+1000*(4*0.303/60+4*20.0/3600))
}

func TestLaminate_Errors(t *testing.T) {
	cat := testCatalog()

	req := laminationRequest("GlossRoll", false)
	req.Options = nil
	_, err := Laminate(cat, req)
	requireKind(t, err, ErrInvalidOptions)

	_, err = Laminate(cat, laminationRequest("Vinyl", false))
	requireKind(t, err, ErrMissingMaterial)

	req = laminationRequest("GlossRoll", false)
	req.Geometry.Item = layout.Size{W: 2000, H: 1700}
	_, err = Laminate(cat, req)
	requireKind(t, err, ErrInfeasibleGeometry)
}

func bannerRequest() Request {
	return Request{
		Quantity:   2,
		Geometry:   Geometry{Item: layout.Size{W: 1000, H: 500}},
		MaterialID: "Banner440",
	}
}

func TestPrintWide(t *testing.T) {
	q, err := PrintWide(testCatalog(), bannerRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1 m2 of ink and 1 m of the 1000 mm roll.
	nearlyEqual(t, "cost", q.Cost, 150+200)
	nearlyEqual(t, "price", q.Price, 225+300)
	nearlyEqual(t, "time", q.Time, 0.1)
	nearlyEqual(t, "timeReady", q.TimeReady, 24.1)
	nearlyEqual(t, "weight", q.Weight, 0.44)
	if l := q.Materials["Banner440"]; l.Quantity != 1 || l.Size.W != 1000 {
		t.Fatalf("banner line = %+v, want 1 m of 1000 mm", l)
	}
}

func TestPrintWide_UnknownPrinter(t *testing.T) {
	req := bannerRequest()
	req.Options = Options{Print{PrinterID: "Mimaki"}}
	_, err := PrintWide(testCatalog(), req)
	requireKind(t, err, ErrMissingEquipment)
}

func TestCuttingEdge(t *testing.T) {
	cat := testCatalog()

	q, err := CuttingEdge(cat, bannerRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Two items with a 3 m perimeter at 60 m/h.
	nearlyEqual(t, "time", q.Time, 0.1)
	nearlyEqual(t, "cost", q.Cost, 100)

	req := bannerRequest()
	req.Options = Options{Cutting{Edges: [4]int{1, 0, 0, 0}}}
	q, err = CuttingEdge(cat, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "top edge time", q.Time, 2.0/60)

	req.Options = Options{Cutting{}}
	q, err = CuttingEdge(cat, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q, quote.Quote{}) {
		t.Fatalf("no edges = %+v, want zero quote", q)
	}
}

func TestCuttingEdge_ScrapAddsLengthNotItems(t *testing.T) {
	cat := catalogWith(func(_ []catalog.Material, es []catalog.Equipment) {
		for i := range es {
			if es[i].ID == knifeID {
				es[i].Defects = production.Curve{{Quantity: 10, Rate: 0.1}}
			}
		}
	})
	q, err := CuttingEdge(cat, bannerRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 6 m of edges plus 10% recut, not a third whole banner.
	nearlyEqual(t, "time", q.Time, 6.6/60)
	nearlyEqual(t, "cost", q.Cost, 110)
}

func TestSetupRepeatsPerBatch(t *testing.T) {
	tests := []struct {
		name     string
		material string
		maxBatch int
		calc     Func
		req      Request
		extra    float64
	}{
		{
			name:     "guillotine",
			material: "Paper300",
			maxBatch: 400,
			calc:     CutGuillotine,
			req: Request{
				Quantity:   1000,
				Geometry:   Geometry{Item: layout.Size{W: 90, H: 50}, Sheet: layout.Size{W: 320, H: 450}},
				MaterialID: "Paper300",
				Mode:       production.Standard,
			},
			// 3 batches of at most 400 sheets: two more setups of 0.1 h.
			extra: 0.2,
		},
		{
			name:     "plotter on sheets",
			material: "Paper300",
			maxBatch: 2,
			calc:     CutPlotter,
			req: Request{
				Quantity:   100,
				Geometry:   Geometry{Item: layout.Size{W: 90, H: 50}},
				MaterialID: "Paper300",
				Mode:       production.Standard,
			},
			// 24 per sheet, 5 sheets in 3 batches.
			extra: 0.2,
		},
		{
			name:     "laser",
			material: "Acrylic3",
			maxBatch: 1,
			calc:     Laser,
			req: Request{
				Quantity:   200,
				Geometry:   Geometry{Item: layout.Size{W: 100, H: 100}},
				MaterialID: "Acrylic3",
				Mode:       production.Standard,
			},
			// 81 per sheet, 3 sheets each set up for 0.2 h.
			extra: 0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			single, err := tt.calc(testCatalog(), tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			batched, err := tt.calc(withMaxBatch(tt.material, tt.maxBatch), tt.req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			nearlyEqual(t, "extra time", batched.Time-single.Time, tt.extra)
			nearlyEqual(t, "extra cost", batched.Cost-single.Cost, tt.extra*1000)
		})
	}
}

func TestPack_PicksSmallestBag(t *testing.T) {
	cat := testCatalog()

	q, err := Pack(cat, cardRequest(production.Economy))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "cost", q.Cost, 250+100)
	nearlyEqual(t, "price", q.Price, 375+150)
	nearlyEqual(t, "weight", q.Weight, 0.2)
	if l := q.Materials["Bag100"]; l.Quantity != 100 || l.Unit != "pcs" {
		t.Fatalf("bag line = %+v, want 100 pcs", l)
	}

	req := cardRequest(production.Economy)
	req.Geometry.Item = layout.Size{W: 150, H: 100}
	q, err = Pack(cat, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := q.Materials["Bag200"]; !ok {
		t.Fatalf("materials = %v, want Bag200", q.Materials)
	}
}

func TestPack_BagMustHoldItem(t *testing.T) {
	cat := testCatalog()

	req := cardRequest(production.Economy)
	req.Geometry.Item = layout.Size{W: 150, H: 100}
	req.Options = Options{Packing{PackID: "Bag100"}}
	_, err := Pack(cat, req)
	requireKind(t, err, ErrInfeasibleGeometry)

	req.Geometry.Item = layout.Size{W: 90, H: 50}
	req.Geometry.Depth = 60
	_, err = Pack(cat, req)
	requireKind(t, err, ErrInfeasibleGeometry)

	req = cardRequest(production.Economy)
	req.Geometry.Item = layout.Size{W: 500, H: 500}
	_, err = Pack(cat, req)
	requireKind(t, err, ErrInfeasibleGeometry)
}

func TestShip_FlatPlusWeight(t *testing.T) {
	req := Request{
		Quantity: 1,
		Geometry: Geometry{Item: layout.Size{W: 100, H: 100}},
		Options:  Options{Shipment{Carrier: "Dellin", Places: 2, Weight: 10}},
		Mode:     production.Standard,
	}
	q, err := Ship(testCatalog(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "cost", q.Cost, 300+200+1000)
	nearlyEqual(t, "price", q.Price, 2250)
	nearlyEqual(t, "time", q.Time, 1)
	// Transit time is the readiness buffer.
	nearlyEqual(t, "timeReady", q.TimeReady, 49)
}

func TestShip_WeightFromMaterial(t *testing.T) {
	req := bannerRequest()
	req.Options = Options{Shipment{Carrier: "Dellin"}}
	q, err := Ship(testCatalog(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "cost", q.Cost, 300+20*0.44+500)
}

func TestShip_CarrierMustBeCargo(t *testing.T) {
	req := bannerRequest()
	req.Options = Options{Shipment{Carrier: cutterID}}
	_, err := Ship(testCatalog(), req)
	requireKind(t, err, ErrMissingEquipment)

	req.Options = nil
	_, err = Ship(testCatalog(), req)
	requireKind(t, err, ErrInvalidOptions)
}

func TestMinimumMargin(t *testing.T) {
	m := testMarkups()
	m.MarginOperation = 0.1
	cat := catalog.New(m, testMaterials(), testEquipment())

	q, err := CutGuillotine(cat, cardRequest(production.Economy))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	nearlyEqual(t, "price", q.Price, 330*1.25)
}

func TestCalculators_AreDeterministic(t *testing.T) {
	cat := testCatalog()
	req := bannerRequest()
	req.Options = Options{Cutting{Edges: [4]int{1, 1, 1, 1}}, Shipment{Carrier: "Dellin"}}

	a, errA := Banner(cat, req)
	b, errB := Banner(cat, req)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated runs differ:\n%+v\n%+v", a, b)
	}
}
