package seed

import (
	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/production"
)

var defaultMarkups = catalog.DefaultMarkups()

var defaultExtras = map[string]float64{
	"cut_guillotine": 0.05,
	"plotter":        0.1,
	"laser":          0.2,
	"lamination":     0,
	"print_wide":     0,
	"packing":        -0.2,
	"shipment":       -0.3,
	"sticker":        0.2,
	"sticker_media":  0,
	"banner":         0.15,
}

func uniform(v float64) layout.Margins {
	return layout.Margins{Top: v, Right: v, Bottom: v, Left: v}
}

var defaultEquipment = []catalog.Equipment{
	{
		ID: "KWTrio3971", Category: "cutter", Name: "KW-trio 3971 stack cutter",
		MaxSize:      layout.Size{W: 330, H: 460},
		PurchaseCost: 25000, DepreciationYears: 5, WorkDays: 250, HoursPerDay: 4,
		ProcessCost: 0.5, SetupTime: 0.05, Throughput: 150, MaxStack: 400,
		Defects: production.Curve{{Quantity: 1000, Rate: 0.01}, {Quantity: 10000, Rate: 0.005}},
	},
	{
		ID: "GraphtecCE5000-60", Category: "plotter", Name: "Graphtec CE5000-60",
		MaxSize:      layout.Size{W: 610, H: 2000},
		Margins:      layout.Margins{Top: 25, Right: 15, Bottom: 25, Left: 15},
		PurchaseCost: 150000, DepreciationYears: 5, WorkDays: 250, HoursPerDay: 4,
		SetupTime: 0.1, Throughput: 20, LoadTime: 0.02, MarkTime: 0.01,
		ThroughputTable: catalog.Steps{{Upto: 0.2, Value: 25}, {Upto: 1, Value: 10}},
		Defects:         production.Curve{{Quantity: 100, Rate: 0.05}, {Quantity: 1000, Rate: 0.02}, {Quantity: 10000, Rate: 0.01}},
	},
	{
		ID: "Qualitech11G1290", Category: "laser", Name: "Qualitech 11G1290",
		MaxSize:      layout.Size{W: 1200, H: 900},
		Margins:      uniform(10),
		PurchaseCost: 600000, DepreciationYears: 7, WorkDays: 250, HoursPerDay: 6,
		SetupTime: 0.25, LoadTime: 0.05, MarkTime: 0.02,
		ThroughputTable: catalog.Steps{{Upto: 2, Value: 30}, {Upto: 4, Value: 15}, {Upto: 6, Value: 8}, {Upto: 10, Value: 4}},
		Defects:         production.Curve{{Quantity: 10, Rate: 0.1}, {Quantity: 100, Rate: 0.05}, {Quantity: 1000, Rate: 0.02}},
	},
	{
		ID: "FGKFM360", Category: "laminator", Name: "FGK FM-360 pouch and roll laminator",
		MaxSize:      layout.Size{W: 360},
		PurchaseCost: 30000, DepreciationYears: 3, WorkDays: 250, HoursPerDay: 2,
		SetupTime: 0.1, Throughput: 60,
		Defects: production.Curve{{Quantity: 100, Rate: 0.02}, {Quantity: 1000, Rate: 0.01}},
	},
	{
		ID: "Bulros1600", Category: "laminator", Name: "Bulros 1600 cold laminator",
		MaxSize:      layout.Size{W: 1600},
		PurchaseCost: 350000, DepreciationYears: 7, WorkDays: 250, HoursPerDay: 2,
		SetupTime: 0.2, Throughput: 120,
		Defects: production.Curve{{Quantity: 10, Rate: 0.05}, {Quantity: 100, Rate: 0.02}},
	},
	{
		ID: "HPLatex335", Category: "printer", Name: "HP Latex 335",
		MaxSize:      layout.Size{W: 1371},
		Margins:      layout.Margins{Right: 5, Left: 5},
		PurchaseCost: 1500000, DepreciationYears: 5, WorkDays: 250, HoursPerDay: 6,
		ProcessCost: 120, SetupTime: 0.15, Throughput: 12,
		Defects: production.Curve{{Quantity: 10, Rate: 0.05}, {Quantity: 100, Rate: 0.03}},
	},
	{
		ID: "CuttingKnife", Category: "manual", Name: "Knife and ruler",
		ProcessCost: 0.5, Throughput: 40,
	},
	{
		ID: "Packing", Category: "manual", Name: "Packing table",
		SetupTime: 0.1, Throughput: 400,
	},
	{
		ID: "Dellin", Category: "cargo", Name: "Dellin freight",
		MaxSize: layout.Size{W: 1500, H: 3000},
		JobCost: 450, ProcessCost: 25, LoadTime: 0.25,
		Ready: production.ReadyTable{120, 96, 72},
	},
	{
		ID: "Courier", Category: "cargo", Name: "City courier",
		MaxSize: layout.Size{W: 600, H: 800},
		JobCost: 600, LoadTime: 0.1,
		Ready: production.ReadyTable{24, 8, 4},
	},
}

var defaultMaterials = []catalog.Material{
	{
		ID: "PaperCoated300", Category: "sheet", Group: "paper", Name: "Coated paper 300 g/m2",
		Sizes:   []layout.Size{{W: 320, H: 450}},
		Price:   catalog.Price{Basis: catalog.BasisSheet, Tiers: catalog.Steps{{Upto: 100, Value: 18}, {Upto: 1000, Value: 15}, {Upto: 100000, Value: 12}}},
		Density: 300, DensityUnit: catalog.DensitySurface, Thickness: 0.3, MaxBatch: 500,
	},
	{
		ID: "PaperCoated130", Category: "sheet", Group: "paper", Name: "Coated paper 130 g/m2",
		Sizes:   []layout.Size{{W: 320, H: 450}},
		Price:   catalog.Price{Flat: 9, Basis: catalog.BasisSheet},
		Density: 130, DensityUnit: catalog.DensitySurface, Thickness: 0.12, MaxBatch: 1000,
	},
	{
		ID: "FilmWhiteGloss", Category: "roll", Group: "film", Name: "White gloss vinyl",
		Sizes:   []layout.Size{{W: 610}, {W: 1000}, {W: 1260}},
		Price:   catalog.Price{Flat: 350, Basis: catalog.BasisArea},
		Density: 160, DensityUnit: catalog.DensitySurface, Thickness: 0.08, MinLength: 100,
	},
	{
		ID: "FilmClear", Category: "roll", Group: "film", Name: "Clear vinyl",
		Sizes:   []layout.Size{{W: 1000}, {W: 1260}},
		Price:   catalog.Price{Flat: 400, Basis: catalog.BasisArea},
		Density: 150, DensityUnit: catalog.DensitySurface, Thickness: 0.08, MinLength: 100,
	},
	{
		ID: "Banner440", Category: "roll", Group: "banner", Name: "Banner fabric 440 g/m2",
		Sizes:   []layout.Size{{W: 1100}, {W: 1600}, {W: 3200}},
		Price:   catalog.Price{Basis: catalog.BasisArea, Tiers: catalog.Steps{{Upto: 10, Value: 180}, {Upto: 100, Value: 150}, {Upto: 10000, Value: 130}}},
		Density: 440, DensityUnit: catalog.DensitySurface, Thickness: 0.4, MinLength: 100,
	},
	{
		ID: "Acrylic3", Category: "hardsheet", Group: "acrylic", Name: "Cast acrylic 3 mm",
		Sizes:   []layout.Size{{W: 600, H: 900}, {W: 1200, H: 900}},
		Price:   catalog.Price{Flat: 2400, Basis: catalog.BasisArea},
		Density: 1.19, DensityUnit: catalog.DensityVolume, Thickness: 3,
	},
	{
		ID: "Acrylic5", Category: "hardsheet", Group: "acrylic", Name: "Cast acrylic 5 mm",
		Sizes:   []layout.Size{{W: 600, H: 900}, {W: 1200, H: 900}},
		Price:   catalog.Price{Flat: 3900, Basis: catalog.BasisArea},
		Density: 1.19, DensityUnit: catalog.DensityVolume, Thickness: 5,
	},
	{
		ID: "PVC3", Category: "hardsheet", Group: "pvc", Name: "Foamed PVC 3 mm",
		Sizes:   []layout.Size{{W: 1200, H: 900}},
		Price:   catalog.Price{Flat: 900, Basis: catalog.BasisArea},
		Density: 0.55, DensityUnit: catalog.DensityVolume, Thickness: 3,
	},
	{
		ID: "LaminatGloss32", Category: "laminat", Group: "roll", Name: "Gloss laminate 32 mic",
		Sizes:   []layout.Size{{W: 330}, {W: 1050}, {W: 1270}},
		Price:   catalog.Price{Flat: 30, Basis: catalog.BasisMetre},
		Density: 40, DensityUnit: catalog.DensitySurface, Thickness: 0.032, MinLength: 100,
	},
	{
		ID: "PouchA4_100", Category: "laminat", Group: "pouch", Name: "Pouch A4 100 mic",
		Sizes:   []layout.Size{{W: 216, H: 303}},
		Price:   catalog.Price{Flat: 9, Basis: catalog.BasisUnit},
		Density: 250, DensityUnit: catalog.DensitySurface, Thickness: 0.1,
	},
	{
		ID: "PouchA3_100", Category: "laminat", Group: "pouch", Name: "Pouch A3 100 mic",
		Sizes:   []layout.Size{{W: 303, H: 426}},
		Price:   catalog.Price{Flat: 18, Basis: catalog.BasisUnit},
		Density: 250, DensityUnit: catalog.DensitySurface, Thickness: 0.1,
	},
	{
		ID: "PackBag10x15", Category: "pack", Name: "Zip bag 100x150",
		Sizes: []layout.Size{{W: 100, H: 150}}, Price: catalog.Price{Flat: 1.5, Basis: catalog.BasisUnit}, UnitWeight: 1.2,
	},
	{
		ID: "PackBag15x20", Category: "pack", Name: "Zip bag 150x200",
		Sizes: []layout.Size{{W: 150, H: 200}}, Price: catalog.Price{Flat: 2.2, Basis: catalog.BasisUnit}, UnitWeight: 2,
	},
	{
		ID: "PackBag25x35", Category: "pack", Name: "Zip bag 250x350",
		Sizes: []layout.Size{{W: 250, H: 350}}, Price: catalog.Price{Flat: 4, Basis: catalog.BasisUnit}, UnitWeight: 4.5,
	},
	{
		ID: "PackBag35x45", Category: "pack", Name: "Zip bag 350x450",
		Sizes: []layout.Size{{W: 350, H: 450}}, Price: catalog.Price{Flat: 6, Basis: catalog.BasisUnit}, UnitWeight: 7,
	},
}
