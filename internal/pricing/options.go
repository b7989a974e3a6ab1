package pricing

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Option kinds as they appear in the "kind" field of JSON requests.
const (
	KindCutting    = "cutting"
	KindLamination = "lamination"
	KindPlotterCut = "plotter_cut"
	KindFindMarks  = "find_marks"
	KindPacking    = "packing"
	KindShipment   = "shipment"
	KindPrint      = "print"
)

// Option is one process option of a request. The set of implementations is
// closed; use Find to retrieve a specific one.
type Option interface {
	Kind() string
	validate() error
}

// Cutting trims the item's edges by hand. Edges counts the cuts along the
// top, right, bottom and left edge.
type Cutting struct {
	Edges [4]int `json:"edges"`
}

// Lamination covers the item with film FilmID.
type Lamination struct {
	FilmID     string `json:"film_id"`
	DoubleSide bool   `json:"double_side"`
}

// PlotterCut describes the cut path of one item. When CutLength (metres) is
// zero it is estimated from the item perimeter, the fill Density (0..1) of
// inner elements of size ItemSize (mm) and the shape Difficulty (>= 1).
type PlotterCut struct {
	ItemSize   float64 `json:"item_size"`
	Density    float64 `json:"density"`
	Difficulty float64 `json:"difficulty"`
	CutLength  float64 `json:"cut_length"`
}

// FindMarks makes the plotter search registration marks on every sheet.
type FindMarks struct{}

// Packing bags every item. An empty PackID picks the smallest bag that fits.
type Packing struct {
	PackID string `json:"pack_id"`
}

// Shipment delivers the order with Carrier in Places parcels. Weight is the
// gross weight in kilograms; composites fill it in from the product when it
// is zero.
type Shipment struct {
	Carrier string  `json:"carrier"`
	Places  int     `json:"places"`
	Weight  float64 `json:"weight"`
}

// Print prints the item on PrinterID.
type Print struct {
	PrinterID string `json:"printer_id"`
}

func (Cutting) Kind() string { return KindCutting }
func (Lamination) Kind() string { return KindLamination }
func (PlotterCut) Kind() string { return KindPlotterCut }
func (FindMarks) Kind() string { return KindFindMarks }
func (Packing) Kind() string { return KindPacking }
func (Shipment) Kind() string { return KindShipment }
func (Print) Kind() string { return KindPrint }

func (o Cutting) validate() error {
	for _, e := range o.Edges {
		if e < 0 {
			return fmt.Errorf("negative edge count %d", e)
		}
	}
	return nil
}

func (o Lamination) validate() error {
	if o.FilmID == "" {
		return fmt.Errorf("film_id is required")
	}
	return nil
}

func (o PlotterCut) validate() error {
	if o.ItemSize < 0 || o.Density < 0 || o.Density > 1 || o.CutLength < 0 {
		return fmt.Errorf("item_size, density and cut_length must be non-negative, density at most 1")
	}
	if o.Difficulty != 0 && o.Difficulty < 1 {
		return fmt.Errorf("difficulty %v below 1", o.Difficulty)
	}
	return nil
}

func (FindMarks) validate() error { return nil }

func (Packing) validate() error { return nil }

func (o Shipment) validate() error {
	if o.Carrier == "" {
		return fmt.Errorf("carrier is required")
	}
	if o.Places < 0 || o.Weight < 0 {
		return fmt.Errorf("places and weight must be non-negative")
	}
	return nil
}

func (o Print) validate() error {
	if o.PrinterID == "" {
		return fmt.Errorf("printer_id is required")
	}
	return nil
}

// Options is the option list of a request. Each kind appears at most once.
type Options []Option

// Find returns the option of type T, if present.
func Find[T Option](opts Options) (T, bool) {
	for _, o := range opts {
		if v, ok := o.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Kinds lists the option kinds in request order.
func (opts Options) Kinds() []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Kind())
	}
	return out
}

// check rejects duplicate kinds, kinds outside accepted and invalid payloads.
func (opts Options) check(calc string, accepted []string) error {
	seen := make(map[string]bool, len(opts))
	for _, o := range opts {
		if o == nil {
			return invalidf(calc, "nil option")
		}
		k := o.Kind()
		if !slices.Contains(accepted, k) {
			return invalidf(calc, "option %q is not supported", k)
		}
		if seen[k] {
			return invalidf(calc, "option %q given twice", k)
		}
		seen[k] = true
		if err := o.validate(); err != nil {
			return invalidf(calc, "%s: %v", k, err)
		}
	}
	return nil
}

// UnmarshalJSON decodes a list of objects discriminated by their "kind".
func (opts *Options) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &Error{Kind: ErrInvalidOptions, Msg: err.Error()}
	}
	out := make(Options, 0, len(raw))
	for i, r := range raw {
		o, err := decodeOption(r)
		if err != nil {
			return &Error{Kind: ErrInvalidOptions, Msg: fmt.Sprintf("option %d: %v", i, err)}
		}
		out = append(out, o)
	}
	*opts = out
	return nil
}

// MarshalJSON encodes every option with its "kind".
func (opts Options) MarshalJSON() ([]byte, error) {
	out := make([]map[string]any, 0, len(opts))
	for _, o := range opts {
		body, err := json.Marshal(o)
		if err != nil {
			return nil, err
		}
		m := map[string]any{}
		if err := json.Unmarshal(body, &m); err != nil {
			return nil, err
		}
		m["kind"] = o.Kind()
		out = append(out, m)
	}
	return json.Marshal(out)
}

func decodeOption(data []byte) (Option, error) {
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}
	switch head.Kind {
	case KindCutting:
		return decodeAs[Cutting](data)
	case KindLamination:
		return decodeAs[Lamination](data)
	case KindPlotterCut:
		return decodeAs[PlotterCut](data)
	case KindFindMarks:
		return FindMarks{}, nil
	case KindPacking:
		return decodeAs[Packing](data)
	case KindShipment:
		return decodeAs[Shipment](data)
	case KindPrint:
		return decodeAs[Print](data)
	case "":
		return nil, fmt.Errorf("missing kind")
	}
	return nil, fmt.Errorf("unknown kind %q", head.Kind)
}

func decodeAs[T Option](data []byte) (Option, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
