package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/shopquote/internal/catalog"
	"github.com/Simplici0/shopquote/internal/layout"
	"github.com/Simplici0/shopquote/internal/pricing"
	"github.com/Simplici0/shopquote/internal/production"
	"github.com/Simplici0/shopquote/internal/quote"
)

const (
	requestTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// optionMaterials are the catalog categories an option draws its stock from.
var optionMaterials = map[string]string{
	pricing.KindLamination: "laminat",
	pricing.KindPacking:    "pack",
}

// optionEquipment are the equipment categories an option lets the caller pick from.
var optionEquipment = map[string]string{
	pricing.KindPrint:    "printer",
	pricing.KindShipment: "cargo",
}

type server struct {
	catalog        *catalog.Catalog
	registry       *pricing.Registry
	roundThreshold float64
	auth           tokenAuth
}

func newServer(cat *catalog.Catalog, reg *pricing.Registry, roundThreshold float64, apiToken string) *server {
	return &server{
		catalog:        cat,
		registry:       reg,
		roundThreshold: roundThreshold,
		auth:           newTokenAuth(apiToken),
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.auth.middleware)
		r.Get("/calculators", s.handleCalculators)
		r.Get("/options/{slug}", s.handleOptions)
		r.Post("/calc/{slug}", s.handleCalc)
	})

	return r
}

// requestLogger logs one line per request through slog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.DebugContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type calculatorView struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *server) handleCalculators(w http.ResponseWriter, _ *http.Request) {
	entries := s.registry.Entries()
	out := make([]calculatorView, 0, len(entries))
	for _, e := range entries {
		out = append(out, calculatorView{Slug: e.Slug, Name: e.Name, Description: e.Description})
	}
	respondJSON(w, http.StatusOK, out)
}

type materialView struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Group string        `json:"group,omitempty"`
	Sizes []layout.Size `json:"sizes"`
}

type equipmentView struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	MaxSize layout.Size `json:"max_size"`
}

type optionsView struct {
	Slug      string                     `json:"slug"`
	Name      string                     `json:"name"`
	Options   []string                   `json:"options"`
	Modes     []string                   `json:"modes"`
	Materials map[string][]materialView  `json:"materials"`
	Equipment map[string][]equipmentView `json:"equipment,omitempty"`
}

func (s *server) handleOptions(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.registry.Lookup(chi.URLParam(r, "slug"))
	if !ok {
		respondError(w, http.StatusNotFound, "unknown calculator")
		return
	}

	view := optionsView{
		Slug:      entry.Slug,
		Name:      entry.Name,
		Options:   entry.Options,
		Materials: make(map[string][]materialView),
	}
	if view.Options == nil {
		view.Options = []string{}
	}
	for _, m := range production.Modes {
		view.Modes = append(view.Modes, m.String())
	}

	categories := append([]string{}, entry.Categories...)
	for _, kind := range entry.Options {
		if c, ok := optionMaterials[kind]; ok {
			categories = append(categories, c)
		}
		if c, ok := optionEquipment[kind]; ok {
			if view.Equipment == nil {
				view.Equipment = make(map[string][]equipmentView)
			}
			view.Equipment[c] = s.equipmentViews(c)
		}
	}
	for _, c := range categories {
		if _, seen := view.Materials[c]; !seen {
			view.Materials[c] = s.materialViews(c)
		}
	}

	respondJSON(w, http.StatusOK, view)
}

func (s *server) materialViews(category string) []materialView {
	materials := s.catalog.Materials(category)
	out := make([]materialView, 0, len(materials))
	for _, m := range materials {
		out = append(out, materialView{ID: m.ID, Name: m.Name, Group: m.Group, Sizes: m.Sizes})
	}
	return out
}

func (s *server) equipmentViews(category string) []equipmentView {
	equipment := s.catalog.EquipmentIn(category)
	out := make([]equipmentView, 0, len(equipment))
	for _, e := range equipment {
		out = append(out, equipmentView{ID: e.ID, Name: e.Name, MaxSize: e.MaxSize})
	}
	return out
}

// calcRequest is the flat request body of the calc endpoint.
type calcRequest struct {
	Quantity    int             `json:"quantity"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	SheetWidth  float64         `json:"sheet_width"`
	SheetHeight float64         `json:"sheet_height"`
	Depth       float64         `json:"depth"`
	Margins     layout.Margins  `json:"margins"`
	Gap         float64         `json:"gap"`
	Axis        string          `json:"axis"`
	MaterialID  string          `json:"material_id"`
	Mode        string          `json:"mode"`
	Options     pricing.Options `json:"options"`
}

func (c calcRequest) toPricing() (pricing.Request, error) {
	mode, err := production.ParseMode(c.Mode)
	if err != nil {
		return pricing.Request{}, err
	}
	axis, err := parseAxis(c.Axis)
	if err != nil {
		return pricing.Request{}, err
	}
	return pricing.Request{
		Quantity: c.Quantity,
		Geometry: pricing.Geometry{
			Item:    layout.Size{W: c.Width, H: c.Height},
			Sheet:   layout.Size{W: c.SheetWidth, H: c.SheetHeight},
			Depth:   c.Depth,
			Margins: c.Margins,
			Gap:     c.Gap,
			Axis:    axis,
		},
		MaterialID: c.MaterialID,
		Options:    c.Options,
		Mode:       mode,
	}, nil
}

func parseAxis(s string) (layout.Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return layout.AxisAuto, nil
	case "long":
		return layout.AxisLong, nil
	case "short":
		return layout.AxisShort, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

type calcResponse struct {
	quote.Quote
	Calculator   string  `json:"calculator"`
	Mode         string  `json:"mode"`
	UnitPrice    float64 `json:"unit_price"`
	RoundedPrice float64 `json:"rounded_price"`
}

func (s *server) handleCalc(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.registry.Lookup(chi.URLParam(r, "slug"))
	if !ok {
		respondError(w, http.StatusNotFound, "unknown calculator")
		return
	}

	var body calcRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req, err := body.toPricing()
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.DebugContext(r.Context(), "calculating quote",
		"calculator", entry.Slug,
		"quantity", req.Quantity,
		"mode", req.Mode.String(),
		"options", req.Options.Kinds(),
	)
	q, err := entry.Calc(s.catalog, req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			slog.ErrorContext(r.Context(), "calculation failed", "calculator", entry.Slug, "error", err)
			respondError(w, status, "internal error")
			return
		}
		respondError(w, status, err.Error())
		return
	}

	if q.Materials == nil {
		q.Materials = map[string]quote.Line{}
	}
	respondJSON(w, http.StatusOK, calcResponse{
		Quote:        q,
		Calculator:   entry.Slug,
		Mode:         req.Mode.String(),
		UnitPrice:    q.UnitPrice(req.Quantity),
		RoundedPrice: pricing.RoundPrice(q.Price, req.Quantity, s.roundThreshold),
	})
}

// statusFor maps calculator error kinds to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, pricing.ErrInvalidOptions):
		return http.StatusBadRequest
	case errors.Is(err, pricing.ErrInfeasibleGeometry),
		errors.Is(err, pricing.ErrMissingMaterial),
		errors.Is(err, pricing.ErrMissingEquipment):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
