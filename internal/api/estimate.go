package api

import (
	"encoding/json"
	"net/http"

	"github.com/consultdesk/server/internal/domain"
	"github.com/consultdesk/server/internal/estimate"
	"github.com/consultdesk/server/internal/summary"
	"github.com/go-chi/chi/v5"
)

// EstimateHandler handles the calculator and static-catalog endpoints. The
// engines are pure; these handlers only decode and dispatch.
type EstimateHandler struct {
	*Handler
}

// NewEstimateHandler creates a new estimate handler.
func NewEstimateHandler(base *Handler) *EstimateHandler {
	return &EstimateHandler{Handler: base}
}

// RegisterRoutes registers calculator routes.
func (h *EstimateHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/platforms", h.Platforms)
		r.Get("/features", h.Features)
		r.Get("/presets", h.Presets)
		r.Post("/estimate", h.Estimate)
		r.Post("/estimate/quote", h.Quote)
	})
}

// Platforms returns the fixed delivery-platform catalog.
func (h *EstimateHandler) Platforms(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, domain.Platforms)
}

// Features returns the feature catalog for a mode (webbuilder by default).
func (h *EstimateHandler) Features(w http.ResponseWriter, r *http.Request) {
	mode := estimate.Mode(r.URL.Query().Get("mode"))
	switch mode {
	case "", estimate.ModeWebbuilder, estimate.ModeCustom:
	default:
		Error(w, http.StatusBadRequest, "unknown mode")
		return
	}
	JSON(w, http.StatusOK, estimate.Catalog(mode))
}

// Presets returns the quick quote presets and section-count samples.
func (h *EstimateHandler) Presets(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"presets":        domain.Presets,
		"sectionSamples": domain.SectionSamples,
	})
}

func decodeInput(w http.ResponseWriter, r *http.Request) (estimate.Input, bool) {
	var in estimate.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		Error(w, http.StatusBadRequest, "invalid estimate input")
		return in, false
	}
	switch in.Mode {
	case "", estimate.ModeWebbuilder, estimate.ModeCustom:
	default:
		Error(w, http.StatusBadRequest, "unknown mode")
		return in, false
	}
	return in, true
}

// Estimate computes the grade and itemized price for either mode.
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	res := estimate.Calculate(in)
	JSON(w, http.StatusOK, map[string]interface{}{
		"result": res,
		"grade":  estimate.GradeInfos[res.Grade],
	})
}

// Quote renders the calculator's plain-text quote summary for clipboard
// export.
func (h *EstimateHandler) Quote(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	res := estimate.Calculate(in)
	Text(w, http.StatusOK, summary.Quote(in, res))
}
