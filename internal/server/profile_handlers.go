package server

import (
	"net/http"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fincalc/calcsuite/internal/profile"
	"github.com/fincalc/calcsuite/internal/recommend"
	"github.com/fincalc/calcsuite/pkg/coldata"
	"github.com/fincalc/calcsuite/pkg/statetax"
)

func (h *handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	if h.profiles == nil {
		h.respondError(w, http.StatusServiceUnavailable, "profile storage not configured", "server.handleProfile")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.writeJSON(w, http.StatusOK, h.profiles.Profile())
	case http.MethodPatch:
		var patch profile.FinancialProfile
		if !h.decodeAndValidate(w, r, &patch, "server.handleProfile") {
			return
		}
		merged, err := h.profiles.Patch(patch)
		if err != nil {
			h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleProfile")
			return
		}
		h.writeJSON(w, http.StatusOK, merged)
	case http.MethodDelete:
		// Reset drops profile and flow progress together so a cleared
		// profile never keeps stale step completions.
		if err := h.profiles.Reset(); err != nil {
			h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleProfile")
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleProfileExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if h.profiles == nil {
		h.respondError(w, http.StatusServiceUnavailable, "profile storage not configured", "server.handleProfileExport")
		return
	}

	data, err := yaml.Marshal(h.profiles.Profile())
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to encode profile", "server.handleProfileExport")
		return
	}
	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Content-Disposition", `attachment; filename="financial-profile.yaml"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Error("failed to write profile export", zap.Error(err))
	}
}

func (h *handler) handleFlow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if h.profiles == nil {
		h.respondError(w, http.StatusServiceUnavailable, "profile storage not configured", "server.handleFlow")
		return
	}
	h.writeJSON(w, http.StatusOK, h.flowState())
}

type flowStateResponse struct {
	Steps    []profile.FlowStep   `json:"steps"`
	Progress profile.FlowProgress `json:"progress"`
	NextStep *profile.FlowStep    `json:"nextStep"`
	Complete bool                 `json:"complete"`
}

func (h *handler) flowState() flowStateResponse {
	progress := h.profiles.Flow()
	resp := flowStateResponse{
		Steps:    profile.FlowSteps,
		Progress: progress,
		Complete: progress.Complete(),
	}
	if next, ok := progress.Next(); ok {
		resp.NextStep = &next
	}
	return resp
}

type flowStepRequest struct {
	Step profile.FlowStep `json:"step" validate:"required"`
}

func (h *handler) handleFlowComplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if h.profiles == nil {
		h.respondError(w, http.StatusServiceUnavailable, "profile storage not configured", "server.handleFlowComplete")
		return
	}
	var req flowStepRequest
	if !h.decodeAndValidate(w, r, &req, "server.handleFlowComplete") {
		return
	}
	if !profile.ValidStep(req.Step) {
		h.respondError(w, http.StatusBadRequest, "unknown flow step: "+string(req.Step), "server.handleFlowComplete")
		return
	}
	if _, err := h.profiles.MarkStepComplete(req.Step); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleFlowComplete")
		return
	}
	h.writeJSON(w, http.StatusOK, h.flowState())
}

func (h *handler) handleFlowDismiss(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if h.profiles == nil {
		h.respondError(w, http.StatusServiceUnavailable, "profile storage not configured", "server.handleFlowDismiss")
		return
	}
	if _, err := h.profiles.Dismiss(); err != nil {
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleFlowDismiss")
		return
	}
	h.writeJSON(w, http.StatusOK, h.flowState())
}

type recommendationsResponse struct {
	Recommendations []recommend.Recommendation `json:"recommendations"`
	HealthScore     int                        `json:"healthScore"`
}

func (h *handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if h.profiles == nil {
		h.respondError(w, http.StatusServiceUnavailable, "profile storage not configured", "server.handleRecommendations")
		return
	}

	p := h.profiles.Profile()
	h.writeJSON(w, http.StatusOK, recommendationsResponse{
		Recommendations: recommend.Evaluate(p),
		HealthScore:     recommend.HealthScore(p),
	})
}

type stateSummary struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	HasIncomeTax bool   `json:"hasIncomeTax"`
}

func (h *handler) handleStates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	states := make([]stateSummary, 0, len(statetax.Codes()))
	for _, code := range statetax.Codes() {
		info, _ := statetax.Lookup(code)
		states = append(states, stateSummary{
			Code:         code,
			Name:         info.Name,
			HasIncomeTax: info.HasIncomeTax,
		})
	}
	h.writeJSON(w, http.StatusOK, map[string][]stateSummary{"states": states})
}

type citySummary struct {
	Name    string          `json:"name"`
	Indices coldata.Indices `json:"indices"`
}

func (h *handler) handleCities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	names := coldata.Cities()
	cities := make([]citySummary, 0, len(names))
	for _, name := range names {
		city, _ := coldata.Lookup(name)
		cities = append(cities, citySummary{Name: name, Indices: city.Indices})
	}
	h.writeJSON(w, http.StatusOK, map[string][]citySummary{"cities": cities})
}
