package server

import (
	"errors"
	"net/http"

	"github.com/fincalc/calcsuite/internal/stats"
)

type trackRequest struct {
	CalculatorName       string `json:"calculatorName" validate:"required"`
	FinancialHealthScore *int   `json:"financialHealthScore"`
}

func (h *handler) handleTrack(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var req trackRequest
	if !h.decodeAndValidate(w, r, &req, "server.handleTrack") {
		return
	}

	err := h.stats.RecordUsage(r.Context(), req.CalculatorName, req.FinancialHealthScore)
	if errors.Is(err, stats.ErrUnavailable) {
		h.respondError(w, http.StatusServiceUnavailable, "usage tracking is not configured", "server.handleTrack")
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to track usage", "server.handleTrack")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type subscribeRequest struct {
	Email        string `json:"email" validate:"required,email"`
	CalculatorID string `json:"calculatorId" validate:"required"`
}

func (h *handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	var req subscribeRequest
	if !h.decodeAndValidate(w, r, &req, "server.handleSubscribe") {
		return
	}

	err := h.stats.Subscribe(r.Context(), req.Email, req.CalculatorID)
	if errors.Is(err, stats.ErrUnavailable) {
		h.respondError(w, http.StatusServiceUnavailable, "subscriptions are not configured", "server.handleSubscribe")
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to subscribe", "server.handleSubscribe")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *handler) handleAdConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	cfg, err := h.stats.AdConfig(r.Context())
	if errors.Is(err, stats.ErrUnavailable) {
		// Ads still render without a database; serve the defaults.
		h.writeJSON(w, http.StatusOK, stats.DefaultAdConfig())
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch ad config", "server.handleAdConfig")
		return
	}
	h.writeJSON(w, http.StatusOK, cfg)
}

// authorizeAdmin checks the bearer token against the configured password.
// With no password configured every admin request is rejected.
func (h *handler) authorizeAdmin(w http.ResponseWriter, r *http.Request, op string) bool {
	if h.adminPassword == "" {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized", op)
		return false
	}
	if r.Header.Get("Authorization") != "Bearer "+h.adminPassword {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized", op)
		return false
	}
	return true
}

func (h *handler) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if !h.authorizeAdmin(w, r, "server.handleAdminStats") {
		return
	}

	counts, err := h.stats.UsageCounts(r.Context())
	if errors.Is(err, stats.ErrUnavailable) {
		h.respondError(w, http.StatusServiceUnavailable, "usage tracking is not configured", "server.handleAdminStats")
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to fetch stats", "server.handleAdminStats")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]stats.UsageCount{"stats": counts})
}

func (h *handler) handleAdminAdConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if !h.authorizeAdmin(w, r, "server.handleAdminAdConfig") {
		return
	}

	var cfg stats.AdConfig
	if !h.decodeAndValidate(w, r, &cfg, "server.handleAdminAdConfig") {
		return
	}

	err := h.stats.SetAdConfig(r.Context(), cfg)
	if errors.Is(err, stats.ErrUnavailable) {
		h.respondError(w, http.StatusServiceUnavailable, "ad config storage is not configured", "server.handleAdminAdConfig")
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Failed to save ad config", "server.handleAdminAdConfig")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

func (h *handler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if !h.decodeAndValidate(w, r, &req, "server.handleAdminLogin") {
		return
	}
	if h.adminPassword == "" || req.Password != h.adminPassword {
		h.writeJSON(w, http.StatusUnauthorized, map[string]bool{"success": false})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
