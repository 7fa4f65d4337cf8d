// Package server exposes the calculator suite over HTTP: the calculation
// endpoints, the shared profile and guided flow, recommendations, reference
// data, and the usage-tracking surface.
package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/fincalc/calcsuite/internal/profile"
	"github.com/fincalc/calcsuite/internal/stats"
)

// Options carries the handler dependencies. Profiles is required; Stats may
// wrap a nil pool when analytics is disabled.
type Options struct {
	Logger        *zap.Logger
	Profiles      *profile.Store
	Stats         *stats.Store
	AdminPassword string
	Version       string
}

type handler struct {
	logger        *zap.Logger
	profiles      *profile.Store
	stats         *stats.Store
	validate      *validator.Validate
	adminPassword string
	version       string
}

// NewHandler constructs the HTTP handler serving the calculator API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	statsStore := opts.Stats
	if statsStore == nil {
		statsStore = stats.NewStore(nil, logger)
	}

	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{
		logger:        logger,
		profiles:      opts.Profiles,
		stats:         statsStore,
		validate:      validator.New(),
		adminPassword: opts.AdminPassword,
		version:       version,
	}

	mux := http.NewServeMux()

	// Calculator endpoints
	mux.HandleFunc("/api/calc/hourly-to-salary", h.handleHourlyToSalary)
	mux.HandleFunc("/api/calc/take-home-pay", h.handleTakeHomePay)
	mux.HandleFunc("/api/calc/cost-of-living", h.handleCostOfLiving)
	mux.HandleFunc("/api/calc/interest", h.handleInterest)
	mux.HandleFunc("/api/calc/loan", h.handleLoan)
	mux.HandleFunc("/api/calc/mortgage", h.handleMortgage)
	mux.HandleFunc("/api/calc/savings-goal", h.handleSavingsGoal)
	mux.HandleFunc("/api/calc/net-worth", h.handleNetWorth)
	mux.HandleFunc("/api/calc/401k", h.handle401k)
	mux.HandleFunc("/api/calc/debt-payoff", h.handleDebtPayoff)
	mux.HandleFunc("/api/calc/budget", h.handleBudget)
	mux.HandleFunc("/api/calc/tax", h.handleTax)

	// Profile and guided flow
	mux.HandleFunc("/api/profile", h.handleProfile)
	mux.HandleFunc("/api/profile/export", h.handleProfileExport)
	mux.HandleFunc("/api/flow", h.handleFlow)
	mux.HandleFunc("/api/flow/complete", h.handleFlowComplete)
	mux.HandleFunc("/api/flow/dismiss", h.handleFlowDismiss)
	mux.HandleFunc("/api/recommendations", h.handleRecommendations)

	// Reference data
	mux.HandleFunc("/api/reference/states", h.handleStates)
	mux.HandleFunc("/api/reference/cities", h.handleCities)

	// Usage tracking and site configuration
	mux.HandleFunc("/api/track", h.handleTrack)
	mux.HandleFunc("/api/subscribe", h.handleSubscribe)
	mux.HandleFunc("/api/ad-config", h.handleAdConfig)
	mux.HandleFunc("/admin/stats", h.handleAdminStats)
	mux.HandleFunc("/admin/ad-config", h.handleAdminAdConfig)
	mux.HandleFunc("/admin/login", h.handleAdminLogin)

	mux.HandleFunc("/api/health", h.handleHealth)
	mux.HandleFunc("/api/version", h.handleVersion)

	return withCORS(mux)
}

// withCORS mirrors the permissive cross-origin policy the API has always
// shipped with.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

// decodeAndValidate parses the request body into dst and runs struct
// validation. It writes the error response itself and reports success.
func (h *handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "failed to decode request body: "+err.Error(), op)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			fields := make([]string, 0, len(invalid))
			for _, fe := range invalid {
				fields = append(fields, fe.Field()+" failed "+fe.Tag())
			}
			h.respondError(w, http.StatusBadRequest, "invalid input: "+strings.Join(fields, "; "), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, "invalid input: "+err.Error(), op)
		return false
	}
	return true
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
