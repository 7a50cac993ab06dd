// Package transport exposes the HTTP API.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fossabot/mochimap-api/internal/chain"
	"github.com/fossabot/mochimap-api/internal/model"
	"github.com/fossabot/mochimap-api/pkg/safe"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainService computes chain statistics for a block position.
	ChainService interface {
		ChainStats(ctx context.Context, position int64) (*model.ChainStats, error)
	}
)

// ChainHandler serves the chain statistics endpoints.
type ChainHandler struct {
	service ChainService
	logger  *zap.Logger
}

// NewChainHandler returns a ChainHandler instance.
func NewChainHandler(service ChainService, logger *zap.Logger) *ChainHandler {
	return &ChainHandler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the handler's routes on the router.
func (h *ChainHandler) Register(r *mux.Router) {
	r.HandleFunc("/chain", h.handleChainLatest).Methods(http.MethodGet)
	r.HandleFunc("/chain/{position:[0-9]+}", h.handleChainAt).Methods(http.MethodGet)
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
}

func (h *ChainHandler) handleChainLatest(w http.ResponseWriter, req *http.Request) {
	// The default request covers the last full window ending at the head.
	h.serveChainStats(w, req, -chain.MaxWindow)
}

func (h *ChainHandler) handleChainAt(w http.ResponseWriter, req *http.Request) {
	raw := mux.Vars(req)["position"]
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid block position")
		return
	}
	position, err := safe.Int64(parsed)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid block position")
		return
	}

	h.serveChainStats(w, req, position)
}

func (h *ChainHandler) serveChainStats(w http.ResponseWriter, req *http.Request, position int64) {
	stats, err := h.service.ChainStats(req.Context(), position)
	if err != nil {
		if errors.Is(err, chain.ErrUnavailable) {
			h.writeError(w, http.StatusNotFound, "no statistics for the requested block")
			return
		}
		h.logger.Error("chain stats failed", zap.Int64("position", position), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *ChainHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *ChainHandler) writeError(w http.ResponseWriter, code int, message string) {
	h.writeJSON(w, code, map[string]string{"error": message})
}

func (h *ChainHandler) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("write response failed", zap.Error(err))
	}
}
