package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/blaze-intelligence/scoreboard-service/internal/domain"
	"github.com/blaze-intelligence/scoreboard-service/internal/logging"
	"github.com/blaze-intelligence/scoreboard-service/internal/scoreboard"
)

// Handler wires HTTP routes to the scoreboard service.
type Handler struct {
	svc    *scoreboard.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *scoreboard.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// indexResponse is the diagnostics payload for the scoreboard index route.
type indexResponse struct {
	Sports []domain.SportKey                           `json:"sports"`
	Cache  map[domain.SportKey]scoreboard.EntrySummary `json:"cache"`
}

// Index lists supported sports and the cache summary. Always 200.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	_ = r
	writeJSON(w, nethttp.StatusOK, indexResponse{
		Sports: h.svc.SupportedSports(),
		Cache:  h.svc.CacheSummary(),
	}, h.logger)
}

// Sport serves the scoreboard for one sport. An unsupported key is 404; a
// valid key never hard-fails because the service degrades to fallback data.
func (h *Handler) Sport(w nethttp.ResponseWriter, r *nethttp.Request) {
	raw := chi.URLParam(r, "sport")
	sport, err := domain.ParseSport(raw)
	if err != nil {
		logger := logging.FromContext(r.Context(), h.logger)
		logging.Warn(logger, "rejected unsupported sport", logging.FieldSport, raw)
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
		return
	}

	board, err := h.svc.GetScoreboard(r.Context(), sport)
	if err != nil {
		if sportErr, ok := domain.AsInvalidSportError(err); ok {
			writeError(w, r, nethttp.StatusNotFound, sportErr.Error(), h.logger)
			return
		}
		// The service contract is cache/live/fallback for valid sports; any
		// other error is a programming bug. Log it, hide it from the client.
		logging.Error(logging.FromContext(r.Context(), h.logger), "scoreboard request failed", err, logging.FieldSport, raw)
		writeError(w, r, nethttp.StatusInternalServerError, "internal server error", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, board, h.logger)
}
