package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"contest-api/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
	logger       zerolog.Logger
}

func NewStatsHandler(statsService *services.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

func (h *StatsHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.AdminStats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to compute admin stats")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to compute stats")
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.OrderStats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to compute order stats")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to compute stats")
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
