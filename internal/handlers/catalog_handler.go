package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"contest-api/internal/models"
	"contest-api/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
	logger         zerolog.Logger
}

func NewCatalogHandler(catalogService *services.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

func (h *CatalogHandler) ListContests(w http.ResponseWriter, r *http.Request) {
	contests, err := h.catalogService.ListContests(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list contests")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to list contests")
		return
	}

	respondWithJSON(w, http.StatusOK, contests)
}

func (h *CatalogHandler) GetContest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	contest, err := h.catalogService.GetContest(r.Context(), id)
	if err != nil {
		respondWithStoreError(w, err, "Failed to fetch contest")
		return
	}

	respondWithJSON(w, http.StatusOK, contest)
}

func (h *CatalogHandler) CreateContest(w http.ResponseWriter, r *http.Request) {
	var contest models.Contest
	if err := json.NewDecoder(r.Body).Decode(&contest); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	id, err := h.catalogService.CreateContest(r.Context(), &contest)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to create contest")
		return
	}

	respondWithJSON(w, http.StatusOK, models.InsertResult{InsertedID: &id})
}

func (h *CatalogHandler) UpdateContest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var upd models.ContestUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	res, err := h.catalogService.UpdateContest(r.Context(), id, &upd)
	if err != nil {
		respondWithStoreError(w, err, "Failed to update contest")
		return
	}

	respondWithJSON(w, http.StatusOK, res)
}

func (h *CatalogHandler) DeleteContest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.catalogService.DeleteContest(r.Context(), id)
	if err != nil {
		respondWithStoreError(w, err, "Failed to delete contest")
		return
	}

	respondWithJSON(w, http.StatusOK, models.DeleteResult{DeletedCount: deleted})
}

func (h *CatalogHandler) ListGallery(w http.ResponseWriter, r *http.Request) {
	docs, err := h.catalogService.ListGallery(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list gallery")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to list gallery")
		return
	}

	respondWithJSON(w, http.StatusOK, docs)
}

func (h *CatalogHandler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	docs, err := h.catalogService.ListFeatures(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list features")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to list features")
		return
	}

	respondWithJSON(w, http.StatusOK, docs)
}
