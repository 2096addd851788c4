package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"contest-api/internal/models"
	"contest-api/internal/services"
)

type CartHandler struct {
	cartService *services.CartService
	logger      zerolog.Logger
}

func NewCartHandler(cartService *services.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	items, err := h.cartService.ListByOwner(r.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("Failed to list cart items")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to list cart items")
		return
	}

	respondWithJSON(w, http.StatusOK, items)
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	id, err := h.cartService.Add(r.Context(), &item)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to add cart item")
		return
	}

	respondWithJSON(w, http.StatusOK, models.InsertResult{InsertedID: &id})
}

func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.cartService.Remove(r.Context(), id)
	if err != nil {
		respondWithStoreError(w, err, "Failed to delete cart item")
		return
	}

	respondWithJSON(w, http.StatusOK, models.DeleteResult{DeletedCount: deleted})
}
