package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"contest-api/internal/middleware"
	"contest-api/internal/models"
	"contest-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
	logger      zerolog.Logger
}

func NewUserHandler(userService *services.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Create is idempotent by email: signing in again with a known email changes
// nothing and reports a null insertedId.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	id, existed, err := h.userService.Create(r.Context(), &user)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to create user")
		return
	}
	if existed {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"message":    "user already exists",
			"insertedId": nil,
		})
		return
	}

	respondWithJSON(w, http.StatusOK, models.InsertResult{InsertedID: &id})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list users")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to list users")
		return
	}

	respondWithJSON(w, http.StatusOK, users)
}

// GetAdminFlag tells a signed-in user whether they are an admin. Self-only:
// the path email must match the authenticated identity.
func (h *UserHandler) GetAdminFlag(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	authedEmail, ok := middleware.GetUserEmail(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}
	if email != authedEmail {
		respondWithError(w, http.StatusForbidden, "forbidden", "You can only check your own account")
		return
	}

	admin, err := h.userService.IsAdmin(r.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("Admin flag lookup failed")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to look up user")
		return
	}

	respondWithJSON(w, http.StatusOK, models.AdminFlagResponse{Admin: admin})
}

func (h *UserHandler) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res, err := h.userService.PromoteToAdmin(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", id).Msg("Promotion failed")
		respondWithStoreError(w, err, "Failed to update user role")
		return
	}

	respondWithJSON(w, http.StatusOK, res)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.userService.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("user_id", id).Msg("User delete failed")
		respondWithStoreError(w, err, "Failed to delete user")
		return
	}

	respondWithJSON(w, http.StatusOK, models.DeleteResult{DeletedCount: deleted})
}
