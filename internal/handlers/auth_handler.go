package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"contest-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(authService *services.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// IssueToken signs the identity the client asserts on sign-in. The actual
// credential check happened upstream; this endpoint only mints the token.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var identity struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	token, err := h.authService.IssueToken(identity.Email, identity.Name)
	if err != nil {
		h.logger.Error().Err(err).Msg("Token generation failed")
		respondWithError(w, http.StatusInternalServerError, "token_generation_failed", "Failed to generate token")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}
