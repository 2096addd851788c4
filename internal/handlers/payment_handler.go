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

type PaymentHandler struct {
	paymentService *services.PaymentService
	logger         zerolog.Logger
}

func NewPaymentHandler(paymentService *services.PaymentService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	clientSecret, err := h.paymentService.CreateIntent(r.Context(), req.Price)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "payment_intent_failed", "Failed to create payment intent")
		return
	}

	respondWithJSON(w, http.StatusOK, models.PaymentIntentResponse{ClientSecret: clientSecret})
}

// Settle records the payment and clears the settled cart items. When cart
// cleanup fails after the payment was recorded, the response carries the
// partial result so the caller can reconcile by id.
func (h *PaymentHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	result, err := h.paymentService.Settle(r.Context(), &payment)
	if err != nil {
		if result != nil {
			respondWithJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"error":         "settlement_incomplete",
				"message":       "Payment recorded but cart cleanup failed",
				"paymentResult": result.PaymentResult,
			})
			return
		}
		respondWithStoreError(w, err, "Failed to record payment")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// History is self-only: the path email must match the authenticated identity.
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	authedEmail, ok := middleware.GetUserEmail(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "unauthorized", "User not authenticated")
		return
	}
	if email != authedEmail {
		respondWithError(w, http.StatusForbidden, "forbidden", "You can only view your own payments")
		return
	}

	payments, err := h.paymentService.History(r.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("Failed to fetch payment history")
		respondWithError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch payment history")
		return
	}

	respondWithJSON(w, http.StatusOK, payments)
}
