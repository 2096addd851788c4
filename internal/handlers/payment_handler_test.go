package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"contest-api/internal/middleware"
	"contest-api/internal/models"
	"contest-api/internal/services"
)

type fakePaymentStore struct {
	payments []models.Payment
	carts    map[string]bool
}

func newFakePaymentStore(cartIDs ...string) *fakePaymentStore {
	carts := map[string]bool{}
	for _, id := range cartIDs {
		carts[id] = true
	}
	return &fakePaymentStore{carts: carts}
}

func (f *fakePaymentStore) InsertPayment(ctx context.Context, payment *models.Payment) (string, error) {
	f.payments = append(f.payments, *payment)
	return "payment-1", nil
}

func (f *fakePaymentStore) ListPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	out := []models.Payment{}
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentStore) DeleteCartItems(ctx context.Context, ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if f.carts[id] {
			delete(f.carts, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeProcessor struct{}

func (fakeProcessor) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	return "secret_123", nil
}

func newPaymentHandler(store *fakePaymentStore) *PaymentHandler {
	svc := services.NewPaymentService(store, fakeProcessor{}, zerolog.Nop())
	return NewPaymentHandler(svc, zerolog.Nop())
}

func TestCreateIntentReturnsClientSecret(t *testing.T) {
	t.Parallel()

	handler := newPaymentHandler(newFakePaymentStore())

	rec := httptest.NewRecorder()
	handler.CreateIntent(rec, httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(`{"price":10}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var body models.PaymentIntentResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body.ClientSecret != "secret_123" {
		t.Errorf("clientSecret = %q, want secret_123", body.ClientSecret)
	}
}

func TestSettleClearsCartAndReportsBothResults(t *testing.T) {
	t.Parallel()

	store := newFakePaymentStore("cart-1", "cart-2")
	handler := newPaymentHandler(store)

	body := `{"email":"a@x.com","price":10,"cartIds":["cart-1","cart-2"]}`
	rec := httptest.NewRecorder()
	handler.Settle(rec, httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var result models.SettlementResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.PaymentResult.InsertedID == nil {
		t.Fatal("paymentResult.insertedId missing")
	}
	if result.DeleteResult.DeletedCount != 2 {
		t.Errorf("deletedCount = %d, want 2", result.DeleteResult.DeletedCount)
	}
	if len(store.carts) != 0 {
		t.Errorf("cart ids left after settlement: %v", store.carts)
	}
}

func TestPaymentHistoryIsSelfOnly(t *testing.T) {
	t.Parallel()

	store := newFakePaymentStore()
	store.payments = []models.Payment{{Email: "a@x.com", Price: 10}}
	handler := newPaymentHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/payments/a@x.com", nil)
	req = mux.SetURLVars(req, map[string]string{"email": "a@x.com"})
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserEmailKey, "b@x.com"))

	rec := httptest.NewRecorder()
	handler.History(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestPaymentHistoryForSelf(t *testing.T) {
	t.Parallel()

	store := newFakePaymentStore()
	store.payments = []models.Payment{
		{Email: "a@x.com", Price: 10},
		{Email: "b@x.com", Price: 99},
	}
	handler := newPaymentHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/payments/a@x.com", nil)
	req = mux.SetURLVars(req, map[string]string{"email": "a@x.com"})
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserEmailKey, "a@x.com"))

	rec := httptest.NewRecorder()
	handler.History(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var payments []models.Payment
	if err := json.NewDecoder(rec.Body).Decode(&payments); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(payments) != 1 || payments[0].Email != "a@x.com" {
		t.Errorf("payments = %+v, want only a@x.com's", payments)
	}
}
