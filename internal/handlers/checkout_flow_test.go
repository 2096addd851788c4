package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"contest-api/internal/models"
	"contest-api/internal/services"
)

// fakeCheckoutStore backs both the cart and payment services so the whole
// add-to-cart / settle flow runs against one set of cart rows.
type fakeCheckoutStore struct {
	nextID   int
	carts    map[string]models.CartItem
	payments []models.Payment
}

func newFakeCheckoutStore() *fakeCheckoutStore {
	return &fakeCheckoutStore{carts: map[string]models.CartItem{}}
}

func (f *fakeCheckoutStore) ListCartItems(ctx context.Context, email string) ([]models.CartItem, error) {
	out := []models.CartItem{}
	for _, item := range f.carts {
		if item.Email == email {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCheckoutStore) InsertCartItem(ctx context.Context, item *models.CartItem) (string, error) {
	f.nextID++
	id := fmt.Sprintf("cart-%d", f.nextID)
	f.carts[id] = *item
	return id, nil
}

func (f *fakeCheckoutStore) DeleteCartItem(ctx context.Context, id string) (int64, error) {
	if _, ok := f.carts[id]; !ok {
		return 0, nil
	}
	delete(f.carts, id)
	return 1, nil
}

func (f *fakeCheckoutStore) InsertPayment(ctx context.Context, payment *models.Payment) (string, error) {
	f.payments = append(f.payments, *payment)
	return fmt.Sprintf("payment-%d", len(f.payments)), nil
}

func (f *fakeCheckoutStore) ListPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	out := []models.Payment{}
	for _, p := range f.payments {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCheckoutStore) DeleteCartItems(ctx context.Context, ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		n, _ := f.DeleteCartItem(ctx, id)
		deleted += n
	}
	return deleted, nil
}

func TestCheckoutFlowSettlesCart(t *testing.T) {
	t.Parallel()

	store := newFakeCheckoutStore()
	cartHandler := NewCartHandler(services.NewCartService(store, zerolog.Nop()), zerolog.Nop())
	paymentHandler := NewPaymentHandler(services.NewPaymentService(store, fakeProcessor{}, zerolog.Nop()), zerolog.Nop())

	// Add a contest to the cart.
	rec := httptest.NewRecorder()
	cartHandler.Add(rec, httptest.NewRequest(http.MethodPost, "/carts",
		strings.NewReader(`{"email":"a@x.com","contestId":"C1","price":10}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("cart add status = %d, want %d", rec.Code, http.StatusOK)
	}
	var added models.InsertResult
	if err := json.NewDecoder(rec.Body).Decode(&added); err != nil {
		t.Fatalf("decoding cart add response: %v", err)
	}
	if added.InsertedID == nil {
		t.Fatal("cart add returned no id")
	}
	cartID := *added.InsertedID

	// Settle a payment referencing that cart item.
	settleBody := fmt.Sprintf(`{"email":"a@x.com","price":10,"cartIds":[%q]}`, cartID)
	rec = httptest.NewRecorder()
	paymentHandler.Settle(rec, httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(settleBody)))
	if rec.Code != http.StatusOK {
		t.Fatalf("settle status = %d, want %d", rec.Code, http.StatusOK)
	}
	var settled models.SettlementResult
	if err := json.NewDecoder(rec.Body).Decode(&settled); err != nil {
		t.Fatalf("decoding settle response: %v", err)
	}
	if settled.DeleteResult.DeletedCount != 1 {
		t.Errorf("deletedCount = %d, want 1", settled.DeleteResult.DeletedCount)
	}

	// The settled item no longer shows up in the owner's cart.
	rec = httptest.NewRecorder()
	cartHandler.List(rec, httptest.NewRequest(http.MethodGet, "/carts?email=a@x.com", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("cart list status = %d, want %d", rec.Code, http.StatusOK)
	}
	var items []models.CartItem
	if err := json.NewDecoder(rec.Body).Decode(&items); err != nil {
		t.Fatalf("decoding cart list response: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("cart still holds %d items after settlement", len(items))
	}

	// The payment is visible in the payer's history.
	payments, err := store.ListPaymentsByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("listing payments: %v", err)
	}
	if len(payments) != 1 {
		t.Errorf("payments recorded = %d, want 1", len(payments))
	}
}
