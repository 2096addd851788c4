package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"contest-api/internal/models"
	"contest-api/internal/services"
)

type fakeStatsStore struct {
	users    int64
	contests int64
	payments []models.Payment
}

func (f *fakeStatsStore) CountUsers(ctx context.Context) (int64, error)    { return f.users, nil }
func (f *fakeStatsStore) CountContests(ctx context.Context) (int64, error) { return f.contests, nil }
func (f *fakeStatsStore) CountPayments(ctx context.Context) (int64, error) {
	return int64(len(f.payments)), nil
}

func (f *fakeStatsStore) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, p := range f.payments {
		total += p.Price
	}
	return total, nil
}

func newStatsHandler(store *fakeStatsStore) *StatsHandler {
	return NewStatsHandler(services.NewStatsService(store, zerolog.Nop()), zerolog.Nop())
}

func TestAdminStatsSumsRevenue(t *testing.T) {
	t.Parallel()

	store := &fakeStatsStore{
		users:    3,
		contests: 2,
		payments: []models.Payment{
			{Email: "a@x.com", Price: 10.00},
			{Email: "b@x.com", Price: 25.50},
		},
	}
	handler := newStatsHandler(store)

	rec := httptest.NewRecorder()
	handler.AdminStats(rec, httptest.NewRequest(http.MethodGet, "/admin-stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var stats models.AdminStats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if stats.Revenue != 35.50 {
		t.Errorf("revenue = %v, want 35.50", stats.Revenue)
	}
	if stats.Users != 3 || stats.ContestsItems != 2 || stats.Pay != 2 {
		t.Errorf("counts = %+v, want users 3, contests 2, payments 2", stats)
	}
}

func TestAdminStatsWithNoPayments(t *testing.T) {
	t.Parallel()

	handler := newStatsHandler(&fakeStatsStore{})

	rec := httptest.NewRecorder()
	handler.AdminStats(rec, httptest.NewRequest(http.MethodGet, "/admin-stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var stats models.AdminStats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if stats.Revenue != 0 {
		t.Errorf("revenue = %v, want 0", stats.Revenue)
	}
}

func TestOrderStatsIsAnEmptyList(t *testing.T) {
	t.Parallel()

	handler := newStatsHandler(&fakeStatsStore{})

	rec := httptest.NewRecorder()
	handler.OrderStats(rec, httptest.NewRequest(http.MethodGet, "/order-stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want an empty JSON array", got)
	}
}
