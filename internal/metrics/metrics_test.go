package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequest(t *testing.T) {
	r := New(nil)
	r.ObserveRequest(http.MethodGet, "/api/v1/orders", 200, 10*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "/api/v1/orders", 200, 5*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "", 404, time.Millisecond)

	if got := testutil.ToFloat64(r.requests.WithLabelValues("GET", "/api/v1/orders", "200")); got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}
	if got := testutil.ToFloat64(r.requests.WithLabelValues("GET", "unmatched", "404")); got != 1 {
		t.Fatalf("expected unmatched route label, got %v", got)
	}

	r.ObserveLogin("success")
	if got := testutil.ToFloat64(r.logins.WithLabelValues("success")); got != 1 {
		t.Fatalf("expected 1 login, got %v", got)
	}
}

func TestCollectionGauge(t *testing.T) {
	r := New(func(context.Context) (map[string]int64, error) {
		return map[string]int64{"orders": 5, "products": 4}, nil
	})

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `chokokon_collection_records{collection="orders"} 5`) {
		t.Fatalf("orders gauge missing from scrape:\n%s", body)
	}
}

func TestCollectionGaugeSurvivesStoreError(t *testing.T) {
	r := New(func(context.Context) (map[string]int64, error) {
		return nil, errors.New("closed")
	})
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("scrape should still succeed, got %d", rec.Code)
	}
}
