package throttle_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adamwoolhether/pace/throttle"
)

func TestHandler_Validation(t *testing.T) {
	_, err := throttle.Handler(-time.Millisecond, nil, http.NotFoundHandler())
	if !errors.Is(err, throttle.ErrNegativeInterval) {
		t.Fatalf("exp ErrNegativeInterval; got: %v", err)
	}
}

func TestHandler_PacesRequests(t *testing.T) {
	const interval = 40 * time.Millisecond

	var served []time.Time
	h, err := throttle.Handler(interval, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = append(served, time.Now())
		w.WriteHeader(http.StatusNoContent)
	}))
	if err != nil {
		t.Fatal(err)
	}

	for range 3 {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		h.ServeHTTP(w, r)

		if w.Code != http.StatusNoContent {
			t.Fatalf("exp %d; got %d", http.StatusNoContent, w.Code)
		}
	}

	for i := 1; i < len(served); i++ {
		if gap := served[i].Sub(served[i-1]); gap < interval {
			t.Errorf("requests %d and %d served %v apart; exp >= %v", i-1, i, gap, interval)
		}
	}
}

func TestHandler_AbandonedRequest(t *testing.T) {
	called := false
	h, err := throttle.Handler(time.Minute, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/slow", nil).WithContext(ctx)

	h.ServeHTTP(w, r)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("exp %d; got %d", http.StatusServiceUnavailable, w.Code)
	}
	if called {
		t.Error("exp abandoned request not to reach the handler")
	}
}
