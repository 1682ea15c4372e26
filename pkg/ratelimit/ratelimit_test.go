package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestStoreSameKeyReturnsSameLimiter(t *testing.T) {
	s := NewStore(10, 1)

	l1 := s.Get("k")
	l2 := s.Get("k")
	if l1 != l2 {
		t.Fatalf("expected same limiter pointer for same key")
	}
}

func TestStoreLowBurstRejectsSecondImmediateAllow(t *testing.T) {
	s := NewStore(0.02, 1)

	lim := s.Get("k")
	if !lim.Allow() {
		t.Fatalf("expected first Allow to be true")
	}
	if lim.Allow() {
		t.Fatalf("expected second immediate Allow to be false (burst=1)")
	}
}

func TestStoreCleanupRemovesIdleEntries(t *testing.T) {
	s := NewStore(10, 1, WithIdleTTL(2*time.Millisecond))

	before := s.Get("k")
	time.Sleep(4 * time.Millisecond)

	s.Cleanup()

	after := s.Get("k")
	if before == after {
		t.Fatalf("expected limiter to be recreated after cleanup")
	}
}

func TestStoreJanitorEvictsIdleLimiters(t *testing.T) {
	s := NewStore(10, 1, WithIdleTTL(time.Millisecond), WithCleanupEvery(5*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.StartJanitor(ctx)

	for i := 0; i < 1000; i++ {
		s.Get("client-" + strconv.Itoa(i))
	}

	deadline := time.Now().Add(time.Second)
	for s.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if n := s.Len(); n != 0 {
		t.Fatalf("expected idle limiters to be evicted, still retaining %d", n)
	}
}

func TestStoreJanitorStopsOnCancel(t *testing.T) {
	s := NewStore(10, 1, WithIdleTTL(time.Millisecond), WithCleanupEvery(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	s.StartJanitor(ctx)
	cancel()
	time.Sleep(5 * time.Millisecond)

	s.Get("k")
	time.Sleep(10 * time.Millisecond)
	if s.Len() != 1 {
		t.Fatalf("expected cleanup to stop after cancel, got %d entries", s.Len())
	}
}

func TestMiddlewareRejectsOverBudget(t *testing.T) {
	stats := NewMemoryStats()
	mw := Middleware(Options{Store: NewStore(0.01, 1), Stats: stats})
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/shop/getTotal", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be rejected, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header on rejection")
	}

	total := stats.Total()
	if total.Allowed != 1 || total.Denied != 1 {
		t.Fatalf("expected 1 allowed / 1 denied, got %+v", total)
	}
}

func TestMiddlewareKeysClientsIndependently(t *testing.T) {
	mw := Middleware(Options{Store: NewStore(0.01, 1)})
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i, addr := range []string{"10.0.0.1:1", "10.0.0.2:2"} {
		req := httptest.NewRequest(http.MethodGet, "/shop/getTotal", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("client %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestClientAddrFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:4711"
	if got := ClientAddr(req); got != "192.0.2.7" {
		t.Fatalf("expected host part, got %q", got)
	}

	req.RemoteAddr = "no-port-here"
	if got := ClientAddr(req); got != "no-port-here" {
		t.Fatalf("expected raw RemoteAddr fallback, got %q", got)
	}
}
