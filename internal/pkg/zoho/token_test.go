package zoho

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestTokenRefreshIsSingleFlight(t *testing.T) {
	var exchanges int32
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&exchanges, 1)
		// Hold the exchange open long enough for concurrent callers to pile up.
		time.Sleep(50 * time.Millisecond)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "fresh-token",
			"expires_in":   3600,
			"token_type":   "Bearer",
		})
	}))
	defer tokenSrv.Close()

	store := newTestTokenStore(tokenSrv.URL, "stale-token")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Refresh(context.Background()); err != nil {
				t.Errorf("refresh failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&exchanges); got != 1 {
		t.Fatalf("expected concurrent refreshes to share 1 exchange, got %d", got)
	}
	if got := store.Token(); got != "fresh-token" {
		t.Fatalf("expected fresh-token after refresh, got %q", got)
	}
}

func TestTokenRefreshRejectsErrorBodyOnHTTP200(t *testing.T) {
	// Zoho's OAuth endpoint reports some failures with HTTP 200 and an error
	// field instead of an error status.
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer tokenSrv.Close()

	store := newTestTokenStore(tokenSrv.URL, "stale-token")

	err := store.Refresh(context.Background())
	var authErr *AuthRefreshError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthRefreshError, got %T: %v", err, err)
	}
	if got := store.Token(); got != "stale-token" {
		t.Fatalf("token must be unchanged after a rejected exchange, got %q", got)
	}
}

func TestTokenRefreshRejectsEmptyAccessToken(t *testing.T) {
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	store := newTestTokenStore(tokenSrv.URL, "stale-token")

	var authErr *AuthRefreshError
	if err := store.Refresh(context.Background()); !errors.As(err, &authErr) {
		t.Fatalf("expected AuthRefreshError, got %v", err)
	}
}
