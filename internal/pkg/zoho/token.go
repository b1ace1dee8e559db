package zoho

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/nocodeinfolab/zoho-payment/internal/pkg/config"
	"github.com/nocodeinfolab/zoho-payment/internal/pkg/logger"
)

// TokenStore holds the process-wide Zoho access token plus the long-lived
// refresh credential used to mint new ones. The token is refreshed lazily on
// the first authorization failure, never on a timer.
type TokenStore struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	RefreshToken string

	HTTPClient *http.Client

	mu          sync.RWMutex
	accessToken string

	refreshGroup singleflight.Group
	log          zerolog.Logger
}

func NewTokenStore(cfg *config.Config) *TokenStore {
	return &TokenStore{
		TokenURL:     cfg.TokenURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RefreshToken: cfg.RefreshToken,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		accessToken: cfg.AccessToken,
		log:         logger.WithComponent("zoho-token"),
	}
}

// Token returns the current access token.
func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Refresh exchanges the refresh credential for a new access token and
// replaces the stored one. Concurrent callers share a single in-flight
// exchange instead of issuing duplicate refreshes.
func (s *TokenStore) Refresh(ctx context.Context) error {
	_, err, _ := s.refreshGroup.Do("refresh", func() (interface{}, error) {
		return nil, s.refresh(ctx)
	})
	return err
}

func (s *TokenStore) refresh(ctx context.Context) error {
	form := url.Values{}
	form.Set("refresh_token", s.RefreshToken)
	form.Set("client_id", s.ClientID)
	form.Set("client_secret", s.ClientSecret)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &AuthRefreshError{Status: resp.StatusCode, Body: string(body)}
	}

	var out tokenResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return err
	}
	// Zoho reports some exchange failures with HTTP 200 and an error field.
	if out.Error != "" || strings.TrimSpace(out.AccessToken) == "" {
		return &AuthRefreshError{Status: resp.StatusCode, Body: string(body)}
	}

	s.mu.Lock()
	s.accessToken = out.AccessToken
	s.mu.Unlock()

	s.log.Info().Msg("access token refreshed")
	return nil
}
