package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nocodeinfolab/zoho-payment/internal/pkg/config"
	"github.com/nocodeinfolab/zoho-payment/internal/pkg/logger"
)

// Zoho error code returned when the access token is invalid or expired.
const codeInvalidToken = 57

// Client issues authenticated calls against the Zoho Books API for a single
// organization. A call rejected for an invalid token triggers one refresh and
// one retry of the identical request; a second rejection is surfaced.
type Client struct {
	BaseURL        string
	OrganizationID string
	Tokens         *TokenStore
	HTTPClient     *http.Client

	log zerolog.Logger
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL:        strings.TrimRight(cfg.APIBaseURL, "/"),
		OrganizationID: cfg.OrganizationID,
		Tokens:         NewTokenStore(cfg),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: logger.WithComponent("zoho"),
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return err
	}
	q := u.Query()
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set("organization_id", c.OrganizationID)
	u.RawQuery = q.Encode()

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	for attempt := 0; ; attempt++ {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Zoho-oauthtoken "+c.Tokens.Token())
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return err
		}
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if out == nil {
				return nil
			}
			return json.Unmarshal(respBody, out)
		}

		if attempt == 0 && isInvalidToken(resp.StatusCode, respBody) {
			c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("access token rejected, refreshing")
			if err := c.Tokens.Refresh(ctx); err != nil {
				return err
			}
			continue
		}

		return &APIRequestError{Method: method, URL: u.String(), Status: resp.StatusCode, Body: string(respBody)}
	}
}

func isInvalidToken(status int, body []byte) bool {
	if status == http.StatusUnauthorized {
		return true
	}
	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return false
	}
	return env.Code == codeInvalidToken
}
