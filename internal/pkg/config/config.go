package config

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nocodeinfolab/zoho-payment/internal/pkg/env"
)

const (
	defaultAPIBaseURL = "https://www.zohoapis.com/books/v3"
	defaultTokenURL   = "https://accounts.zoho.com/oauth/v2/token"
	defaultPort       = "3000"
)

// Config carries everything needed to talk to Zoho Books for one organization.
type Config struct {
	// AccessToken is an optional seed token; it is refreshed lazily the first
	// time Zoho rejects it, never on a timer.
	AccessToken    string
	RefreshToken   string `validate:"required"`
	ClientID       string `validate:"required"`
	ClientSecret   string `validate:"required"`
	OrganizationID string `validate:"required"`
	APIBaseURL     string `validate:"required,url"`
	TokenURL       string `validate:"required,url"`
	Port           string `validate:"required"`
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		AccessToken:    strings.TrimSpace(env.GetEnv("ZOHO_ACCESS_TOKEN", "")),
		RefreshToken:   strings.TrimSpace(env.GetEnv("ZOHO_REFRESH_TOKEN", "")),
		ClientID:       strings.TrimSpace(env.GetEnv("ZOHO_CLIENT_ID", "")),
		ClientSecret:   strings.TrimSpace(env.GetEnv("ZOHO_CLIENT_SECRET", "")),
		OrganizationID: strings.TrimSpace(env.GetEnv("ZOHO_ORGANIZATION_ID", "")),
		APIBaseURL:     strings.TrimRight(env.GetEnv("ZOHO_API_BASE_URL", defaultAPIBaseURL), "/"),
		TokenURL:       strings.TrimSpace(env.GetEnv("ZOHO_TOKEN_URL", defaultTokenURL)),
		Port:           env.GetEnv("APP_PORT", defaultPort),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	v := validator.New()

	return v.Struct(c)
}
