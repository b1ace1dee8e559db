package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("ZOHO_REFRESH_TOKEN", "refresh-token")
	t.Setenv("ZOHO_CLIENT_ID", "client-id")
	t.Setenv("ZOHO_CLIENT_SECRET", "client-secret")
	t.Setenv("ZOHO_ORGANIZATION_ID", "ORG123")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Empty(t, cfg.AccessToken, "initial access token is optional")
	assert.Equal(t, "https://www.zohoapis.com/books/v3", cfg.APIBaseURL)
	assert.Equal(t, "https://accounts.zoho.com/oauth/v2/token", cfg.TokenURL)
	assert.Equal(t, "3000", cfg.Port)
}

func TestFromEnvMissingCredentials(t *testing.T) {
	t.Setenv("ZOHO_REFRESH_TOKEN", "")
	t.Setenv("ZOHO_CLIENT_ID", "client-id")
	t.Setenv("ZOHO_CLIENT_SECRET", "client-secret")
	t.Setenv("ZOHO_ORGANIZATION_ID", "ORG123")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RefreshToken")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		RefreshToken:   "refresh-token",
		ClientID:       "client-id",
		ClientSecret:   "client-secret",
		OrganizationID: "ORG123",
		APIBaseURL:     "https://www.zohoapis.com/books/v3",
		TokenURL:       "https://accounts.zoho.com/oauth/v2/token",
		Port:           "3000",
	}
	assert.NoError(t, cfg.Validate())

	cfg.OrganizationID = ""
	assert.Error(t, cfg.Validate())
}
