package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuthLoginURL_CarriesIssuedState(t *testing.T) {
	svc := NewOAuthService(nil)

	loginURL, err := svc.GetLoginURL("google")
	require.NoError(t, err)

	parsed, err := url.Parse(loginURL)
	require.NoError(t, err)
	assert.NotEmpty(t, parsed.Query().Get("state"))
}

func TestOAuthLoginURL_UnsupportedProvider(t *testing.T) {
	svc := NewOAuthService(nil)

	_, err := svc.GetLoginURL("github")
	assert.Error(t, err)
}

func TestOAuthCallback_RejectsUnknownState(t *testing.T) {
	svc := NewOAuthService(nil)

	_, err := svc.HandleCallback(context.Background(), "google", "never-issued", "some-code")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state")
}
