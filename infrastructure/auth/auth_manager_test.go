package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"youtube-summarizer/domain/model"
	"youtube-summarizer/infrastructure/persistence"
)

const testCallbackPort = 38765

func newTestManager(t *testing.T, tokenEndpoint string) *Manager {
	t.Helper()
	store := persistence.NewTokenFileStore(filepath.Join(t.TempDir(), "token_cache.json"))
	m := NewAuthManager(&Config{
		ClientID:     "client-1",
		ClientSecret: "secret",
		RedirectURI:  fmt.Sprintf("http://localhost:%d/callback", testCallbackPort),
		CallbackPort: testCallbackPort,
	}, store).(*Manager)
	if tokenEndpoint != "" {
		m.oauthConfig.Endpoint = oauth2.Endpoint{
			AuthURL:  tokenEndpoint + "/authorize",
			TokenURL: tokenEndpoint + "/token",
		}
	}
	return m
}

// fakeTokenEndpoint answers every token request with a fixed grant.
func fakeTokenEndpoint(t *testing.T, refreshToken string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/token", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"fresh-access","token_type":"Bearer","expires_in":3600,"refresh_token":%q}`, refreshToken)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGetAccessToken_CachedToken(t *testing.T) {
	m := newTestManager(t, "")
	require.NoError(t, m.store.Save(&model.AuthToken{
		AccessToken: "cached-access",
		Expiry:      time.Now().Add(time.Hour),
	}))

	token, err := m.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached-access", token)
}

func TestGetAccessToken_SilentRefresh(t *testing.T) {
	endpoint := fakeTokenEndpoint(t, "")
	m := newTestManager(t, endpoint.URL)
	require.NoError(t, m.store.Save(&model.AuthToken{
		AccessToken:  "stale-access",
		RefreshToken: "old-refresh",
		Expiry:       time.Now().Add(-time.Hour),
	}))

	token, err := m.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fresh-access", token)

	// refresh response omitted the refresh token, the old one is kept
	persisted, err := m.store.Load()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "old-refresh", persisted.RefreshToken)
}

func TestGetAccessToken_InteractiveLogin(t *testing.T) {
	endpoint := fakeTokenEndpoint(t, "new-refresh")
	m := newTestManager(t, endpoint.URL)

	// stand in for the user: follow the login URL by hitting the local
	// callback listener with the expected state
	m.openBrowser = func(authURL string) error {
		parsed, err := url.Parse(authURL)
		if err != nil {
			return err
		}
		state := parsed.Query().Get("state")
		go func() {
			callbackURL := fmt.Sprintf("http://localhost:%d/callback?code=auth-code&state=%s", testCallbackPort, url.QueryEscape(state))
			for i := 0; i < 50; i++ {
				resp, err := http.Get(callbackURL)
				if err == nil {
					resp.Body.Close()
					return
				}
				time.Sleep(20 * time.Millisecond)
			}
		}()
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	token, err := m.GetAccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh-access", token)

	persisted, err := m.store.Load()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "new-refresh", persisted.RefreshToken)
}

func TestGetAccessToken_LoginCancelled(t *testing.T) {
	m := newTestManager(t, "")
	m.openBrowser = func(string) error { return nil }

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	_, err := m.GetAccessToken(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrAuthenticationFailed), "got %v", err)
}

func TestAccountName(t *testing.T) {
	m := newTestManager(t, "")
	assert.Empty(t, m.AccountName(context.Background()))
}

func TestClearCache(t *testing.T) {
	m := newTestManager(t, "")
	require.NoError(t, m.store.Save(&model.AuthToken{AccessToken: "a", Expiry: time.Now().Add(time.Hour)}))

	require.NoError(t, m.ClearCache())

	stored, err := m.store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored)
}
