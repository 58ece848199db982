package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"youtube-summarizer/domain/model"
	"youtube-summarizer/domain/repository"
	"youtube-summarizer/infrastructure/logger"
	"youtube-summarizer/infrastructure/utils"
	"youtube-summarizer/server"

	"github.com/pkg/browser"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"
	"golang.org/x/sync/singleflight"
)

// loginTimeout bounds how long the callback listener waits for the user to
// finish the browser flow.
const loginTimeout = 2 * time.Minute

var graphScopes = []string{
	"offline_access",
	"https://graph.microsoft.com/Notes.Create",
	"https://graph.microsoft.com/Notes.ReadWrite",
}

// Config carries the Microsoft identity settings for the auth manager.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	CallbackPort int
}

// Manager owns the token lifecycle: cached token, silent refresh, and the
// interactive authorization-code login with a local callback listener.
type Manager struct {
	oauthConfig  *oauth2.Config
	store        repository.ITokenStore
	callbackPort int
	token        *model.AuthToken
	group        singleflight.Group
	// openBrowser is swappable in tests.
	openBrowser func(url string) error
}

// NewAuthManager creates a token provider persisting through store.
func NewAuthManager(cfg *Config, store repository.ITokenStore) repository.ITokenProvider {
	return &Manager{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       graphScopes,
			Endpoint:     microsoft.AzureADEndpoint("common"),
		},
		store:        store,
		callbackPort: cfg.CallbackPort,
		openBrowser:  browser.OpenURL,
	}
}

// GetAccessToken returns a valid access token, refreshing silently or
// running the interactive login when needed. Concurrent callers share one
// acquisition.
func (m *Manager) GetAccessToken(ctx context.Context) (string, error) {
	v, err, _ := m.group.Do("token", func() (interface{}, error) {
		return m.acquireToken(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (m *Manager) acquireToken(ctx context.Context) (string, error) {
	if m.token == nil {
		stored, err := m.store.Load()
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Could not load token cache")
		}
		m.token = stored
	}

	if m.token.Valid() {
		return m.token.AccessToken, nil
	}

	if m.token.Refreshable() {
		token, err := m.refresh(ctx)
		if err == nil {
			return token.AccessToken, nil
		}
		logger.GetLogger().WithField("error", err).Warn("Silent refresh failed, falling back to interactive login")
	}

	token, err := m.interactiveLogin(ctx)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

// refresh exchanges the stored refresh token for a new token pair.
func (m *Manager) refresh(ctx context.Context) (*model.AuthToken, error) {
	source := m.oauthConfig.TokenSource(ctx, &oauth2.Token{
		RefreshToken: m.token.RefreshToken,
		Expiry:       time.Now().Add(-time.Minute),
	})
	refreshed, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: token refresh: %v", model.ErrAuthenticationFailed, err)
	}
	return m.adopt(refreshed), nil
}

// interactiveLogin binds the local callback listener, opens the Microsoft
// login page, and waits for exactly one redirect or the timeout. The port
// is released on every path.
func (m *Manager) interactiveLogin(ctx context.Context) (*model.AuthToken, error) {
	state, err := randomState()
	if err != nil {
		return nil, fmt.Errorf("%w: generate state: %v", model.ErrAuthenticationFailed, err)
	}

	type callback struct {
		code  string
		state string
		err   string
	}
	callbackCh := make(chan callback, 1)
	router := server.InitiateCallbackRouter(func(code, state, errMsg string) {
		select {
		case callbackCh <- callback{code: code, state: state, err: errMsg}:
		default:
		}
	})

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("localhost:%d", m.callbackPort),
		Handler: router,
	}
	listenErr := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	authURL := m.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Printf("Opening browser for Microsoft login...\nIf it does not open, visit:\n%s\n", authURL)
	if err := m.openBrowser(authURL); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Could not open browser; use the printed URL")
	}

	var cb callback
	select {
	case cb = <-callbackCh:
	case err := <-listenErr:
		return nil, fmt.Errorf("%w: callback listener: %v", model.ErrNetwork, err)
	case <-time.After(loginTimeout):
		return nil, fmt.Errorf("%w: authentication timeout", model.ErrAuthenticationFailed)
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", model.ErrAuthenticationFailed, ctx.Err())
	}

	if cb.err != "" {
		return nil, fmt.Errorf("%w: %s", model.ErrAuthenticationFailed, cb.err)
	}
	if cb.state != state {
		return nil, fmt.Errorf("%w: state mismatch", model.ErrAuthenticationFailed)
	}

	exchanged, err := m.oauthConfig.Exchange(ctx, cb.code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange: %v", model.ErrAuthenticationFailed, err)
	}
	return m.adopt(exchanged), nil
}

// adopt converts, caches, and persists a freshly acquired oauth2 token.
func (m *Manager) adopt(token *oauth2.Token) *model.AuthToken {
	adopted := &model.AuthToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}
	// A refresh response may omit the refresh token; keep the old one.
	if adopted.RefreshToken == "" && m.token != nil {
		adopted.RefreshToken = m.token.RefreshToken
	}
	m.token = adopted
	if err := m.store.Save(adopted); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Could not persist token cache")
	}
	return adopted
}

// AccountName surfaces the signed-in account from the cached access token.
func (m *Manager) AccountName(ctx context.Context) string {
	if m.token == nil {
		stored, err := m.store.Load()
		if err != nil || stored == nil {
			return ""
		}
		m.token = stored
	}
	return utils.TokenAccountName(m.token.AccessToken)
}

// ClearCache deletes persisted token state; the next acquisition starts the
// interactive login from scratch.
func (m *Manager) ClearCache() error {
	m.token = nil
	return m.store.Clear()
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
