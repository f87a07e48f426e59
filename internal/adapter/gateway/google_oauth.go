package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"channel-hub/internal/domain"
)

// Default Google OAuth 2.0 endpoints. Overridable for tests.
const (
	GoogleAuthURL  = "https://accounts.google.com/o/oauth2/v2/auth"
	GoogleTokenURL = "https://oauth2.googleapis.com/token"
)

// youtubeScopes is the fixed read/write scope pair requested during
// authorization. Both phases of the flow use the same value.
const youtubeScopes = "https://www.googleapis.com/auth/youtube.readonly https://www.googleapis.com/auth/youtube"

// OAuthConfig holds Google OAuth client configuration.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	// RedirectURI must exactly match the value registered with Google.
	// The same string is sent in the authorization request and the
	// code exchange; a mismatch fails the exchange.
	RedirectURI string
	AuthURL     string // defaults to GoogleAuthURL
	TokenURL    string // defaults to GoogleTokenURL
	Timeout     time.Duration
}

// GoogleOAuth implements domain.CodeExchanger against Google's OAuth 2.0
// endpoints.
type GoogleOAuth struct {
	cfg        OAuthConfig
	httpClient *http.Client
}

// NewGoogleOAuth creates a new Google OAuth gateway.
func NewGoogleOAuth(cfg OAuthConfig) *GoogleOAuth {
	if cfg.AuthURL == "" {
		cfg.AuthURL = GoogleAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = GoogleTokenURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &GoogleOAuth{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// AuthCodeURL builds the authorization request URL. access_type=offline plus
// prompt=consent forces Google to re-issue a refresh token on every consent.
func (g *GoogleOAuth) AuthCodeURL() string {
	params := url.Values{}
	params.Set("client_id", g.cfg.ClientID)
	params.Set("redirect_uri", g.cfg.RedirectURI)
	params.Set("response_type", "code")
	params.Set("scope", youtubeScopes)
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")

	return g.cfg.AuthURL + "?" + params.Encode()
}

// tokenResponse is the decoded token endpoint response.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	Scope        string `json:"scope"`
}

// Exchange trades an authorization code for a token pair. The code is sent
// exactly once: Google invalidates it on first use, so no retry is attempted
// on any failure.
func (g *GoogleOAuth) Exchange(ctx context.Context, code string) (*domain.TokenPair, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", g.cfg.ClientID)
	form.Set("client_secret", g.cfg.ClientSecret)
	form.Set("redirect_uri", g.cfg.RedirectURI)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: token endpoint returned status %d: %s",
			domain.ErrTokenExchange, resp.StatusCode, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("%w: decoding token response: %w", domain.ErrMalformedResponse, err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: token response missing access_token", domain.ErrMalformedResponse)
	}

	return &domain.TokenPair{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}
