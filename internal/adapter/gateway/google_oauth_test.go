package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"channel-hub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOAuth(tokenURL string) *GoogleOAuth {
	return NewGoogleOAuth(OAuthConfig{
		ClientID:     "client-id-123",
		ClientSecret: "client-secret-456",
		RedirectURI:  "https://app.example.com/api/youtube/auth",
		TokenURL:     tokenURL,
	})
}

func TestGoogleOAuth_AuthCodeURL(t *testing.T) {
	g := newTestOAuth("")

	authURL := g.AuthCodeURL()

	parsed, err := url.Parse(authURL)
	require.NoError(t, err)

	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "/o/oauth2/v2/auth", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "client-id-123", q.Get("client_id"))
	assert.Equal(t, "https://app.example.com/api/youtube/auth", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Contains(t, q.Get("scope"), "youtube.readonly")
	assert.Contains(t, q.Get("scope"), "https://www.googleapis.com/auth/youtube")
}

func TestGoogleOAuth_Exchange_Success(t *testing.T) {
	var calls int
	var receivedForm url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		receivedForm = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"T1","refresh_token":"R1","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	g := newTestOAuth(server.URL)
	pair, err := g.Exchange(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "T1", pair.AccessToken)
	assert.Equal(t, "R1", pair.RefreshToken)
	assert.Equal(t, 1, calls, "token endpoint must be called exactly once")

	assert.Equal(t, "abc123", receivedForm.Get("code"))
	assert.Equal(t, "client-id-123", receivedForm.Get("client_id"))
	assert.Equal(t, "client-secret-456", receivedForm.Get("client_secret"))
	assert.Equal(t, "authorization_code", receivedForm.Get("grant_type"))
}

func TestGoogleOAuth_Exchange_RedirectURIMatchesAuthPhase(t *testing.T) {
	var exchanged string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		exchanged = r.PostForm.Get("redirect_uri")
		w.Write([]byte(`{"access_token":"T1"}`))
	}))
	defer server.Close()

	g := newTestOAuth(server.URL)

	authPhase, err := url.Parse(g.AuthCodeURL())
	require.NoError(t, err)

	_, err = g.Exchange(context.Background(), "abc123")
	require.NoError(t, err)

	// Both phases must send the byte-identical redirect URI.
	assert.Equal(t, authPhase.Query().Get("redirect_uri"), exchanged)
}

func TestGoogleOAuth_Exchange_ProviderRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	g := newTestOAuth(server.URL)
	pair, err := g.Exchange(context.Background(), "used-code")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domain.ErrTokenExchange))
	assert.Contains(t, err.Error(), "invalid_grant")
}

func TestGoogleOAuth_Exchange_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not-json`))
	}))
	defer server.Close()

	g := newTestOAuth(server.URL)
	pair, err := g.Exchange(context.Background(), "abc123")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
}

func TestGoogleOAuth_Exchange_MissingAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token_type":"Bearer"}`))
	}))
	defer server.Close()

	g := newTestOAuth(server.URL)
	pair, err := g.Exchange(context.Background(), "abc123")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
}

func TestGoogleOAuth_Exchange_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Connection refused

	g := newTestOAuth(server.URL)
	pair, err := g.Exchange(context.Background(), "abc123")

	assert.Nil(t, pair)
	assert.True(t, errors.Is(err, domain.ErrProviderUnavailable))
}

func TestGoogleOAuth_Exchange_EmptyRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Repeat consents may omit the refresh token entirely.
		w.Write([]byte(`{"access_token":"T2"}`))
	}))
	defer server.Close()

	g := newTestOAuth(server.URL)
	pair, err := g.Exchange(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, "T2", pair.AccessToken)
	assert.Empty(t, pair.RefreshToken)
}
