package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"channel-hub/internal/domain"
	"channel-hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOAuthHandler(exchanger *fakeExchanger) *OAuthHandler {
	uc := usecase.NewExchangeCode(exchanger, slog.Default())
	return NewOAuthHandler(uc, "https://app.example.com")
}

func doOAuthRequest(t *testing.T, h *OAuthHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Handle(c))
	return rec
}

func TestOAuthHandler_Handle_NoCode(t *testing.T) {
	exchanger := &fakeExchanger{
		authURL: "https://accounts.google.com/o/oauth2/v2/auth?client_id=x&access_type=offline",
	}
	h := newOAuthHandler(exchanger)

	rec := doOAuthRequest(t, h, "/api/youtube/auth")

	assert.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get("Location")
	assert.Contains(t, location, "accounts.google.com/o/oauth2/v2/auth")
	assert.Contains(t, location, "access_type=offline")
	assert.Equal(t, 0, exchanger.calls, "no exchange without a code")
}

func TestOAuthHandler_Handle_CallbackSuccess(t *testing.T) {
	exchanger := &fakeExchanger{pair: &domain.TokenPair{AccessToken: "T1", RefreshToken: "R1"}}
	h := newOAuthHandler(exchanger)

	rec := doOAuthRequest(t, h, "/api/youtube/auth?code=abc123")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t,
		"https://app.example.com/connect?youtube_token=T1&refresh_token=R1",
		rec.Header().Get("Location"))
	assert.Equal(t, 1, exchanger.calls)
}

func TestOAuthHandler_Handle_CallbackEmptyRefreshToken(t *testing.T) {
	exchanger := &fakeExchanger{pair: &domain.TokenPair{AccessToken: "T1"}}
	h := newOAuthHandler(exchanger)

	rec := doOAuthRequest(t, h, "/api/youtube/auth?code=abc123")

	// refresh_token stays present even when empty.
	assert.Equal(t,
		"https://app.example.com/connect?youtube_token=T1&refresh_token=",
		rec.Header().Get("Location"))
}

func TestOAuthHandler_Handle_ExchangeRejected(t *testing.T) {
	exchanger := &fakeExchanger{err: fmt.Errorf("%w: invalid_grant", domain.ErrTokenExchange)}
	h := newOAuthHandler(exchanger)

	rec := doOAuthRequest(t, h, "/api/youtube/auth?code=used-code")

	assert.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get("Location")
	assert.Equal(t, "https://app.example.com/connect?error=token_failed", location)
	assert.NotContains(t, location, "youtube_token", "no token material on failure")
}

func TestOAuthHandler_Handle_UnexpectedFailure(t *testing.T) {
	exchanger := &fakeExchanger{err: domain.ErrProviderUnavailable}
	h := newOAuthHandler(exchanger)

	rec := doOAuthRequest(t, h, "/api/youtube/auth?code=abc123")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://app.example.com/connect?error=auth_failed", rec.Header().Get("Location"))
}
