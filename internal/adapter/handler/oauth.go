package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"channel-hub/internal/domain"
	"channel-hub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OAuthHandler handles /api/youtube/auth: one endpoint, two modes keyed by
// the presence of the code query parameter.
type OAuthHandler struct {
	uc         *usecase.ExchangeCode
	connectURL string
}

// NewOAuthHandler creates a new OAuth handler. baseURL is the externally
// visible base URL the connect page lives under.
func NewOAuthHandler(uc *usecase.ExchangeCode, baseURL string) *OAuthHandler {
	return &OAuthHandler{
		uc:         uc,
		connectURL: baseURL + "/connect",
	}
}

// Handle redirects to the provider authorization URL when no code is
// present, and exchanges the code for tokens on callback. All failures
// degrade to a redirect carrying a coarse error tag; the code is never
// retried.
func (h *OAuthHandler) Handle(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return c.Redirect(http.StatusFound, h.uc.AuthorizationURL())
	}

	ctx := c.Request().Context()

	pair, err := h.uc.Execute(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExchange) {
			return c.Redirect(http.StatusFound, h.connectURL+"?error=token_failed")
		}
		slog.ErrorContext(ctx, "authorization callback failed", "error", err)
		return c.Redirect(http.StatusFound, h.connectURL+"?error=auth_failed")
	}

	// refresh_token may be empty on repeat consents; the parameter is
	// still present so the connect page persists both entries.
	redirect := h.connectURL +
		"?youtube_token=" + url.QueryEscape(pair.AccessToken) +
		"&refresh_token=" + url.QueryEscape(pair.RefreshToken)

	return c.Redirect(http.StatusFound, redirect)
}
