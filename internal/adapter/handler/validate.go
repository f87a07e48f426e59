package handler

import (
	"net/http"

	"channel-hub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ValidateHandler handles /api/session/validate for nginx auth_request style
// gating of the dashboard shell.
type ValidateHandler struct {
	uc *usecase.ValidateSession
}

// NewValidateHandler creates a new validate handler.
func NewValidateHandler(uc *usecase.ValidateSession) *ValidateHandler {
	return &ValidateHandler{uc: uc}
}

// Handle processes the validate endpoint.
func (h *ValidateHandler) Handle(c echo.Context) error {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "session cookie not found")
	}

	identity, err := h.uc.Execute(c.Request().Context(), cookie.Value)
	if err != nil {
		return mapDomainError(err)
	}

	c.Response().Header().Set("X-Hub-User-Id", identity.UserID)
	c.Response().Header().Set("X-Hub-User-Email", identity.Email)
	return c.NoContent(http.StatusOK)
}
