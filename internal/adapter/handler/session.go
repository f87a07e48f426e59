package handler

import (
	"net/http"
	"time"

	"channel-hub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie the identity provider issues on signin.
const SessionCookieName = "ory_kratos_session"

// backendTokenHeader carries the signed JWT for downstream API calls.
const backendTokenHeader = "X-Hub-Backend-Token"

// SessionHandler handles /api/session for frontend JSON responses
// (the get-session contract).
type SessionHandler struct {
	uc *usecase.GetSession
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(uc *usecase.GetSession) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// sessionUser is the user object in the response.
type sessionUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// sessionInfo is the session object in the response.
type sessionInfo struct {
	ID     string `json:"id"`
	Active bool   `json:"active"`
}

// sessionResponse is the JSON response structure.
type sessionResponse struct {
	OK      bool        `json:"ok"`
	User    sessionUser `json:"user"`
	Session sessionInfo `json:"session"`
}

// Handle processes /api/session and returns the session user as JSON.
func (h *SessionHandler) Handle(c echo.Context) error {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "session cookie not found")
	}

	result, err := h.uc.Execute(c.Request().Context(), cookie.Value)
	if err != nil {
		return mapDomainError(err)
	}

	c.Response().Header().Set(backendTokenHeader, result.BackendToken)

	return c.JSON(http.StatusOK, sessionResponse{
		OK: true,
		User: sessionUser{
			ID:        result.UserID,
			Email:     result.Email,
			CreatedAt: result.CreatedAt,
		},
		Session: sessionInfo{
			ID:     result.SessionID,
			Active: true,
		},
	})
}
