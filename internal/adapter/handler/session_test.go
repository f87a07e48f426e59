package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"channel-hub/internal/domain"
	"channel-hub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionHandler(validator *fakeValidator, issuer *fakeIssuer) *SessionHandler {
	uc := usecase.NewGetSession(validator, newFakeCache(), issuer, slog.Default())
	return NewSessionHandler(uc)
}

func TestSessionHandler_Handle_Success(t *testing.T) {
	createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	validator := &fakeValidator{identity: &domain.Identity{
		UserID:    "user-1",
		Email:     "u@example.com",
		CreatedAt: createdAt,
	}}
	h := newSessionHandler(validator, &fakeIssuer{token: "jwt-abc"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "session-cookie"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Handle(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jwt-abc", rec.Header().Get("X-Hub-Backend-Token"))

	var body struct {
		OK   bool `json:"ok"`
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Session struct {
			ID     string `json:"id"`
			Active bool   `json:"active"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "user-1", body.User.ID)
	assert.Equal(t, "u@example.com", body.User.Email)
	assert.Equal(t, "session-cookie", body.Session.ID)
	assert.True(t, body.Session.Active)
}

func TestSessionHandler_Handle_NoCookie(t *testing.T) {
	h := newSessionHandler(&fakeValidator{}, &fakeIssuer{token: "unused"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Handle(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestSessionHandler_Handle_InvalidSession(t *testing.T) {
	validator := &fakeValidator{err: domain.ErrSessionNotFound}
	h := newSessionHandler(validator, &fakeIssuer{token: "unused"})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bad-cookie"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Handle(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
