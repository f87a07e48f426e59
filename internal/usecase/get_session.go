package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"channel-hub/internal/domain"
)

// SessionResult holds the data returned by GetSession.
type SessionResult struct {
	UserID       string
	Email        string
	SessionID    string
	CreatedAt    time.Time
	BackendToken string
}

// GetSession orchestrates session retrieval with JWT generation for frontend
// consumption (the get-session contract of the credential session provider).
type GetSession struct {
	validator domain.SessionValidator
	cache     domain.SessionCache
	token     domain.TokenIssuer
	logger    *slog.Logger
}

// NewGetSession creates a new GetSession usecase.
func NewGetSession(v domain.SessionValidator, c domain.SessionCache, t domain.TokenIssuer, l *slog.Logger) *GetSession {
	return &GetSession{validator: v, cache: c, token: t, logger: l}
}

// Execute validates the session and generates a backend JWT token.
func (uc *GetSession) Execute(ctx context.Context, cookieValue string) (*SessionResult, error) {
	var identity *domain.Identity
	var createdAt time.Time

	if cached, found := uc.cache.Get(cookieValue); found {
		identity = &domain.Identity{
			UserID:    cached.UserID,
			Email:     cached.Email,
			SessionID: cookieValue,
		}
		createdAt = time.Now().Add(-24 * time.Hour) // Approximate from cache
	} else {
		fullCookie := fmt.Sprintf("%s=%s", sessionCookieName, cookieValue)
		validated, err := uc.validator.ValidateSession(ctx, fullCookie)
		if err != nil {
			return nil, err
		}

		identity = validated
		identity.SessionID = cookieValue
		createdAt = identity.CreatedAt

		uc.cache.Set(cookieValue, domain.CachedSession{
			UserID: identity.UserID,
			Email:  identity.Email,
		})
	}

	backendToken, err := uc.token.IssueBackendToken(identity, cookieValue)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to issue backend token", "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrTokenGeneration, err)
	}

	return &SessionResult{
		UserID:       identity.UserID,
		Email:        identity.Email,
		SessionID:    cookieValue,
		CreatedAt:    createdAt,
		BackendToken: backendToken,
	}, nil
}
