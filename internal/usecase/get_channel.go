package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"channel-hub/internal/domain"
)

// GetChannel looks up the caller's channel. The session is an explicit
// dependency: the handler extracts the cookie, this usecase validates it
// through the injected validator, so tests can supply fakes without any
// ambient environment.
type GetChannel struct {
	validator domain.SessionValidator
	cache     domain.SessionCache
	fetcher   domain.ChannelFetcher
	logger    *slog.Logger
}

// NewGetChannel creates a new GetChannel usecase.
func NewGetChannel(v domain.SessionValidator, c domain.SessionCache, f domain.ChannelFetcher, l *slog.Logger) *GetChannel {
	return &GetChannel{validator: v, cache: c, fetcher: f, logger: l}
}

// Execute validates the session, then fetches the channel bound to the
// access token. The summary is recomputed on every call; nothing is cached
// or merged with a prior value.
func (uc *GetChannel) Execute(ctx context.Context, cookieValue, accessToken string) (*domain.ChannelSummary, error) {
	if _, found := uc.cache.Get(cookieValue); !found {
		fullCookie := fmt.Sprintf("%s=%s", sessionCookieName, cookieValue)
		identity, err := uc.validator.ValidateSession(ctx, fullCookie)
		if err != nil {
			return nil, err
		}
		uc.cache.Set(cookieValue, domain.CachedSession{
			UserID: identity.UserID,
			Email:  identity.Email,
		})
	}

	if accessToken == "" {
		return nil, domain.ErrTokenRequired
	}

	channel, err := uc.fetcher.FetchOwnChannel(ctx, accessToken)
	if err != nil {
		uc.logger.ErrorContext(ctx, "channel lookup failed", "error", err)
		return nil, err
	}

	return channel, nil
}
