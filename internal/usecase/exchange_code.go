package usecase

import (
	"context"
	"log/slog"

	"channel-hub/internal/domain"
)

// ExchangeCode drives the callback phase of the OAuth flow: one authorization
// code in, one token pair out. The code is consumed whether or not the
// exchange succeeds; callers must not retry with the same code.
type ExchangeCode struct {
	exchanger domain.CodeExchanger
	logger    *slog.Logger
}

// NewExchangeCode creates a new ExchangeCode usecase.
func NewExchangeCode(e domain.CodeExchanger, l *slog.Logger) *ExchangeCode {
	return &ExchangeCode{exchanger: e, logger: l}
}

// AuthorizationURL returns the provider authorization URL for the
// request phase. Its redirect_uri is the same value Execute later sends
// to the token endpoint.
func (uc *ExchangeCode) AuthorizationURL() string {
	return uc.exchanger.AuthCodeURL()
}

// Execute exchanges the authorization code for a token pair.
func (uc *ExchangeCode) Execute(ctx context.Context, code string) (*domain.TokenPair, error) {
	pair, err := uc.exchanger.Exchange(ctx, code)
	if err != nil {
		uc.logger.ErrorContext(ctx, "token exchange failed", "error", err)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "token exchange completed",
		"refresh_token_issued", pair.RefreshToken != "")
	return pair, nil
}
