package domain

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrAuthFailed      = errors.New("authentication failed")
	ErrSessionInactive = errors.New("session is not active")
	ErrMissingIdentity = errors.New("missing identity in session")
)

// OAuth and channel lookup errors.
var (
	ErrTokenRequired     = errors.New("access token required")
	ErrTokenExchange     = errors.New("token exchange failed")
	ErrChannelNotFound   = errors.New("no channel found")
	ErrMalformedResponse = errors.New("malformed provider response")
)

// Token errors.
var (
	ErrTokenGeneration = errors.New("token generation failed")
)

// External service errors.
var (
	ErrProviderUnavailable = errors.New("upstream provider unavailable")
	ErrKratosUnavailable   = errors.New("identity provider unavailable")
)

// Connect flow errors.
var (
	ErrAlreadyConnected = errors.New("channel already connected")
	ErrNoMethodSelected = errors.New("no connection method selected")
)

// UpstreamError carries a non-2xx status and body from the video platform API
// so the handler layer can pass both through to the caller.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}
