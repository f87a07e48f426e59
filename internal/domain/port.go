package domain

import "context"

// SessionValidator validates a session cookie against the identity provider.
type SessionValidator interface {
	ValidateSession(ctx context.Context, cookie string) (*Identity, error)
}

// SessionCache provides read/write access to cached session data.
type SessionCache interface {
	Get(sessionID string) (*CachedSession, bool)
	Set(sessionID string, session CachedSession)
}

// TokenIssuer generates signed backend JWT tokens.
type TokenIssuer interface {
	IssueBackendToken(identity *Identity, sessionID string) (string, error)
}

// CodeExchanger builds the provider authorization URL and exchanges an
// authorization code for a token pair. Exchange must call the token
// endpoint at most once per code: authorization codes are single-use.
type CodeExchanger interface {
	AuthCodeURL() string
	Exchange(ctx context.Context, code string) (*TokenPair, error)
}

// ChannelFetcher retrieves the channel owned by the bearer of the access token.
type ChannelFetcher interface {
	FetchOwnChannel(ctx context.Context, accessToken string) (*ChannelSummary, error)
}

// TokenStore is a durable key-value store for OAuth tokens. It stands in for
// the browser's localStorage: values survive reloads and are never expired
// or rotated by this system.
type TokenStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}
