// Package flow implements the connect-page state machine that binds a
// user to their channel: method selection, the OAuth round-trip, token
// persistence and the channel lookup that completes the connection.
package flow

import (
	"context"
	"net/url"

	"channel-hub/internal/domain"
)

// State is the connection state of the connect flow.
type State int

const (
	StateUnconnected State = iota
	StateMethodSelected
	StateAuthenticating
	StateTokenReceived
	StateChannelLoading
	StateConnected
	StateFailed
	// StateUnlocked is the decorative terminal state of the Channel-ID
	// method. It is presentation-only: no tokens, no channel binding.
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateUnconnected:
		return "unconnected"
	case StateMethodSelected:
		return "method_selected"
	case StateAuthenticating:
		return "authenticating"
	case StateTokenReceived:
		return "token_received"
	case StateChannelLoading:
		return "channel_loading"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	case StateUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// Method is the user-selected connection method.
type Method int

const (
	MethodNone Method = iota
	// MethodGoogle performs the real OAuth round-trip.
	MethodGoogle
	// MethodChannelID is the non-functional placeholder variant: it never
	// performs network I/O and never reaches StateConnected.
	MethodChannelID
)

// Fixed storage keys for the persisted tokens. Not namespaced per user;
// entries never expire and nothing consumes the refresh token yet.
const (
	AccessTokenKey  = "youtube_access_token"
	RefreshTokenKey = "youtube_refresh_token"
)

// Query parameters the OAuth callback redirect carries back to the connect page.
const (
	QueryToken        = "youtube_token"
	QueryRefreshToken = "refresh_token"
	QueryError        = "error"
)

// AuthPath is the navigation target that starts the OAuth round-trip.
const AuthPath = "/api/youtube/auth"

// Controller drives the connection state machine. It mirrors the single-tab
// browser model: one event at a time, so it is not safe for concurrent use.
type Controller struct {
	store  domain.TokenStore
	lookup domain.ChannelFetcher

	state   State
	method  Method
	channel *domain.ChannelSummary
	failure error
}

// NewController creates a controller in StateUnconnected.
func NewController(store domain.TokenStore, lookup domain.ChannelFetcher) *Controller {
	return &Controller{store: store, lookup: lookup}
}

// State returns the current connection state.
func (c *Controller) State() State { return c.state }

// Channel returns the bound channel summary, or nil before StateConnected.
func (c *Controller) Channel() *domain.ChannelSummary { return c.channel }

// Err returns the failure reason when the state is StateFailed.
func (c *Controller) Err() error { return c.failure }

// Resume replays persisted or URL-carried state on page mount. A token in
// the query wins and is persisted; otherwise a previously stored token
// re-triggers the channel lookup without a new OAuth round-trip. With
// neither, the flow stays unconnected.
func (c *Controller) Resume(ctx context.Context, query url.Values) error {
	if c.state == StateConnected {
		return nil
	}

	if token := query.Get(QueryToken); token != "" {
		c.store.Set(AccessTokenKey, token)
		if refresh := query.Get(QueryRefreshToken); refresh != "" {
			c.store.Set(RefreshTokenKey, refresh)
		}
		c.state = StateTokenReceived
		return c.loadChannel(ctx, token)
	}

	if stored, found := c.store.Get(AccessTokenKey); found && stored != "" {
		c.state = StateTokenReceived
		return c.loadChannel(ctx, stored)
	}

	c.state = StateUnconnected
	return nil
}

// SelectMethod records the user's method choice.
func (c *Controller) SelectMethod(m Method) error {
	if c.state == StateConnected {
		return domain.ErrAlreadyConnected
	}

	c.method = m
	c.state = StateMethodSelected
	return nil
}

// Connect acts on the selected method. For MethodGoogle it returns the
// navigation target that starts the OAuth round-trip; the browser leaves the
// page and state resumes via Resume after the callback redirect. For
// MethodChannelID it runs the decorative unlock path and stops there.
func (c *Controller) Connect(ctx context.Context) (redirect string, err error) {
	if c.state == StateConnected {
		return "", domain.ErrAlreadyConnected
	}
	if c.method == MethodNone {
		return "", domain.ErrNoMethodSelected
	}

	c.state = StateAuthenticating

	if c.method == MethodChannelID {
		c.state = StateUnlocked
		return "", nil
	}

	return AuthPath, nil
}

// loadChannel completes the connection. On failure the persisted tokens are
// left in place so the next Resume retries silently.
func (c *Controller) loadChannel(ctx context.Context, accessToken string) error {
	c.state = StateChannelLoading

	channel, err := c.lookup.FetchOwnChannel(ctx, accessToken)
	if err != nil {
		c.state = StateFailed
		c.failure = err
		return err
	}

	c.state = StateConnected
	c.channel = channel
	c.failure = nil
	return nil
}
