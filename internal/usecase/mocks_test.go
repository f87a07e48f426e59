package usecase

import (
	"context"

	"channel-hub/internal/domain"
)

type mockValidator struct {
	identity   *domain.Identity
	err        error
	calls      int
	lastCookie string
}

func (m *mockValidator) ValidateSession(ctx context.Context, cookie string) (*domain.Identity, error) {
	m.calls++
	m.lastCookie = cookie
	if m.err != nil {
		return nil, m.err
	}
	// Return a copy so callers mutating the identity don't affect the mock.
	ident := *m.identity
	return &ident, nil
}

type mockCache struct {
	sessions map[string]domain.CachedSession
	sets     int
}

func newMockCache() *mockCache {
	return &mockCache{sessions: make(map[string]domain.CachedSession)}
}

func (m *mockCache) Get(key string) (*domain.CachedSession, bool) {
	s, ok := m.sessions[key]
	if !ok {
		return nil, false
	}
	return &s, true
}

func (m *mockCache) Set(key string, session domain.CachedSession) {
	m.sets++
	m.sessions[key] = session
}

type mockExchanger struct {
	authURL string
	pair    *domain.TokenPair
	err     error
	calls   int
	lastCode string
}

func (m *mockExchanger) AuthCodeURL() string {
	return m.authURL
}

func (m *mockExchanger) Exchange(ctx context.Context, code string) (*domain.TokenPair, error) {
	m.calls++
	m.lastCode = code
	if m.err != nil {
		return nil, m.err
	}
	return m.pair, nil
}

type mockFetcher struct {
	channel   *domain.ChannelSummary
	err       error
	calls     int
	lastToken string
}

func (m *mockFetcher) FetchOwnChannel(ctx context.Context, accessToken string) (*domain.ChannelSummary, error) {
	m.calls++
	m.lastToken = accessToken
	if m.err != nil {
		return nil, m.err
	}
	return m.channel, nil
}

type mockIssuer struct {
	token string
	err   error
}

func (m *mockIssuer) IssueBackendToken(identity *domain.Identity, sessionID string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.token, nil
}
