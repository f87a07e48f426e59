package handler

import (
	"context"

	"channel-hub/internal/domain"
)

type fakeExchanger struct {
	authURL string
	pair    *domain.TokenPair
	err     error
	calls   int
}

func (f *fakeExchanger) AuthCodeURL() string {
	return f.authURL
}

func (f *fakeExchanger) Exchange(ctx context.Context, code string) (*domain.TokenPair, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.pair, nil
}

type fakeValidator struct {
	identity *domain.Identity
	err      error
}

func (f *fakeValidator) ValidateSession(ctx context.Context, cookie string) (*domain.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	ident := *f.identity
	return &ident, nil
}

type fakeCache struct {
	sessions map[string]domain.CachedSession
}

func newFakeCache() *fakeCache {
	return &fakeCache{sessions: make(map[string]domain.CachedSession)}
}

func (f *fakeCache) Get(key string) (*domain.CachedSession, bool) {
	s, ok := f.sessions[key]
	if !ok {
		return nil, false
	}
	return &s, true
}

func (f *fakeCache) Set(key string, session domain.CachedSession) {
	f.sessions[key] = session
}

type fakeFetcher struct {
	channel *domain.ChannelSummary
	err     error
}

func (f *fakeFetcher) FetchOwnChannel(ctx context.Context, accessToken string) (*domain.ChannelSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.channel, nil
}

type fakeIssuer struct {
	token string
	err   error
}

func (f *fakeIssuer) IssueBackendToken(identity *domain.Identity, sessionID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}
