package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"channel-hub/internal/domain"
)

// YouTubeAPIURL is the default base URL of the YouTube Data API v3.
const YouTubeAPIURL = "https://www.googleapis.com/youtube/v3"

// YouTubeGateway implements domain.ChannelFetcher against the YouTube Data API.
type YouTubeGateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewYouTubeGateway creates a new YouTube gateway. baseURL defaults to the
// public API when empty.
func NewYouTubeGateway(baseURL string, timeout time.Duration) *YouTubeGateway {
	if baseURL == "" {
		baseURL = YouTubeAPIURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &YouTubeGateway{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// channelListResponse is the decoded channels.list response. The shape is
// declared explicitly so a provider response that drifts from it fails with
// a typed decoding error instead of a nil dereference downstream.
type channelListResponse struct {
	Items []channelResource `json:"items"`
}

type channelResource struct {
	ID      string `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		CustomURL   string `json:"customUrl"`
		PublishedAt string `json:"publishedAt"`
		Thumbnails  struct {
			High struct {
				URL string `json:"url"`
			} `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	Statistics struct {
		SubscriberCount string `json:"subscriberCount"`
		VideoCount      string `json:"videoCount"`
		ViewCount       string `json:"viewCount"`
	} `json:"statistics"`
}

// FetchOwnChannel fetches the channel owned by the token bearer (mine=true).
// The provider contract returns at most one item for mine=true, so no
// pagination is needed; counts pass through as strings.
func (g *YouTubeGateway) FetchOwnChannel(ctx context.Context, accessToken string) (*domain.ChannelSummary, error) {
	endpoint := g.baseURL + "/channels?part=snippet,statistics,contentDetails&mine=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}

	var list channelListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: decoding channel response: %w", domain.ErrMalformedResponse, err)
	}

	if len(list.Items) == 0 {
		return nil, domain.ErrChannelNotFound
	}

	channel := list.Items[0]
	if channel.ID == "" || channel.Snippet.Title == "" {
		return nil, fmt.Errorf("%w: channel resource missing id or title", domain.ErrMalformedResponse)
	}
	if channel.Snippet.Thumbnails.High.URL == "" {
		return nil, fmt.Errorf("%w: channel resource missing high thumbnail", domain.ErrMalformedResponse)
	}

	return &domain.ChannelSummary{
		ID:              channel.ID,
		Title:           channel.Snippet.Title,
		Description:     channel.Snippet.Description,
		CustomURL:       channel.Snippet.CustomURL,
		ThumbnailURL:    channel.Snippet.Thumbnails.High.URL,
		SubscriberCount: channel.Statistics.SubscriberCount,
		VideoCount:      channel.Statistics.VideoCount,
		ViewCount:       channel.Statistics.ViewCount,
		PublishedAt:     channel.Snippet.PublishedAt,
	}, nil
}
