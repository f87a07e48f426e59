package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"channel-hub/internal/domain"
	"channel-hub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ChannelHandler handles /api/youtube/channel.
type ChannelHandler struct {
	uc *usecase.GetChannel
}

// NewChannelHandler creates a new channel handler.
func NewChannelHandler(uc *usecase.GetChannel) *ChannelHandler {
	return &ChannelHandler{uc: uc}
}

// channelPayload is the wire shape of a channel summary.
type channelPayload struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	CustomURL       string `json:"customUrl,omitempty"`
	Thumbnail       string `json:"thumbnail"`
	SubscriberCount string `json:"subscriberCount"`
	VideoCount      string `json:"videoCount"`
	ViewCount       string `json:"viewCount"`
	PublishedAt     string `json:"publishedAt"`
}

// channelResponse is the success envelope.
type channelResponse struct {
	Success bool           `json:"success"`
	Channel channelPayload `json:"channel"`
}

// Handle validates the session, then proxies the channel lookup.
func (h *ChannelHandler) Handle(c echo.Context) error {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
	}

	ctx := c.Request().Context()
	accessToken := c.QueryParam("access_token")

	channel, err := h.uc.Execute(ctx, cookie.Value, accessToken)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, channelResponse{
		Success: true,
		Channel: channelPayload{
			ID:              channel.ID,
			Title:           channel.Title,
			Description:     channel.Description,
			CustomURL:       channel.CustomURL,
			Thumbnail:       channel.ThumbnailURL,
			SubscriberCount: channel.SubscriberCount,
			VideoCount:      channel.VideoCount,
			ViewCount:       channel.ViewCount,
			PublishedAt:     channel.PublishedAt,
		},
	})
}

// writeError maps lookup failures onto the JSON error surface.
func (h *ChannelHandler) writeError(c echo.Context, err error) error {
	var upstream *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrAuthFailed),
		errors.Is(err, domain.ErrSessionExpired),
		errors.Is(err, domain.ErrSessionInactive),
		errors.Is(err, domain.ErrMissingIdentity):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})

	case errors.Is(err, domain.ErrTokenRequired):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Access token required"})

	case errors.Is(err, domain.ErrChannelNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "No channel found"})

	case errors.As(err, &upstream):
		return c.JSON(upstream.StatusCode, echo.Map{
			"error":   "Failed to fetch channel data",
			"details": upstreamDetails(upstream.Body),
		})

	case errors.Is(err, domain.ErrMalformedResponse),
		errors.Is(err, domain.ErrProviderUnavailable),
		errors.Is(err, domain.ErrKratosUnavailable):
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "Upstream provider error"})

	default:
		slog.ErrorContext(c.Request().Context(), "unexpected channel lookup error", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal server error"})
	}
}

// upstreamDetails passes the provider error body through as JSON when it is
// JSON, and as a plain string otherwise.
func upstreamDetails(body []byte) any {
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
