package domain

// TokenPair holds the credentials returned by the OAuth token endpoint.
// RefreshToken is empty unless the provider re-issued one (offline access
// with a forced consent prompt).
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// ChannelSummary is the normalized projection of the video platform's
// channel resource. Count fields stay strings: the provider returns them
// as strings and the frontend formats them itself, so no numeric coercion
// happens on the way through.
type ChannelSummary struct {
	ID              string
	Title           string
	Description     string
	CustomURL       string
	ThumbnailURL    string
	SubscriberCount string
	VideoCount      string
	ViewCount       string
	PublishedAt     string
}
