package models

// Lookup statuses reported in ChannelStats.Status.
const (
	StatusOK           = "ok"
	StatusUnconfigured = "unconfigured"
)

// LookupRequest carries the query parameters of a channel stats lookup.
// At least one of Handle or ID must be set for a live lookup.
type LookupRequest struct {
	Handle string
	ID     string
}

// ChannelStats is the normalized channel statistics response.
// Counters are pointers so that a counter absent upstream stays null in
// the output instead of collapsing to zero.
type ChannelStats struct {
	Status          string  `json:"status"`
	Message         string  `json:"message,omitempty"`
	ChannelID       *string `json:"channelId"`
	Handle          *string `json:"handle,omitempty"`
	Title           *string `json:"title,omitempty"`
	SubscriberCount *int64  `json:"subscriberCount"`
	ViewCount       *int64  `json:"viewCount"`
	VideoCount      *int64  `json:"videoCount"`
}

// ChannelListResponse represents the channels.list response from the
// YouTube Data API. Statistics counters arrive string-encoded and may be
// missing entirely (e.g. hidden subscriber counts).
type ChannelListResponse struct {
	Items []ChannelListItem `json:"items"`
}

// ChannelListItem is a single entry of the upstream items collection.
type ChannelListItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"snippet"`
	Statistics struct {
		SubscriberCount *string `json:"subscriberCount"`
		ViewCount       *string `json:"viewCount"`
		VideoCount      *string `json:"videoCount"`
	} `json:"statistics"`
}

// Channel represents a YouTube channel as served by the detail endpoint.
type Channel struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Subscribers int64  `json:"subscriberCount"`
	ViewCount   int64  `json:"viewCount"`
	VideoCount  int64  `json:"videoCount"`
	Thumbnail   string `json:"thumbnailUrl"`
}
