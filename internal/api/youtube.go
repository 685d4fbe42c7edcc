package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/unbequem/site-backend/internal/models"
)

const (
	youtubeAPIBaseURL = "https://www.googleapis.com/youtube/v3"

	// Per-call network timeout for upstream lookups
	requestTimeout = 10 * time.Second

	// Upstream error bodies are truncated to this many bytes before they
	// are echoed back to the caller
	maxErrorDetailLen = 200
)

// HTTPClient abstracts the outbound HTTP client so the resolver can be
// tested without the network.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// YouTubeClient handles direct HTTP requests to the YouTube Data API
type YouTubeClient struct {
	apiKey string
	client HTTPClient
}

// NewYouTubeClient creates a new YouTube client. An empty apiKey is
// allowed; lookups then short-circuit into the unconfigured response.
func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		apiKey: apiKey,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// ResolveChannelStats resolves live channel statistics for a handle or a
// channel ID. The handle path is preferred when both are supplied; a
// handle that fails to resolve but looks like a raw channel ID (the "UC"
// prefix) is retried via the ID path.
func (c *YouTubeClient) ResolveChannelStats(ctx context.Context, req models.LookupRequest) (*models.ChannelStats, error) {
	if c.apiKey == "" {
		stats := &models.ChannelStats{
			Status:  models.StatusUnconfigured,
			Message: "YOUTUBE_API_KEY not set on server",
		}
		if req.ID != "" {
			stats.ChannelID = &req.ID
		}
		if req.Handle != "" {
			stats.Handle = &req.Handle
		}
		return stats, nil
	}

	if req.Handle == "" && req.ID == "" {
		return nil, models.ErrMissingLookup
	}

	id := req.ID
	if req.Handle != "" {
		data, err := c.listChannels(ctx, "forHandle", req.Handle)
		if err != nil {
			return nil, err
		}
		if len(data.Items) > 0 {
			return statsFromItem(data.Items[0]), nil
		}

		// Handles and channel IDs are visually similar; a "UC"-prefixed
		// handle that did not resolve is retried as a raw channel ID.
		if !strings.HasPrefix(req.Handle, "UC") {
			return nil, fmt.Errorf("%w for handle", models.ErrChannelNotFound)
		}
		id = req.Handle
	}

	data, err := c.listChannels(ctx, "id", id)
	if err != nil {
		return nil, err
	}
	if len(data.Items) == 0 {
		return nil, fmt.Errorf("%w for id", models.ErrChannelNotFound)
	}
	return statsFromItem(data.Items[0]), nil
}

// listChannels issues a channels.list call with one mode-specific query
// parameter. Parameters are built fresh per call so the handle and ID
// attempts never share state.
func (c *YouTubeClient) listChannels(ctx context.Context, param, value string) (*models.ChannelListResponse, error) {
	q := url.Values{}
	q.Set("part", "statistics,snippet,customUrl")
	q.Set("key", c.apiKey)
	q.Set(param, value)

	reqURL := youtubeAPIBaseURL + "/channels?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to youtube api failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &models.UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     truncate(string(body), maxErrorDetailLen),
		}
	}

	var data models.ChannelListResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &data, nil
}

// statsFromItem normalizes an upstream item into the response shape.
func statsFromItem(item models.ChannelListItem) *models.ChannelStats {
	id := item.ID
	title := item.Snippet.Title

	return &models.ChannelStats{
		Status:          models.StatusOK,
		ChannelID:       &id,
		Title:           &title,
		SubscriberCount: parseCount(item.Statistics.SubscriberCount),
		ViewCount:       parseCount(item.Statistics.ViewCount),
		VideoCount:      parseCount(item.Statistics.VideoCount),
	}
}

// parseCount coerces a string-encoded counter into an integer, keeping
// the absent-vs-zero distinction: a missing counter stays nil.
func parseCount(s *string) *int64 {
	if s == nil {
		return nil
	}
	n, _ := strconv.ParseInt(*s, 10, 64)
	return &n
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
