package api

import (
	"context"
	"fmt"

	"github.com/unbequem/site-backend/internal/models"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTubeAPI serves full channel details through the official API client.
type YouTubeAPI struct {
	service *youtube.Service
}

// NewYouTubeAPI creates a new YouTube API handler
func NewYouTubeAPI(apiKey string) (*YouTubeAPI, error) {
	ctx := context.Background()
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %v", err)
	}

	return &YouTubeAPI{
		service: service,
	}, nil
}

// GetChannelByID fetches snippet and statistics for a raw channel ID.
func (y *YouTubeAPI) GetChannelByID(channelID string) (*models.Channel, error) {
	call := y.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		MaxResults(1)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("error fetching channel info: %v", err)
	}

	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w for id", models.ErrChannelNotFound)
	}

	item := response.Items[0]
	return &models.Channel{
		ID:          item.Id,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Subscribers: int64(item.Statistics.SubscriberCount),
		ViewCount:   int64(item.Statistics.ViewCount),
		VideoCount:  int64(item.Statistics.VideoCount),
		Thumbnail:   item.Snippet.Thumbnails.Default.Url,
	}, nil
}
