package api

import (
	"context"
	"fmt"

	homearc "github.com/homearc/homearc"
	"github.com/homearc/homearc/internal/notify"
)

// VideoSearchParams drives POST /api/videos/search.
type VideoSearchParams struct {
	SearchStr string
	Limit     int
	Offset    int
	ChannelID int64
	Order     string
}

// SearchVideos searches indexed videos, optionally within one channel.
// Responses use the same paginated file-group envelope as the file search.
func (c *Client) SearchVideos(ctx context.Context, params VideoSearchParams) ([]FileGroup, int, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = homearc.DefaultSearchLimit
	}
	body := map[string]any{
		"limit":  limit,
		"offset": max(params.Offset, 0),
	}
	if params.SearchStr != "" {
		body["search_str"] = params.SearchStr
	}
	if params.ChannelID != 0 {
		body["channel_id"] = params.ChannelID
	}
	if params.Order != "" {
		if !homearc.ValidSortOrders[params.Order] {
			c.notifier.Notify(notify.New(notify.LevelError, "Video search failed",
				fmt.Sprintf("%q is not a supported sort order.", params.Order)))
			return []FileGroup{}, 0, nil
		}
		body["order_by"] = params.Order
	}

	oc, err := c.post(ctx, "/api/videos/search", body)
	if err != nil {
		return nil, 0, err
	}
	if !oc.OK() {
		c.notifyAppError("Video search failed", oc.AppErr)
		return []FileGroup{}, 0, nil
	}

	var envelope searchEnvelope
	if err := oc.Decode(&envelope); err != nil {
		return nil, 0, err
	}
	if envelope.FileGroups == nil {
		envelope.FileGroups = []FileGroup{}
	}
	return envelope.FileGroups, envelope.Totals["file_groups"], nil
}

// GetVideo fetches one video with its prev/next neighbours.
func (c *Client) GetVideo(ctx context.Context, videoID int64) (Video, error) {
	oc, err := c.get(ctx, fmt.Sprintf("/api/videos/video/%d", videoID), nil)
	if err != nil {
		return Video{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch video", oc.AppErr)
		return Video{}, nil
	}

	var video Video
	if err := oc.Decode(&video); err != nil {
		return Video{}, err
	}
	return video, nil
}

// DeleteVideo removes a video and its sidecar files.
func (c *Client) DeleteVideo(ctx context.Context, videoID int64) error {
	oc, err := c.delete(ctx, fmt.Sprintf("/api/videos/video/%d", videoID))
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not delete video", oc.AppErr)
	}
	return nil
}

// SetVideoFavorite toggles the favorite flag and returns the new value.
func (c *Client) SetVideoFavorite(ctx context.Context, videoID int64, favorite bool) (bool, error) {
	body := map[string]any{"video_id": videoID, "favorite": favorite}
	oc, err := c.post(ctx, "/api/videos/favorite", body)
	if err != nil {
		return false, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not update favorite", oc.AppErr)
		return false, nil
	}

	var result struct {
		VideoID  int64 `json:"video_id"`
		Favorite bool  `json:"favorite"`
	}
	if err := oc.Decode(&result); err != nil {
		return false, err
	}
	return result.Favorite, nil
}

// GetVideosStatistics fetches the videos module rollup.
func (c *Client) GetVideosStatistics(ctx context.Context) (VideosStatistics, error) {
	oc, err := c.get(ctx, "/api/videos/statistics", nil)
	if err != nil {
		return VideosStatistics{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch video statistics", oc.AppErr)
		return VideosStatistics{}, nil
	}

	var stats VideosStatistics
	if err := oc.Decode(&stats); err != nil {
		return VideosStatistics{}, err
	}
	return stats, nil
}
