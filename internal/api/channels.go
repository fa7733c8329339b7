package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/homearc/homearc/internal/apperrors"
	"github.com/homearc/homearc/internal/notify"
)

// ChannelRequest creates or updates a channel. Empty optional fields are
// dropped from the body.
type ChannelRequest struct {
	Name       string `json:"name"`
	Directory  string `json:"directory"`
	URL        string `json:"url,omitempty"`
	MatchRegex string `json:"match_regex,omitempty"`
}

// GetChannels fetches all subscribed channels.
func (c *Client) GetChannels(ctx context.Context) ([]Channel, error) {
	oc, err := c.get(ctx, "/api/videos/channels", nil)
	if err != nil {
		return nil, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch channels", oc.AppErr)
		return []Channel{}, nil
	}

	var envelope struct {
		Channels []Channel `json:"channels"`
	}
	if err := oc.Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Channels == nil {
		envelope.Channels = []Channel{}
	}
	return envelope.Channels, nil
}

// GetChannel fetches one channel.
func (c *Client) GetChannel(ctx context.Context, channelID int64) (Channel, error) {
	oc, err := c.get(ctx, fmt.Sprintf("/api/videos/channels/%d", channelID), nil)
	if err != nil {
		return Channel{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch channel", oc.AppErr)
		return Channel{}, nil
	}

	var envelope struct {
		Channel Channel `json:"channel"`
	}
	if err := oc.Decode(&envelope); err != nil {
		return Channel{}, err
	}
	return envelope.Channel, nil
}

// CreateChannel creates a channel; the backend answers 201.
func (c *Client) CreateChannel(ctx context.Context, req ChannelRequest) error {
	oc, err := c.post(ctx, "/api/videos/channels", req)
	if err != nil {
		return err
	}
	if oc.Status != http.StatusCreated {
		c.notifyAppError("Could not create channel", oc.AppErr)
		return nil
	}
	c.notifier.Notify(notify.New(notify.LevelSuccess, "Channel created", req.Name))
	return nil
}

// UpdateChannel updates an existing channel.
func (c *Client) UpdateChannel(ctx context.Context, channelID int64, req ChannelRequest) error {
	oc, err := c.put(ctx, fmt.Sprintf("/api/videos/channels/%d", channelID), req)
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not save channel", oc.AppErr)
	}
	return nil
}

// DeleteChannel removes a channel record; its videos stay on disk.
func (c *Client) DeleteChannel(ctx context.Context, channelID int64) error {
	oc, err := c.delete(ctx, fmt.Sprintf("/api/videos/channels/%d", channelID))
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not delete channel", oc.AppErr)
	}
	return nil
}

// GetChannelDownloads fetches the download schedule records for a channel.
// A channel that has never been scheduled answers with a dedicated code,
// which is an expected state rather than an error toast.
func (c *Client) GetChannelDownloads(ctx context.Context, channelID int64) ([]ChannelDownload, error) {
	oc, err := c.get(ctx, fmt.Sprintf("/api/videos/channels/%d/downloads", channelID), nil)
	if err != nil {
		return nil, err
	}
	if !oc.OK() {
		if oc.AppErr.Code == apperrors.ErrCodeNoDownloadRecord {
			c.notifier.Notify(notify.New(notify.LevelInfo, "No download schedule",
				"This channel has no download schedule record yet."))
			return []ChannelDownload{}, nil
		}
		c.notifyAppError("Could not fetch channel downloads", oc.AppErr)
		return []ChannelDownload{}, nil
	}

	var envelope struct {
		Downloads []ChannelDownload `json:"downloads"`
	}
	if err := oc.Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Downloads == nil {
		envelope.Downloads = []ChannelDownload{}
	}
	return envelope.Downloads, nil
}

// DownloadChannel refreshes the channel catalog and downloads missing videos.
func (c *Client) DownloadChannel(ctx context.Context, channelID int64) error {
	oc, err := c.post(ctx, fmt.Sprintf("/api/videos/download/%d", channelID), nil)
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not start channel download", oc.AppErr)
	}
	return nil
}
