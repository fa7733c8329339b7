package api

import (
	"context"
	"fmt"
	"strings"

	homearc "github.com/homearc/homearc"
	"github.com/homearc/homearc/internal/apperrors"
	"github.com/homearc/homearc/internal/notify"
)

// GetDownloads fetches the once-off and recurring download queues.
func (c *Client) GetDownloads(ctx context.Context) (DownloadQueues, error) {
	oc, err := c.get(ctx, "/api/download", nil)
	if err != nil {
		return DownloadQueues{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch downloads", oc.AppErr)
		return DownloadQueues{OnceDownloads: []Download{}, RecurringDownloads: []Download{}}, nil
	}

	var queues DownloadQueues
	if err := oc.Decode(&queues); err != nil {
		return DownloadQueues{}, err
	}
	if queues.OnceDownloads == nil {
		queues.OnceDownloads = []Download{}
	}
	if queues.RecurringDownloads == nil {
		queues.RecurringDownloads = []Download{}
	}
	return queues, nil
}

// CreateDownload submits new downloads. URLs arrive one per line; empty
// optional fields are dropped from the request body.
func (c *Client) CreateDownload(ctx context.Context, req DownloadRequest) error {
	req.URLs = strings.TrimSpace(req.URLs)
	if req.URLs == "" {
		c.notifier.Notify(notify.New(notify.LevelError, "Could not create download", "No URLs were provided."))
		return nil
	}
	if req.Frequency != 0 && !homearc.ValidDownloadFrequencies[req.Frequency] {
		c.notifier.Notify(notify.New(notify.LevelError, "Could not create download",
			fmt.Sprintf("%d seconds is not a supported download frequency.", req.Frequency)))
		return nil
	}

	oc, err := c.post(ctx, "/api/download", req)
	if err != nil {
		return err
	}
	if !oc.OK() {
		if oc.AppErr.Code == apperrors.ErrCodeInvalidDownload {
			c.notifier.Notify(notify.New(notify.LevelError, "Could not create download", oc.AppErr.Message))
			return nil
		}
		c.notifyAppError("Could not create download", oc.AppErr)
		return nil
	}

	c.notifier.Notify(notify.New(notify.LevelSuccess, "Download created", "The download has been queued."))
	return nil
}

// DeleteDownload removes a download record. The backend responds 204, or 404
// when the record is already gone.
func (c *Client) DeleteDownload(ctx context.Context, downloadID int64) error {
	oc, err := c.delete(ctx, fmt.Sprintf("/api/download/%d", downloadID))
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not delete download", oc.AppErr)
	}
	return nil
}

// KillDownload stops a single pending download.
func (c *Client) KillDownload(ctx context.Context, downloadID int64) error {
	oc, err := c.post(ctx, fmt.Sprintf("/api/download/%d/kill", downloadID), nil)
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not stop download", oc.AppErr)
	}
	return nil
}

// KillAllDownloads stops all downloads and disables downloading.
func (c *Client) KillAllDownloads(ctx context.Context) error {
	oc, err := c.post(ctx, "/api/download/kill", nil)
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not stop downloads", oc.AppErr)
	}
	return nil
}

// EnableDownloads re-enables and starts downloading.
func (c *Client) EnableDownloads(ctx context.Context) error {
	oc, err := c.post(ctx, "/api/download/enable", nil)
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not enable downloads", oc.AppErr)
	}
	return nil
}

// ClearCompletedDownloads deletes completed download records.
func (c *Client) ClearCompletedDownloads(ctx context.Context) error {
	oc, err := c.post(ctx, "/api/download/clear_completed", nil)
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not clear completed downloads", oc.AppErr)
	}
	return nil
}

// ClearFailedDownloads deletes failed download records.
func (c *Client) ClearFailedDownloads(ctx context.Context) error {
	oc, err := c.post(ctx, "/api/download/clear_failed", nil)
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not clear failed downloads", oc.AppErr)
	}
	return nil
}

// GetDownloaders fetches the downloader catalog. The catalog only changes on
// upgrade so the read goes through the caching transport.
func (c *Client) GetDownloaders(ctx context.Context) (DownloaderCatalog, error) {
	oc, err := c.execute(ctx, request{method: "GET", path: "/api/downloaders", cached: true})
	if err != nil {
		return DownloaderCatalog{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch downloaders", oc.AppErr)
		return DownloaderCatalog{Downloaders: []Downloader{}}, nil
	}

	var catalog DownloaderCatalog
	if err := oc.Decode(&catalog); err != nil {
		return DownloaderCatalog{}, err
	}
	if catalog.Downloaders == nil {
		catalog.Downloaders = []Downloader{}
	}
	return catalog, nil
}
