package api

import (
	"context"

	"github.com/homearc/homearc/internal/notify"
)

// GetMapFiles lists the importable map dumps found on disk.
func (c *Client) GetMapFiles(ctx context.Context) ([]MapFile, error) {
	oc, err := c.get(ctx, "/api/map/files", nil)
	if err != nil {
		return nil, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch map files", oc.AppErr)
		return []MapFile{}, nil
	}

	var envelope struct {
		Files []MapFile `json:"files"`
	}
	if err := oc.Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Files == nil {
		envelope.Files = []MapFile{}
	}
	return envelope.Files, nil
}

// ImportMapFiles starts importing the selected map dumps. Imports run for
// hours; progress is reported by GetMapImportStatus.
func (c *Client) ImportMapFiles(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		c.notifier.Notify(notify.New(notify.LevelError, "Could not import map files", "No files were selected."))
		return nil
	}

	oc, err := c.post(ctx, "/api/map/import", map[string]any{"files": paths})
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not import map files", oc.AppErr)
		return nil
	}

	c.notifier.Notify(notify.New(notify.LevelSuccess, "Map import started",
		"Importing can take several hours for large dumps."))
	return nil
}

// GetMapImportStatus reports whether an import is running and what is queued.
func (c *Client) GetMapImportStatus(ctx context.Context) (MapImportStatus, error) {
	oc, err := c.get(ctx, "/api/map/import_status", nil)
	if err != nil {
		return MapImportStatus{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch map import status", oc.AppErr)
		return MapImportStatus{Pending: []string{}}, nil
	}

	var status MapImportStatus
	if err := oc.Decode(&status); err != nil {
		return MapImportStatus{}, err
	}
	if status.Pending == nil {
		status.Pending = []string{}
	}
	return status, nil
}
