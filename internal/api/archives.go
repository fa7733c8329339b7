package api

import (
	"context"
	"fmt"

	homearc "github.com/homearc/homearc"
)

// ArchiveSearchParams drives POST /api/archive/search.
type ArchiveSearchParams struct {
	SearchStr string
	Limit     int
	Offset    int
	Domain    string
}

// SearchArchives searches archived web pages, optionally within one domain.
func (c *Client) SearchArchives(ctx context.Context, params ArchiveSearchParams) ([]FileGroup, int, error) {
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
	if params.Domain != "" {
		body["domain"] = params.Domain
	}

	oc, err := c.post(ctx, "/api/archive/search", body)
	if err != nil {
		return nil, 0, err
	}
	if !oc.OK() {
		c.notifyAppError("Archive search failed", oc.AppErr)
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

// DeleteArchive removes one archived page.
func (c *Client) DeleteArchive(ctx context.Context, archiveID int64) error {
	oc, err := c.delete(ctx, fmt.Sprintf("/api/archive/%d", archiveID))
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not delete archive", oc.AppErr)
	}
	return nil
}

// GetDomains fetches the archived domains with their rollup counts.
func (c *Client) GetDomains(ctx context.Context) ([]ArchiveDomain, error) {
	oc, err := c.get(ctx, "/api/archive/domains", nil)
	if err != nil {
		return nil, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch domains", oc.AppErr)
		return []ArchiveDomain{}, nil
	}

	var envelope struct {
		Domains []ArchiveDomain `json:"domains"`
	}
	if err := oc.Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Domains == nil {
		envelope.Domains = []ArchiveDomain{}
	}
	return envelope.Domains, nil
}
