package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	homearc "github.com/homearc/homearc"
)

// FileSearchParams drives POST /api/files/search. Zero limit falls back to
// the default page size; empty strings are dropped from the body.
type FileSearchParams struct {
	SearchStr string
	Limit     int
	Offset    int
	Mimetypes []string
	TagNames  []string
}

// SearchFiles searches indexed files. The backend answers with the paginated
// envelope {file_groups: [...], totals: {file_groups: N}}; the page and the
// total are returned separately. On application error the result degrades to
// an empty page with zero total.
func (c *Client) SearchFiles(ctx context.Context, params FileSearchParams) ([]FileGroup, int, error) {
	oc, err := c.post(ctx, "/api/files/search", searchBody(params))
	if err != nil {
		return nil, 0, err
	}
	if !oc.OK() {
		c.notifyAppError("File search failed", oc.AppErr)
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

func searchBody(params FileSearchParams) map[string]any {
	limit := params.Limit
	if limit <= 0 {
		limit = homearc.DefaultSearchLimit
	}
	body := map[string]any{
		"limit":  limit,
		"offset": max(params.Offset, 0),
	}
	// empty strings are normalized away rather than sent as ""
	if params.SearchStr != "" {
		body["search_str"] = params.SearchStr
	}
	if len(params.Mimetypes) > 0 {
		body["mimetypes"] = params.Mimetypes
	}
	if len(params.TagNames) > 0 {
		body["tag_names"] = params.TagNames
	}
	return body
}

// ListDirectory fetches the files and subdirectories of one directory,
// relative to the media directory.
func (c *Client) ListDirectory(ctx context.Context, directory string) (DirectoryListing, error) {
	oc, err := c.post(ctx, "/api/files", map[string]any{"directories": []string{directory}})
	if err != nil {
		return DirectoryListing{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not list directory", oc.AppErr)
		return DirectoryListing{Files: []FileGroup{}, Directories: []string{}}, nil
	}

	var listing DirectoryListing
	if err := oc.Decode(&listing); err != nil {
		return DirectoryListing{}, err
	}
	if listing.Files == nil {
		listing.Files = []FileGroup{}
	}
	if listing.Directories == nil {
		listing.Directories = []string{}
	}
	return listing, nil
}

// DeleteFiles removes the named files from disk and from the index.
func (c *Client) DeleteFiles(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	oc, err := c.post(ctx, "/api/files/delete", map[string]any{"paths": paths})
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not delete files", oc.AppErr)
	}
	return nil
}

// RefreshFiles asks the backend to rescan the media directory. Progress is
// reported separately via GetRefreshProgress.
func (c *Client) RefreshFiles(ctx context.Context) error {
	oc, err := c.post(ctx, "/api/files/refresh", nil)
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not start file refresh", oc.AppErr)
	}
	return nil
}

// GetRefreshProgress fetches the state of a running file refresh.
func (c *Client) GetRefreshProgress(ctx context.Context) (RefreshProgress, error) {
	oc, err := c.get(ctx, "/api/files/refresh/progress", nil)
	if err != nil {
		return RefreshProgress{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch refresh progress", oc.AppErr)
		return RefreshProgress{}, nil
	}

	var progress RefreshProgress
	if err := oc.Decode(&progress); err != nil {
		return RefreshProgress{}, err
	}
	return progress, nil
}

// UploadFile streams one file to the backend as a multipart form: the binary
// part plus a destination field naming the target directory.
func (c *Client) UploadFile(ctx context.Context, destination, filename string, contents io.Reader) error {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		err := writeUploadForm(form, destination, filename, contents)
		_ = pw.CloseWithError(err)
	}()

	oc, err := c.execute(ctx, request{
		method:  http.MethodPost,
		path:    "/api/files/upload",
		raw:     pr,
		rawType: form.FormDataContentType(),
	})
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError(fmt.Sprintf("Could not upload %s", filename), oc.AppErr)
	}
	return nil
}

func writeUploadForm(form *multipart.Writer, destination, filename string, contents io.Reader) error {
	if err := form.WriteField("destination", destination); err != nil {
		return fmt.Errorf("write destination field: %w", err)
	}
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create file part: %w", err)
	}
	if _, err := io.Copy(part, contents); err != nil {
		return fmt.Errorf("copy upload contents: %w", err)
	}
	return form.Close()
}
