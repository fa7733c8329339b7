package api

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"github.com/homearc/homearc/internal/notify"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GetTags fetches every tag with its usage count.
func (c *Client) GetTags(ctx context.Context) ([]Tag, error) {
	oc, err := c.get(ctx, "/api/tag", nil)
	if err != nil {
		return nil, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch tags", oc.AppErr)
		return []Tag{}, nil
	}

	var envelope struct {
		Tags []Tag `json:"tags"`
	}
	if err := oc.Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Tags == nil {
		envelope.Tags = []Tag{}
	}
	return envelope.Tags, nil
}

// SaveTag creates a tag (tagID zero, backend answers 201) or updates an
// existing one (backend answers 200). The name is normalized before sending
// so that visually identical tags cannot be created twice.
func (c *Client) SaveTag(ctx context.Context, tagID int64, name, color string) error {
	normalized, err := NormalizeTagName(name)
	if err != nil {
		c.notifier.Notify(notify.New(notify.LevelError, "Could not save tag", "The tag name is not valid."))
		return nil
	}

	path := "/api/tag"
	if tagID != 0 {
		path = fmt.Sprintf("/api/tag/%d", tagID)
	}

	body := map[string]string{"name": normalized, "color": color}
	oc, err := c.post(ctx, path, body)
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not save tag", oc.AppErr)
	}
	return nil
}

// DeleteTag removes a tag. The backend refuses while the tag is still in use.
func (c *Client) DeleteTag(ctx context.Context, tagID int64) error {
	oc, err := c.delete(ctx, fmt.Sprintf("/api/tag/%d", tagID))
	if err != nil {
		return err
	}
	if !oc.OK() {
		if oc.Status == http.StatusBadRequest && oc.AppErr.Message != "" {
			c.notifier.Notify(notify.New(notify.LevelError, "Could not delete tag", oc.AppErr.Message))
			return nil
		}
		c.notifyAppError("Could not delete tag", oc.AppErr)
	}
	return nil
}

var tagSpaceRegex = regexp.MustCompile(`\s+`)

// NormalizeTagName canonicalizes a tag name: NFC-composed, diacritic marks
// stripped, interior whitespace collapsed.
func NormalizeTagName(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("no input string supplied to NormalizeTagName")
	}

	decomposed := norm.NFD.String(trimmed)
	withoutMarks, _, err := transform.String(runes.Remove(runes.In(unicode.Mn)), decomposed)
	if err != nil {
		return "", fmt.Errorf("error normalizing tag name: %v", err)
	}

	composed := norm.NFC.String(withoutMarks)
	return tagSpaceRegex.ReplaceAllString(composed, " "), nil
}
