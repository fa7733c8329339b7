package api

import (
	"context"
	"net/url"
	"time"
)

// GetEvents fetches the events feed. A zero `after` returns all buffered
// events; otherwise only events after the watermark are returned. Callers
// carry the returned Now value forward as the next watermark.
func (c *Client) GetEvents(ctx context.Context, after time.Time) (EventsFeed, error) {
	query := url.Values{}
	if !after.IsZero() {
		query.Set("after", after.UTC().Format(time.RFC3339Nano))
	}

	oc, err := c.get(ctx, "/api/events/feed", query)
	if err != nil {
		return EventsFeed{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch events", oc.AppErr)
		return EventsFeed{Events: []Event{}}, nil
	}

	var feed EventsFeed
	if err := oc.Decode(&feed); err != nil {
		return EventsFeed{}, err
	}
	if feed.Events == nil {
		feed.Events = []Event{}
	}
	return feed, nil
}
