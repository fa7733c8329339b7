package api

import (
	"context"

	"github.com/homearc/homearc/internal/apperrors"
	"github.com/homearc/homearc/internal/notify"
)

// Hotspot and CPU throttle control. These endpoints are native-only: the
// backend rejects them with a dedicated code when running on hardware without
// the feature, and that code selects a more specific message than the
// generic failure toast.

func (c *Client) HotspotOn(ctx context.Context) error {
	return c.adminToggle(ctx, "/api/hotspot/on", "Could not turn on the hotspot")
}

func (c *Client) HotspotOff(ctx context.Context) error {
	return c.adminToggle(ctx, "/api/hotspot/off", "Could not turn off the hotspot")
}

func (c *Client) ThrottleOn(ctx context.Context) error {
	return c.adminToggle(ctx, "/api/throttle/on", "Could not enable CPU throttling")
}

func (c *Client) ThrottleOff(ctx context.Context) error {
	return c.adminToggle(ctx, "/api/throttle/off", "Could not disable CPU throttling")
}

func (c *Client) adminToggle(ctx context.Context, path, failureTitle string) error {
	oc, err := c.post(ctx, path, nil)
	if err != nil {
		return err
	}
	if oc.OK() {
		return nil
	}

	switch oc.AppErr.Code {
	case apperrors.ErrCodeNativeOnly:
		c.notifier.Notify(notify.New(notify.LevelWarning, failureTitle,
			"This feature is not supported on this hardware."))
	case apperrors.ErrCodeHotspot:
		c.notifier.Notify(notify.New(notify.LevelError, failureTitle,
			"The hotspot device did not respond. Check the hotspot settings."))
	default:
		c.notifyAppError(failureTitle, oc.AppErr)
	}
	return nil
}
