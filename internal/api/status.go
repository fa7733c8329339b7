package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// GetSettings fetches the appliance settings.
func (c *Client) GetSettings(ctx context.Context) (Settings, error) {
	oc, err := c.get(ctx, "/api/settings", nil)
	if err != nil {
		return Settings{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch settings", oc.AppErr)
		return Settings{}, nil
	}

	var settings Settings
	if err := oc.Decode(&settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// UpdateSettings patches the supplied settings fields. The backend responds
// 204 on success; mutations are rejected while write-protect mode is on
// (unless the update itself disables write-protect mode).
func (c *Client) UpdateSettings(ctx context.Context, update SettingsUpdate) error {
	oc, err := c.patch(ctx, "/api/settings", update)
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not save settings", oc.AppErr)
	}
	return nil
}

// GetStatus fetches the system status report (CPU, load, drives, downloads).
func (c *Client) GetStatus(ctx context.Context) (StatusReport, error) {
	oc, err := c.get(ctx, "/api/status", nil)
	if err != nil {
		return StatusReport{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch status", oc.AppErr)
		return StatusReport{}, nil
	}

	var report StatusReport
	if err := oc.Decode(&report); err != nil {
		return StatusReport{}, err
	}
	return report, nil
}

// GetStatistics fetches the file and global statistics rollup. The payload
// shape varies with the installed modules so it is returned raw.
func (c *Client) GetStatistics(ctx context.Context) (map[string]json.RawMessage, error) {
	oc, err := c.get(ctx, "/api/statistics", nil)
	if err != nil {
		return nil, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch statistics", oc.AppErr)
		return map[string]json.RawMessage{}, nil
	}

	stats := map[string]json.RawMessage{}
	if err := oc.Decode(&stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// ValidRegex asks the backend whether a regex compiles. The endpoint answers
// 200 for valid and 400 for invalid with the same body shape, so both are
// ordinary outcomes.
func (c *Client) ValidRegex(ctx context.Context, regex string) (bool, error) {
	oc, err := c.post(ctx, "/api/valid_regex", map[string]string{"regex": regex})
	if err != nil {
		return false, err
	}
	if oc.Status != http.StatusOK && oc.Status != http.StatusBadRequest {
		c.notifyAppError("Could not validate regex", oc.AppErr)
		return false, nil
	}

	var result struct {
		Valid bool   `json:"valid"`
		Regex string `json:"regex"`
	}
	if err := oc.Decode(&result); err != nil {
		return false, err
	}
	return result.Valid, nil
}

// Echo round-trips a payload through the backend. Used by connectivity checks.
func (c *Client) Echo(ctx context.Context) error {
	oc, err := c.get(ctx, "/api/echo", nil)
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Backend unreachable", oc.AppErr)
	}
	return nil
}
