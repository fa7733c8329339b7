package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/homearc/homearc/internal/notify"
)

// GetInventories fetches all inventories without their items.
func (c *Client) GetInventories(ctx context.Context) ([]Inventory, error) {
	oc, err := c.get(ctx, "/api/inventory", nil)
	if err != nil {
		return nil, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch inventories", oc.AppErr)
		return []Inventory{}, nil
	}

	var envelope struct {
		Inventories []Inventory `json:"inventories"`
	}
	if err := oc.Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Inventories == nil {
		envelope.Inventories = []Inventory{}
	}
	return envelope.Inventories, nil
}

// GetInventory fetches one inventory with its items.
func (c *Client) GetInventory(ctx context.Context, inventoryID int64) (Inventory, error) {
	oc, err := c.get(ctx, fmt.Sprintf("/api/inventory/%d", inventoryID), nil)
	if err != nil {
		return Inventory{}, err
	}
	if !oc.OK() {
		c.notifyAppError("Could not fetch inventory", oc.AppErr)
		return Inventory{Items: []InventoryItem{}}, nil
	}

	var inventory Inventory
	if err := oc.Decode(&inventory); err != nil {
		return Inventory{}, err
	}
	if inventory.Items == nil {
		inventory.Items = []InventoryItem{}
	}
	return inventory, nil
}

// CreateInventory creates a named inventory; the backend answers 201.
func (c *Client) CreateInventory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		c.notifier.Notify(notify.New(notify.LevelError, "Could not create inventory", "A name is required."))
		return nil
	}

	oc, err := c.post(ctx, "/api/inventory", map[string]string{"name": name})
	if err != nil {
		return err
	}
	if oc.Status != http.StatusCreated {
		c.notifyAppError("Could not create inventory", oc.AppErr)
	}
	return nil
}

// UpdateInventory renames an inventory.
func (c *Client) UpdateInventory(ctx context.Context, inventoryID int64, name string) error {
	oc, err := c.put(ctx, fmt.Sprintf("/api/inventory/%d", inventoryID), map[string]string{"name": name})
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not save inventory", oc.AppErr)
	}
	return nil
}

// DeleteInventory removes an inventory and its items.
func (c *Client) DeleteInventory(ctx context.Context, inventoryID int64) error {
	oc, err := c.delete(ctx, fmt.Sprintf("/api/inventory/%d", inventoryID))
	if err != nil {
		return err
	}
	if !oc.OK() {
		c.notifyAppError("Could not delete inventory", oc.AppErr)
	}
	return nil
}
