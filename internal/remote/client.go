// Package remote talks to the sync server: plain JSON requests for room
// operations, plus a websocket feed delivering full collection snapshots.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"wheresmy/internal/model"
)

// ErrRoomNotFound marks a join attempt against a room that has never been
// seeded. Like a short code, it is user-facing, not a transport fault.
var ErrRoomNotFound = errors.New("room not found")

// Client is a sync server client. The zero value is not usable; use NewClient.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Exists reports whether the room's collection is present and non-empty.
func (c *Client) Exists(ctx context.Context, code string) (bool, error) {
	var resp struct {
		Exists bool `json:"exists"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/rooms/"+code, nil, &resp); err != nil {
		return false, err
	}
	return resp.Exists, nil
}

// Items returns the room's current collection, newest-update-first.
func (c *Client) Items(ctx context.Context, code string) ([]model.Item, error) {
	var items []model.Item
	if err := c.do(ctx, http.MethodGet, "/api/rooms/"+code+"/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Put upserts one item in the room, keyed by its ID.
func (c *Client) Put(ctx context.Context, code string, item model.Item) error {
	path := fmt.Sprintf("/api/rooms/%s/items/%d", code, item.ID)
	return c.do(ctx, http.MethodPut, path, item, nil)
}

// Remove deletes one item from the room. Removing an absent item succeeds.
func (c *Client) Remove(ctx context.Context, code string, itemID int64) error {
	path := fmt.Sprintf("/api/rooms/%s/items/%d", code, itemID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ReplaceAll overwrites the room's entire collection. Used only for seeding
// a brand-new room.
func (c *Client) ReplaceAll(ctx context.Context, code string, items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	return c.do(ctx, http.MethodPut, "/api/rooms/"+code+"/items", items, nil)
}

// JoinRoom validates the code and checks the room exists, returning the
// normalized code to sync against.
func (c *Client) JoinRoom(ctx context.Context, code string) (string, error) {
	code, err := model.ValidateRoomCode(code)
	if err != nil {
		return "", err
	}
	exists, err := c.Exists(ctx, code)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrRoomNotFound
	}
	return code, nil
}

// CreateRoom seeds a new room with the demo dataset and returns its code.
// An empty code means generate one. If the room already has a collection,
// creation degenerates into a join and nothing is overwritten. The second
// return reports whether an existing room was joined.
func (c *Client) CreateRoom(ctx context.Context, code string) (string, bool, error) {
	var err error
	if strings.TrimSpace(code) == "" {
		code, err = model.GenerateRoomCode()
		if err != nil {
			return "", false, err
		}
	}
	code, err = model.ValidateRoomCode(code)
	if err != nil {
		return "", false, err
	}

	exists, err := c.Exists(ctx, code)
	if err != nil {
		return "", false, err
	}
	if exists {
		return code, true, nil
	}

	if err := c.ReplaceAll(ctx, code, model.DemoItems(time.Now())); err != nil {
		return "", false, err
	}
	return code, false, nil
}

// do performs one JSON request. Non-2xx responses surface the server's error
// message; network failures are wrapped so callers can present them as
// retryable connection problems.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("contacting sync server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("sync server: %s", apiErr.Error)
		}
		return fmt.Errorf("sync server: unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
