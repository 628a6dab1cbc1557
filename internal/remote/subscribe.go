package remote

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"wheresmy/internal/model"
)

const (
	reconnectMinDelay = time.Second
	reconnectMaxDelay = 30 * time.Second
)

// Subscribe establishes a live feed on the room. onUpdate is invoked with
// the full collection, newest-update-first, on connect and whenever the
// room changes by any party, this client's own writes included. Transport
// errors go to onError and the feed reconnects with backoff rather than
// dying. The returned stop function cancels the feed; it is idempotent and
// safe to call any number of times.
func (c *Client) Subscribe(ctx context.Context, code string, onUpdate func([]model.Item), onError func(error)) func() {
	subCtx, cancel := context.WithCancel(ctx)
	go c.runFeed(subCtx, code, onUpdate, onError)

	var once sync.Once
	return func() {
		once.Do(cancel)
	}
}

func (c *Client) runFeed(ctx context.Context, code string, onUpdate func([]model.Item), onError func(error)) {
	delay := reconnectMinDelay
	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.feedURL(code), nil)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if onError != nil {
				onError(err)
			}
			if !sleepCtx(ctx, delay) {
				return
			}
			if delay *= 2; delay > reconnectMaxDelay {
				delay = reconnectMaxDelay
			}
			continue
		}
		delay = reconnectMinDelay

		err = readFeed(ctx, conn, onUpdate)
		conn.Close()
		if ctx.Err() != nil {
			return
		}
		if err != nil && onError != nil {
			onError(err)
		}
		slog.Warn("feed disconnected, reconnecting", "room", code)
		if !sleepCtx(ctx, reconnectMinDelay) {
			return
		}
	}
}

// readFeed delivers snapshots until the connection fails or ctx ends.
func readFeed(ctx context.Context, conn *websocket.Conn, onUpdate func([]model.Item)) error {
	// Unblock the read when ctx is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var items []model.Item
		if err := conn.ReadJSON(&items); err != nil {
			return err
		}
		model.SortByUpdated(items)
		if onUpdate != nil {
			onUpdate(items)
		}
	}
}

func (c *Client) feedURL(code string) string {
	url := c.baseURL + "/api/rooms/" + code + "/feed"
	if strings.HasPrefix(url, "https") {
		return "wss" + strings.TrimPrefix(url, "https")
	}
	return "ws" + strings.TrimPrefix(url, "http")
}

// sleepCtx waits for d, returning false if ctx ended first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
