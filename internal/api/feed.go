package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"wheresmy/internal/model"
	"wheresmy/internal/store"
)

const (
	feedWriteTimeout    = 10 * time.Second
	feedSnapshotTimeout = 5 * time.Second
)

var feedUpgrader = websocket.Upgrader{
	ReadBufferSize:  32 * 1024,
	WriteBufferSize: 32 * 1024,
	// Feed clients connect cross-origin and carry no credentials.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans room changes out to live feed subscribers. Each subscriber gets
// the full current collection; slow subscribers skip intermediate snapshots
// and only ever see the latest state.
type Hub struct {
	db *sql.DB

	mu    sync.Mutex
	rooms map[string]map[uuid.UUID]chan []model.Item
}

// NewHub creates a hub reading snapshots from the given database.
func NewHub(db *sql.DB) *Hub {
	return &Hub{
		db:    db,
		rooms: make(map[string]map[uuid.UUID]chan []model.Item),
	}
}

// Notify broadcasts the room's current collection to all of its subscribers.
// Called after every mutation to the room.
func (h *Hub) Notify(code string) {
	ctx, cancel := context.WithTimeout(context.Background(), feedSnapshotTimeout)
	defer cancel()

	items, err := h.snapshot(ctx, code)
	if err != nil {
		slog.Error("failed to snapshot room for feed", "room", code, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.rooms[code] {
		// Latest wins: drop the stale pending snapshot if the subscriber
		// hasn't consumed it yet.
		select {
		case ch <- items:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- items:
			default:
			}
		}
	}
}

// Serve runs one feed session over a websocket until the client disconnects
// or the request context ends. The current collection is sent immediately on
// connect, then again after every change.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, code string) error {
	conn, err := feedUpgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return nil
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Drain the connection so client closes are noticed promptly.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	id, ch := h.subscribe(code)
	defer h.unsubscribe(code, id)

	items, err := h.snapshot(ctx, code)
	if err != nil {
		return err
	}
	if err := writeSnapshot(conn, items); err != nil {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case items := <-ch:
			if err := writeSnapshot(conn, items); err != nil {
				return nil
			}
		}
	}
}

func writeSnapshot(conn *websocket.Conn, items []model.Item) error {
	_ = conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
	return conn.WriteJSON(items)
}

func (h *Hub) subscribe(code string) (uuid.UUID, chan []model.Item) {
	id := uuid.New()
	ch := make(chan []model.Item, 1)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[code] == nil {
		h.rooms[code] = make(map[uuid.UUID]chan []model.Item)
	}
	h.rooms[code][id] = ch
	return id, ch
}

func (h *Hub) unsubscribe(code string, id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs := h.rooms[code]; subs != nil {
		delete(subs, id)
		if len(subs) == 0 {
			delete(h.rooms, code)
		}
	}
}

func (h *Hub) snapshot(ctx context.Context, code string) ([]model.Item, error) {
	items, err := store.ListRoomItems(ctx, h.db, code)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}
