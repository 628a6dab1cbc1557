package remote

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"wheresmy/internal/api"
	"wheresmy/internal/db"
	"wheresmy/internal/model"
)

func setupClient(t *testing.T) *Client {
	t.Helper()
	database := db.NewTestDB(t)
	server := httptest.NewServer(api.NewRouter(database))
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func TestCreateThenJoinRoom(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	code, joined, err := client.CreateRoom(ctx, "")
	if err != nil {
		t.Fatalf("CreateRoom: %v", err)
	}
	if joined {
		t.Error("fresh room reported as joined")
	}
	if len(code) != 6 {
		t.Errorf("expected generated 6-character code, got %q", code)
	}

	// New rooms are seeded with the demo dataset.
	items, err := client.Items(ctx, code)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(items) != 6 {
		t.Errorf("expected 6 seeded items, got %d", len(items))
	}

	// Creating the same room again degenerates into a join, data untouched.
	again, joined, err := client.CreateRoom(ctx, code)
	if err != nil {
		t.Fatalf("CreateRoom existing: %v", err)
	}
	if !joined || again != code {
		t.Errorf("expected join of existing room %q, got %q joined=%v", code, again, joined)
	}
	items, _ = client.Items(ctx, code)
	if len(items) != 6 {
		t.Errorf("create-as-join overwrote data: %d items", len(items))
	}

	if _, err := client.JoinRoom(ctx, "  "+code); err != nil {
		t.Errorf("JoinRoom with padding: %v", err)
	}
}

func TestJoinValidation(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	if _, err := client.JoinRoom(ctx, "ab"); !errors.Is(err, model.ErrRoomCodeTooShort) {
		t.Errorf("expected ErrRoomCodeTooShort, got %v", err)
	}
	if _, err := client.JoinRoom(ctx, "NOSUCH"); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestRoomSyncerRoundTrip(t *testing.T) {
	client := setupClient(t)
	ctx := context.Background()

	syncer := &RoomSyncer{Client: client, Code: "AB1C2D"}
	item := model.Item{
		ID: 1, Name: "Keys", Icon: "🔑", Location: "Drawer", UpdatedAt: 100,
		History: []model.HistoryEntry{{Location: "Drawer", Timestamp: 100}},
	}

	if err := syncer.Put(ctx, item); err != nil {
		t.Fatalf("Put: %v", err)
	}
	items, err := syncer.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Keys" || len(items[0].History) != 1 {
		t.Fatalf("round trip lost data: %+v", items)
	}

	if err := syncer.Remove(ctx, 1); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := syncer.Remove(ctx, 1); err != nil {
		t.Fatalf("Remove twice: %v", err)
	}
	items, _ = syncer.Load(ctx)
	if len(items) != 0 {
		t.Errorf("expected empty room, got %d items", len(items))
	}
}

func TestSubscribeObservesOtherClientsWrites(t *testing.T) {
	database := db.NewTestDB(t)
	server := httptest.NewServer(api.NewRouter(database))
	t.Cleanup(server.Close)

	clientA := NewClient(server.URL)
	clientB := NewClient(server.URL)
	ctx := context.Background()

	updates := make(chan []model.Item, 8)
	stop := clientB.Subscribe(ctx, "AB1C2D", func(items []model.Item) {
		updates <- items
	}, nil)
	defer stop()

	// Initial snapshot of the empty room.
	select {
	case items := <-updates:
		if len(items) != 0 {
			t.Fatalf("expected empty initial snapshot, got %d items", len(items))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for initial snapshot")
	}

	item := model.Item{
		ID: 1, Name: "Keys", Icon: "🔑", Location: "Drawer", UpdatedAt: 100,
		History: []model.HistoryEntry{{Location: "Drawer", Timestamp: 100}},
	}
	if err := clientA.Put(ctx, "AB1C2D", item); err != nil {
		t.Fatalf("Put from client A: %v", err)
	}

	select {
	case items := <-updates:
		if len(items) != 1 || items[0].ID != 1 || items[0].Location != "Drawer" {
			t.Fatalf("snapshot missing client A's item: %+v", items)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for client A's write")
	}

	// stop is idempotent.
	stop()
	stop()
}

func TestSubscribeSurfacesTransportErrors(t *testing.T) {
	// Nothing is listening here, so the dial fails and the feed retries.
	client := NewClient("http://127.0.0.1:1")

	errs := make(chan error, 1)
	stop := client.Subscribe(context.Background(), "AB1C2D", nil, func(err error) {
		select {
		case errs <- err:
		default:
		}
	})
	defer stop()

	select {
	case err := <-errs:
		if err == nil {
			t.Fatal("expected a transport error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for transport error")
	}
}
