package store

import (
	"context"
	"testing"
	"time"

	"wheresmy/internal/db"
	"wheresmy/internal/model"
)

func testItem(id int64, name, location string, updatedAt int64) model.Item {
	return model.Item{
		ID: id, Name: name, Icon: model.IconFor(name), Location: location, UpdatedAt: updatedAt,
		History: []model.HistoryEntry{{Location: location, Timestamp: updatedAt}},
	}
}

func TestRoomExists(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	exists, err := RoomExists(ctx, database, "AB1C2D")
	if err != nil {
		t.Fatalf("RoomExists: %v", err)
	}
	if exists {
		t.Error("empty room should not exist")
	}

	if err := PutRoomItem(ctx, database, "AB1C2D", testItem(1, "Keys", "Drawer", 100)); err != nil {
		t.Fatalf("PutRoomItem: %v", err)
	}

	exists, _ = RoomExists(ctx, database, "AB1C2D")
	if !exists {
		t.Error("room with one item should exist")
	}

	// Other rooms are unaffected.
	exists, _ = RoomExists(ctx, database, "XY9Z8W")
	if exists {
		t.Error("unrelated room should not exist")
	}
}

func TestPutRoomItemUpserts(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item := testItem(1, "Keys", "Drawer", 100)
	if err := PutRoomItem(ctx, database, "AB1C2D", item); err != nil {
		t.Fatalf("PutRoomItem: %v", err)
	}

	item.Location = "Pocket"
	item.UpdatedAt = 200
	item.History = append([]model.HistoryEntry{{Location: "Pocket", Timestamp: 200}}, item.History...)
	if err := PutRoomItem(ctx, database, "AB1C2D", item); err != nil {
		t.Fatalf("PutRoomItem upsert: %v", err)
	}

	items, err := ListRoomItems(ctx, database, "AB1C2D")
	if err != nil {
		t.Fatalf("ListRoomItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item after upsert, got %d", len(items))
	}
	got := items[0]
	if got.Location != "Pocket" || got.UpdatedAt != 200 {
		t.Errorf("upsert lost fields: %+v", got)
	}
	if len(got.History) != 2 || got.History[0].Location != "Pocket" || got.History[1].Location != "Drawer" {
		t.Errorf("history did not round-trip: %+v", got.History)
	}
}

func TestListRoomItemsOrderedByUpdated(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	PutRoomItem(ctx, database, "AB1C2D", testItem(1, "Keys", "Drawer", 100))
	PutRoomItem(ctx, database, "AB1C2D", testItem(2, "Wallet", "Purse", 300))
	PutRoomItem(ctx, database, "AB1C2D", testItem(3, "Glasses", "Desk", 200))

	items, err := ListRoomItems(ctx, database, "AB1C2D")
	if err != nil {
		t.Fatalf("ListRoomItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].ID != 2 || items[1].ID != 3 || items[2].ID != 1 {
		t.Errorf("unexpected order: %d, %d, %d", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestDeleteRoomItemIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	PutRoomItem(ctx, database, "AB1C2D", testItem(1, "Keys", "Drawer", 100))

	if err := DeleteRoomItem(ctx, database, "AB1C2D", 1); err != nil {
		t.Fatalf("DeleteRoomItem: %v", err)
	}
	if err := DeleteRoomItem(ctx, database, "AB1C2D", 1); err != nil {
		t.Fatalf("DeleteRoomItem twice: %v", err)
	}

	items, _ := ListRoomItems(ctx, database, "AB1C2D")
	if len(items) != 0 {
		t.Errorf("expected empty room after delete, got %d items", len(items))
	}
}

func TestReplaceRoomItems(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	PutRoomItem(ctx, database, "AB1C2D", testItem(99, "Old", "Gone", 1))

	demo := model.DemoItems(time.UnixMilli(1700000000000))
	if err := ReplaceRoomItems(ctx, database, "AB1C2D", demo); err != nil {
		t.Fatalf("ReplaceRoomItems: %v", err)
	}

	items, err := ListRoomItems(ctx, database, "AB1C2D")
	if err != nil {
		t.Fatalf("ListRoomItems: %v", err)
	}
	if len(items) != len(demo) {
		t.Fatalf("expected %d items, got %d", len(demo), len(items))
	}
	for _, item := range items {
		if item.ID == 99 {
			t.Error("replace kept a stale item")
		}
		if len(item.History) == 0 {
			t.Errorf("item %q lost its history", item.Name)
		}
	}
}
