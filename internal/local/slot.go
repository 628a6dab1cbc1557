// Package local persists the item collection in a local key-value slot:
// a single JSON-encoded array rewritten in full after every mutation.
package local

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"wheresmy/internal/model"
)

const (
	itemsKey = "items"
	roomKey  = "room"
)

// Slot is a diskv-backed store for the local collection and the remembered
// room code. It implements track.Syncer for local mode.
type Slot struct {
	d   *diskv.Diskv
	now func() time.Time
}

// Open creates a slot rooted at basePath. The directory is created lazily
// on first write.
func Open(basePath string) *Slot {
	return &Slot{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		now: time.Now,
	}
}

// Load returns the persisted collection. A missing or empty slot is seeded
// with the demo dataset on first use; malformed content degrades to an
// empty collection without error.
func (s *Slot) Load(ctx context.Context) ([]model.Item, error) {
	data, err := s.d.Read(itemsKey)
	if err != nil {
		return s.seed()
	}

	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return []model.Item{}, nil
	}
	if len(items) == 0 {
		return s.seed()
	}
	return items, nil
}

// Put upserts one item and rewrites the full collection.
func (s *Slot) Put(ctx context.Context, item model.Item) error {
	items := s.readAll()
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append([]model.Item{item}, items...)
	}
	return s.writeAll(items)
}

// Remove deletes one item by ID and rewrites the full collection. Removing
// an absent ID is a no-op.
func (s *Slot) Remove(ctx context.Context, id int64) error {
	items := s.readAll()
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.writeAll(kept)
}

// ReplaceAll overwrites the slot with the given collection.
func (s *Slot) ReplaceAll(ctx context.Context, items []model.Item) error {
	return s.writeAll(items)
}

// RoomCode returns the remembered room code, or "" when none is saved.
func (s *Slot) RoomCode() string {
	data, err := s.d.Read(roomKey)
	if err != nil {
		return ""
	}
	return model.NormalizeRoomCode(string(data))
}

// SetRoomCode remembers the last-joined room so the next session resumes
// remote mode.
func (s *Slot) SetRoomCode(code string) error {
	if err := s.d.Write(roomKey, []byte(model.NormalizeRoomCode(code))); err != nil {
		return fmt.Errorf("saving room code: %w", err)
	}
	return nil
}

// ClearRoomCode forgets the saved room. Safe to call when none is saved.
func (s *Slot) ClearRoomCode() error {
	if !s.d.Has(roomKey) {
		return nil
	}
	if err := s.d.Erase(roomKey); err != nil {
		return fmt.Errorf("clearing room code: %w", err)
	}
	return nil
}

// seed writes and returns the demo dataset.
func (s *Slot) seed() ([]model.Item, error) {
	items := model.DemoItems(s.now())
	if err := s.writeAll(items); err != nil {
		return nil, err
	}
	return items, nil
}

// readAll is the read half of a read-modify-write: unreadable or malformed
// content is treated as an empty collection, never reseeded.
func (s *Slot) readAll() []model.Item {
	data, err := s.d.Read(itemsKey)
	if err != nil {
		return nil
	}
	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

func (s *Slot) writeAll(items []model.Item) error {
	if items == nil {
		items = []model.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	if err := s.d.Write(itemsKey, data); err != nil {
		return fmt.Errorf("writing items: %w", err)
	}
	return nil
}
