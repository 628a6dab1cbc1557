package track

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"wheresmy/internal/model"
)

// Syncer keeps one collection (a local slot or a remote room) as the source
// of truth for the store. Every mutation is pushed through it before the
// operation completes.
type Syncer interface {
	// Load returns the current persisted collection.
	Load(ctx context.Context) ([]model.Item, error)
	// Put upserts one item keyed by its ID.
	Put(ctx context.Context, item model.Item) error
	// Remove deletes one item by ID. Removing an absent item is not an error.
	Remove(ctx context.Context, id int64) error
	// ReplaceAll overwrites the entire collection.
	ReplaceAll(ctx context.Context, items []model.Item) error
}

// Store owns the in-memory item collection and enforces its mutation
// invariants: history is seeded on create, append-only at the head, and the
// head always mirrors the item's current location and updatedAt.
//
// A mutex guards the collection because remote snapshots can arrive
// asynchronously relative to local writes. Whichever state lands last wins.
type Store struct {
	mu     sync.Mutex
	items  []model.Item
	syncer Syncer
	now    func() time.Time
}

// New creates a store backed by the given syncer. Call Load before use.
func New(syncer Syncer) *Store {
	return &Store{syncer: syncer, now: time.Now}
}

// Load populates the store from the syncer's persisted collection.
func (s *Store) Load(ctx context.Context) error {
	items, err := s.syncer.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading items: %w", err)
	}
	s.Replace(items)
	return nil
}

// Add creates a new item with a freshly assigned ID and a single seeded
// history entry, inserting it at the front of the collection. A blank name
// or location makes Add a silent no-op. When icon is empty it is derived
// from the name.
func (s *Store) Add(ctx context.Context, name, location, icon string) (*model.Item, error) {
	name = strings.TrimSpace(name)
	location = strings.TrimSpace(location)
	if name == "" || location == "" {
		return nil, nil
	}
	if icon == "" {
		icon = model.IconFor(name)
	}

	s.mu.Lock()
	now := s.now().UnixMilli()
	item := model.Item{
		ID:        s.nextIDLocked(now),
		Name:      name,
		Icon:      icon,
		Location:  location,
		UpdatedAt: now,
		History:   []model.HistoryEntry{{Location: location, Timestamp: now}},
	}
	s.items = append([]model.Item{item}, s.items...)
	out := item.Clone()
	s.mu.Unlock()

	if err := s.syncer.Put(ctx, item); err != nil {
		return &out, fmt.Errorf("publishing item: %w", err)
	}
	return &out, nil
}

// Move records a new location for the item: a fresh entry is prepended to
// its history and location/updatedAt are set to match. This is the only
// field-mutation path after creation. A blank location or unknown ID makes
// Move a silent no-op.
func (s *Store) Move(ctx context.Context, id int64, newLocation string) (*model.Item, error) {
	newLocation = strings.TrimSpace(newLocation)
	if newLocation == "" {
		return nil, nil
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, nil
	}
	now := s.now().UnixMilli()
	item := &s.items[idx]
	item.History = append([]model.HistoryEntry{{Location: newLocation, Timestamp: now}}, item.History...)
	item.Location = newLocation
	item.UpdatedAt = now
	moved := item.Clone()
	s.mu.Unlock()

	if err := s.syncer.Put(ctx, moved); err != nil {
		out := moved.Clone()
		return &out, fmt.Errorf("publishing item: %w", err)
	}
	out := moved.Clone()
	return &out, nil
}

// Remove deletes the item with the given ID from the collection. Removing
// an unknown ID is a no-op, and the delete is still pushed through the
// syncer so both sides converge.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	if idx := s.indexLocked(id); idx >= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
	s.mu.Unlock()

	if err := s.syncer.Remove(ctx, id); err != nil {
		return fmt.Errorf("publishing removal: %w", err)
	}
	return nil
}

// List returns items whose name or location contains the filter substring,
// case-insensitively. An empty filter returns everything. Items come back
// in collection order; display ordering is the caller's concern.
func (s *Store) List(filter string) []model.Item {
	filter = strings.ToLower(filter)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Item, 0, len(s.items))
	for _, item := range s.items {
		if filter != "" &&
			!strings.Contains(strings.ToLower(item.Name), filter) &&
			!strings.Contains(strings.ToLower(item.Location), filter) {
			continue
		}
		out = append(out, item.Clone())
	}
	return out
}

// Get returns the item with the given ID, if present.
func (s *Store) Get(id int64) (model.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return s.items[idx].Clone(), true
	}
	return model.Item{}, false
}

// Replace swaps in a full authoritative collection, typically a snapshot
// delivered by a live subscription.
func (s *Store) Replace(items []model.Item) {
	copied := make([]model.Item, len(items))
	for i, item := range items {
		copied[i] = item.Clone()
	}
	s.mu.Lock()
	s.items = copied
	s.mu.Unlock()
}

// nextIDLocked derives an ID from the current time in milliseconds, bumped
// past every existing ID so uniqueness holds even for same-millisecond adds.
func (s *Store) nextIDLocked(nowMillis int64) int64 {
	id := nowMillis
	for _, item := range s.items {
		if item.ID >= id {
			id = item.ID + 1
		}
	}
	return id
}

func (s *Store) indexLocked(id int64) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
