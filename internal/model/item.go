package model

import "sort"

// Item represents a tracked physical object and its location history.
// Timestamps are milliseconds since epoch, matching the wire format.
type Item struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Icon      string         `json:"icon"`
	Location  string         `json:"location"`
	UpdatedAt int64          `json:"updatedAt"`
	History   []HistoryEntry `json:"history"`
}

// HistoryEntry records where an item was at a point in time. The head of an
// item's history always mirrors the item's current location and updatedAt.
type HistoryEntry struct {
	Location  string `json:"location"`
	Timestamp int64  `json:"timestamp"`
}

// Clone returns a deep copy of the item so callers can hold on to it without
// sharing the history slice.
func (i Item) Clone() Item {
	c := i
	c.History = make([]HistoryEntry, len(i.History))
	copy(c.History, i.History)
	return c
}

// SortByUpdated orders items newest-update-first, ties broken by ID so the
// order is stable across clients.
func SortByUpdated(items []Item) {
	sort.SliceStable(items, func(a, b int) bool {
		if items[a].UpdatedAt == items[b].UpdatedAt {
			return items[a].ID > items[b].ID
		}
		return items[a].UpdatedAt > items[b].UpdatedAt
	})
}
