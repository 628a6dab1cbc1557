package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"wheresmy/internal/model"
)

// RoomExists reports whether the room's collection is non-empty.
func RoomExists(ctx context.Context, db *sql.DB, code string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM room_items WHERE room_code = ?`, code,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking room: %w", err)
	}
	return n > 0, nil
}

// ListRoomItems returns a room's items, newest-update-first.
func ListRoomItems(ctx context.Context, db *sql.DB, code string) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT item_id, name, icon, location, updated_at, history
		 FROM room_items WHERE room_code = ? ORDER BY updated_at DESC, item_id DESC`, code,
	)
	if err != nil {
		return nil, fmt.Errorf("listing room items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var history string
		if err := rows.Scan(&item.ID, &item.Name, &item.Icon, &item.Location, &item.UpdatedAt, &history); err != nil {
			return nil, fmt.Errorf("scanning room item: %w", err)
		}
		if err := json.Unmarshal([]byte(history), &item.History); err != nil {
			return nil, fmt.Errorf("decoding history for item %d: %w", item.ID, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// PutRoomItem upserts one item in a room, keyed by its ID.
func PutRoomItem(ctx context.Context, db *sql.DB, code string, item model.Item) error {
	history, err := json.Marshal(item.History)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO room_items (room_code, item_id, name, icon, location, updated_at, history)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(room_code, item_id) DO UPDATE SET
		     name = excluded.name,
		     icon = excluded.icon,
		     location = excluded.location,
		     updated_at = excluded.updated_at,
		     history = excluded.history`,
		code, item.ID, item.Name, item.Icon, item.Location, item.UpdatedAt, string(history),
	)
	if err != nil {
		return fmt.Errorf("putting room item: %w", err)
	}
	return nil
}

// DeleteRoomItem deletes one item from a room. Deleting an absent item is
// not an error.
func DeleteRoomItem(ctx context.Context, db *sql.DB, code string, itemID int64) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM room_items WHERE room_code = ? AND item_id = ?`, code, itemID,
	)
	if err != nil {
		return fmt.Errorf("deleting room item: %w", err)
	}
	return nil
}

// ReplaceRoomItems overwrites a room's entire collection in one transaction.
func ReplaceRoomItems(ctx context.Context, db *sql.DB, code string, items []model.Item) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM room_items WHERE room_code = ?`, code,
	); err != nil {
		return fmt.Errorf("clearing room: %w", err)
	}

	for _, item := range items {
		history, err := json.Marshal(item.History)
		if err != nil {
			return fmt.Errorf("encoding history: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO room_items (room_code, item_id, name, icon, location, updated_at, history)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			code, item.ID, item.Name, item.Icon, item.Location, item.UpdatedAt, string(history),
		); err != nil {
			return fmt.Errorf("inserting room item %d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing room replace: %w", err)
	}
	return nil
}
