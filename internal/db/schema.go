package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. A room is nothing more than the set of
// rows sharing a room_code; an empty set means the room does not exist.
const schema = `
CREATE TABLE IF NOT EXISTS room_items (
    room_code  TEXT NOT NULL,
    item_id    INTEGER NOT NULL,
    name       TEXT NOT NULL,
    icon       TEXT NOT NULL DEFAULT '',
    location   TEXT NOT NULL,
    updated_at INTEGER NOT NULL,
    history    TEXT NOT NULL DEFAULT '[]',
    PRIMARY KEY (room_code, item_id)
);

CREATE INDEX IF NOT EXISTS idx_room_items_updated
    ON room_items(room_code, updated_at DESC);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
