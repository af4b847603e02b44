package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// ReadSlot returns the contents of a named slot. ok is false when the
// slot has never been written.
func (db *DB) ReadSlot(name string) (data []byte, ok bool, err error) {
	var text string
	err = db.QueryRow("SELECT data FROM slots WHERE name = ?", name).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read slot %s: %w", name, err)
	}
	return []byte(text), true, nil
}

// WriteSlot replaces the full contents of a named slot. Each write is a
// single-row upsert, so a slot is never left half written.
func (db *DB) WriteSlot(name string, data []byte) error {
	_, err := db.Exec(`
		INSERT INTO slots (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, name, string(data))
	if err != nil {
		return fmt.Errorf("write slot %s: %w", name, err)
	}
	return nil
}
