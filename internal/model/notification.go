package model

import "encoding/json"

// Notification is an opaque per-user note; the payload shape is owned by the
// client that pushed it.
type Notification struct {
	ID        string          `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"user_id"`
	Data      json.RawMessage `db:"data" json:"data"`
	CreatedAt int64           `db:"created_at" json:"created_at"`
}
