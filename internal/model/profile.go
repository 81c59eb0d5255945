package model

import "encoding/json"

// Profile is a schema-free document keyed by user id. The client owns the
// shape; the server stores and returns it verbatim.
type Profile struct {
	ID        string          `db:"id"`
	Data      json.RawMessage `db:"data"`
	UpdatedAt int64           `db:"updated_at"`
}
