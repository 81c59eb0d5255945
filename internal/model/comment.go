package model

type Comment struct {
	ID        string `db:"id" json:"id"`
	ClipID    string `db:"clip_id" json:"clip_id"`
	UserID    string `db:"user_id" json:"user_id"`
	Body      string `db:"body" json:"body"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
}
