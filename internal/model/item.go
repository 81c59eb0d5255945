package model

// Item is a marketplace listing. No checkout flow; listings only.
type Item struct {
	ID          string   `db:"id" json:"id"`
	Title       string   `db:"title" json:"title"`
	Description *string  `db:"description" json:"description"`
	Price       *float64 `db:"price" json:"price"`
	CreatedAt   int64    `db:"created_at" json:"created_at"`
}
