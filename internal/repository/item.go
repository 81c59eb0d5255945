package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rollnconnect/backend/internal/model"
)

type ItemRepository interface {
	Create(item *model.Item) error
	Items() ([]*model.Item, error)
}

type itemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(item *model.Item) error {
	query := `INSERT INTO items (id, title, description, price, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		item.ID,
		item.Title,
		item.Description,
		item.Price,
		item.CreatedAt,
	)

	return err
}

// Items returns the newest 100 listings, matching the feed the client renders.
func (r *itemRepository) Items() ([]*model.Item, error) {
	items := []*model.Item{}
	query := `SELECT * FROM items ORDER BY created_at DESC LIMIT 100`

	err := r.db.Select(&items, query)
	if err != nil {
		return nil, err
	}

	return items, nil
}
