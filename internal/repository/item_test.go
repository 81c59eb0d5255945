package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollnconnect/backend/internal/model"
)

func TestItemCreateRoundTrip(t *testing.T) {
	database := newTestDB(t)
	repo := NewItemRepository(database)

	price := 120.0
	item := &model.Item{ID: uuid.New().String(), Title: "110mm wheels", Price: &price, CreatedAt: 1000}
	require.NoError(t, repo.Create(item))

	items, err := repo.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, 120.0, *items[0].Price)
}

func TestItemsNewestFirst(t *testing.T) {
	database := newTestDB(t)
	repo := NewItemRepository(database)

	require.NoError(t, repo.Create(&model.Item{ID: uuid.New().String(), Title: "old frame", CreatedAt: 1000}))
	require.NoError(t, repo.Create(&model.Item{ID: uuid.New().String(), Title: "new boots", CreatedAt: 2000}))

	items, err := repo.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "new boots", items[0].Title)
	assert.Equal(t, "old frame", items[1].Title)
}
