package repository

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollnconnect/backend/internal/model"
)

func TestNotificationsNewestFirst(t *testing.T) {
	database := newTestDB(t)
	repo := NewNotificationRepository(database)

	require.NoError(t, repo.Create(&model.Notification{
		ID: uuid.New().String(), UserID: "skater-1",
		Data: json.RawMessage(`{"title":"older"}`), CreatedAt: 1000,
	}))
	require.NoError(t, repo.Create(&model.Notification{
		ID: uuid.New().String(), UserID: "skater-1",
		Data: json.RawMessage(`{"title":"newer"}`), CreatedAt: 2000,
	}))
	require.NoError(t, repo.Create(&model.Notification{
		ID: uuid.New().String(), UserID: "skater-2",
		Data: json.RawMessage(`{"title":"other user"}`), CreatedAt: 3000,
	}))

	notifications, err := repo.ByUser("skater-1")
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.JSONEq(t, `{"title":"newer"}`, string(notifications[0].Data))
	assert.JSONEq(t, `{"title":"older"}`, string(notifications[1].Data))
}

func TestNotificationsEmptyUser(t *testing.T) {
	database := newTestDB(t)
	repo := NewNotificationRepository(database)

	notifications, err := repo.ByUser("nobody")
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
