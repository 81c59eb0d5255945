package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollnconnect/backend/internal/model"
)

func TestProfileUpsert(t *testing.T) {
	database := newTestDB(t)
	repo := NewProfileRepository(database)

	_, err := repo.ByID("skater-1")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	require.NoError(t, repo.Upsert(&model.Profile{
		ID:        "skater-1",
		Data:      json.RawMessage(`{"name":"Ana","discipline":"aggressive"}`),
		UpdatedAt: 1000,
	}))

	got, err := repo.ByID("skater-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ana","discipline":"aggressive"}`, string(got.Data))

	// Second upsert overwrites the document.
	require.NoError(t, repo.Upsert(&model.Profile{
		ID:        "skater-1",
		Data:      json.RawMessage(`{"name":"Ana","discipline":"slalom"}`),
		UpdatedAt: 2000,
	}))

	got, err = repo.ByID("skater-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ana","discipline":"slalom"}`, string(got.Data))
	assert.Equal(t, int64(2000), got.UpdatedAt)
}
