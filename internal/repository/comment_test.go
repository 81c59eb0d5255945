package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollnconnect/backend/internal/model"
)

func TestCommentsOldestFirst(t *testing.T) {
	database := newTestDB(t)
	clipRepo := NewClipRepository(database)
	commentRepo := NewCommentRepository(database)

	clip := newClip(nil)
	require.NoError(t, clipRepo.Create(clip))

	later := &model.Comment{ID: uuid.New().String(), ClipID: clip.ID, UserID: "user-b", Body: "second", CreatedAt: 2000}
	earlier := &model.Comment{ID: uuid.New().String(), ClipID: clip.ID, UserID: "user-a", Body: "first", CreatedAt: 1000}
	require.NoError(t, commentRepo.Create(later))
	require.NoError(t, commentRepo.Create(earlier))

	comments, err := commentRepo.ByClip(clip.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Body)
	assert.Equal(t, "second", comments[1].Body)
}

func TestCommentsEmptyClip(t *testing.T) {
	database := newTestDB(t)
	clipRepo := NewClipRepository(database)
	commentRepo := NewCommentRepository(database)

	clip := newClip(nil)
	require.NoError(t, clipRepo.Create(clip))

	comments, err := commentRepo.ByClip(clip.ID)
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}
