package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollnconnect/backend/internal/model"
)

// requireConsistent asserts the core invariant: the aggregate equals the sum
// of per-user counts at quiescence.
func requireConsistent(t *testing.T, clipRepo ClipRepository, likeRepo LikeRepository, clipID string) {
	t.Helper()

	clip, err := clipRepo.ByID(clipID)
	require.NoError(t, err)
	sum, err := likeRepo.SumCounts(clipID)
	require.NoError(t, err)
	require.Equal(t, sum, clip.LikesTotal, "likes_total must equal the sum of per-user counts")
}

func TestLikeUnlikeScenario(t *testing.T) {
	database := newTestDB(t)
	clipRepo := NewClipRepository(database)
	likeRepo := NewLikeRepository(database)

	clip := newClip(nil)
	require.NoError(t, clipRepo.Create(clip))

	// Three likes from the same user land.
	for i := 1; i <= 3; i++ {
		result, err := likeRepo.Like(clip.ID, "user-a", 3)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(i), result.LikesTotal)
		assert.Equal(t, i, result.UserLikes)
		requireConsistent(t, clipRepo, likeRepo, clip.ID)
	}

	// The fourth is rejected without mutating anything.
	result, err := likeRepo.Like(clip.ID, "user-a", 3)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, model.LikeReasonMaxReached, result.Reason)
	assert.Equal(t, int64(3), result.LikesTotal)
	assert.Equal(t, 3, result.UserLikes)
	requireConsistent(t, clipRepo, likeRepo, clip.ID)

	// Unlike back down to zero.
	for i := 2; i >= 0; i-- {
		result, err = likeRepo.Unlike(clip.ID, "user-a")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(i), result.LikesTotal)
		assert.Equal(t, i, result.UserLikes)
		requireConsistent(t, clipRepo, likeRepo, clip.ID)
	}

	// The zero row is gone, not kept.
	var rows int
	require.NoError(t, database.Get(&rows, `SELECT COUNT(*) FROM clip_likes WHERE clip_id = $1 AND user_id = $2`, clip.ID, "user-a"))
	assert.Zero(t, rows)

	// Further unlikes are rejected.
	result, err = likeRepo.Unlike(clip.ID, "user-a")
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, model.LikeReasonNoneToRemove, result.Reason)
	assert.Equal(t, int64(0), result.LikesTotal)
}

func TestLikeMultipleUsers(t *testing.T) {
	database := newTestDB(t)
	clipRepo := NewClipRepository(database)
	likeRepo := NewLikeRepository(database)

	clip := newClip(nil)
	require.NoError(t, clipRepo.Create(clip))

	_, err := likeRepo.Like(clip.ID, "user-a", 3)
	require.NoError(t, err)
	_, err = likeRepo.Like(clip.ID, "user-a", 3)
	require.NoError(t, err)
	result, err := likeRepo.Like(clip.ID, "user-b", 3)
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.LikesTotal)
	assert.Equal(t, 1, result.UserLikes)
	requireConsistent(t, clipRepo, likeRepo, clip.ID)
}

func TestUnlikeWithoutPriorLike(t *testing.T) {
	database := newTestDB(t)
	clipRepo := NewClipRepository(database)
	likeRepo := NewLikeRepository(database)

	clip := newClip(nil)
	require.NoError(t, clipRepo.Create(clip))

	result, err := likeRepo.Unlike(clip.ID, "user-a")
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, model.LikeReasonNoneToRemove, result.Reason)
	assert.Equal(t, int64(0), result.LikesTotal)
	requireConsistent(t, clipRepo, likeRepo, clip.ID)
}

func TestLikeClipNotFound(t *testing.T) {
	database := newTestDB(t)
	likeRepo := NewLikeRepository(database)

	_, err := likeRepo.Like("missing", "user-a", 3)
	assert.ErrorIs(t, err, ErrClipNotFound)

	_, err = likeRepo.Unlike("missing", "user-a")
	assert.ErrorIs(t, err, ErrClipNotFound)

	_, err = likeRepo.Share("missing")
	assert.ErrorIs(t, err, ErrClipNotFound)
}

func TestShare(t *testing.T) {
	database := newTestDB(t)
	clipRepo := NewClipRepository(database)
	likeRepo := NewLikeRepository(database)

	clip := newClip(nil)
	require.NoError(t, clipRepo.Create(clip))

	total, err := likeRepo.Share(clip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	total, err = likeRepo.Share(clip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestConcurrentLikesStayConsistent(t *testing.T) {
	database := newTestDB(t)
	clipRepo := NewClipRepository(database)
	likeRepo := NewLikeRepository(database)

	clip := newClip(nil)
	require.NoError(t, clipRepo.Create(clip))

	// Ten distinct users like concurrently: every like lands exactly once.
	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			_, err := likeRepo.Like(clip.ID, user, 3)
			errs <- err
		}("user-" + string(rune('a'+i)))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := clipRepo.ByID(clip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.LikesTotal)
	requireConsistent(t, clipRepo, likeRepo, clip.ID)
}

func TestConcurrentLikesSameUserRespectCap(t *testing.T) {
	database := newTestDB(t)
	clipRepo := NewClipRepository(database)
	likeRepo := NewLikeRepository(database)

	clip := newClip(nil)
	require.NoError(t, clipRepo.Create(clip))

	// Ten concurrent likes from one user: exactly three may land.
	var wg sync.WaitGroup
	allowed := make(chan bool, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := likeRepo.Like(clip.ID, "user-a", 3)
			if err != nil {
				allowed <- false
				return
			}
			allowed <- result.Allowed
		}()
	}
	wg.Wait()
	close(allowed)

	landed := 0
	for ok := range allowed {
		if ok {
			landed++
		}
	}
	assert.Equal(t, 3, landed)

	count, err := likeRepo.UserCount(clip.ID, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	got, err := clipRepo.ByID(clip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.LikesTotal)
	requireConsistent(t, clipRepo, likeRepo, clip.ID)
}

func TestConcurrentLikesAcrossConnections(t *testing.T) {
	database := newPooledTestDB(t)
	clipRepo := NewClipRepository(database)
	likeRepo := NewLikeRepository(database)

	clip := newClip(nil)
	require.NoError(t, clipRepo.Create(clip))

	// Twenty distinct users like through separate pool connections. Every
	// single one must land: contention queues on the busy timeout, it does
	// not surface as an error.
	const likers = 20
	var wg sync.WaitGroup
	errs := make(chan error, likers)
	for i := 0; i < likers; i++ {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			result, err := likeRepo.Like(clip.ID, user, 3)
			if err == nil && !result.Allowed {
				err = fmt.Errorf("like rejected: %s", result.Reason)
			}
			errs <- err
		}(fmt.Sprintf("user-%02d", i))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := clipRepo.ByID(clip.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(likers), got.LikesTotal)
	requireConsistent(t, clipRepo, likeRepo, clip.ID)
}

func TestConcurrentFirstLikesSamePairAcrossConnections(t *testing.T) {
	database := newPooledTestDB(t)
	clipRepo := NewClipRepository(database)
	likeRepo := NewLikeRepository(database)

	clip := newClip(nil)
	require.NoError(t, clipRepo.Create(clip))

	// Ten concurrent likes from one user racing to create the first record.
	// Exactly three land, the rest are cap rejections, and none error.
	type outcome struct {
		result *model.LikeResult
		err    error
	}
	var wg sync.WaitGroup
	outcomes := make(chan outcome, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := likeRepo.Like(clip.ID, "user-a", 3)
			outcomes <- outcome{result: result, err: err}
		}()
	}
	wg.Wait()
	close(outcomes)

	landed := 0
	for o := range outcomes {
		require.NoError(t, o.err)
		if o.result.Allowed {
			landed++
		} else {
			assert.Equal(t, model.LikeReasonMaxReached, o.result.Reason)
		}
	}
	assert.Equal(t, 3, landed)

	count, err := likeRepo.UserCount(clip.ID, "user-a")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	requireConsistent(t, clipRepo, likeRepo, clip.ID)
}
