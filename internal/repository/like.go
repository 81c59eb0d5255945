package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rollnconnect/backend/internal/model"
)

// LikeRepository mutates like records and the clip aggregate together. Every
// operation runs in a single transaction so likes_total can never drift from
// the sum of per-user counts: the cap is enforced with a conditional upsert
// (never a read-then-write), and the aggregate bump commits with it or not at
// all. On SQLite these transactions rely on the _txlock=immediate connection
// option so concurrent writers queue on busy_timeout rather than failing the
// read-to-write lock upgrade.
type LikeRepository interface {
	Like(clipID, userID string, cap int) (*model.LikeResult, error)
	Unlike(clipID, userID string) (*model.LikeResult, error)
	Share(clipID string) (int64, error)
	UserCount(clipID, userID string) (int, error)
	SumCounts(clipID string) (int64, error)
}

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Like(clipID, userID string, cap int) (*model.LikeResult, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin like tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var likesTotal int64
	err = tx.Get(&likesTotal, `SELECT likes_total FROM clips WHERE id = $1`, clipID)
	if err == sql.ErrNoRows {
		return nil, ErrClipNotFound
	}
	if err != nil {
		return nil, err
	}

	if cap < 1 {
		return &model.LikeResult{Reason: model.LikeReasonMaxReached, LikesTotal: likesTotal}, nil
	}

	now := time.Now().UnixMilli()

	// One atomic upsert: the insert seeds a first like, the update only fires
	// while the tally is under the cap. Two concurrent first likes from the
	// same pair cannot race to insert, on either dialect.
	result, err := tx.Exec(`INSERT INTO clip_likes (clip_id, user_id, count, created_at, updated_at)
	                        VALUES ($1, $2, 1, $3, $3)
	                        ON CONFLICT (clip_id, user_id) DO UPDATE
	                        SET count = clip_likes.count + 1, updated_at = $3
	                        WHERE clip_likes.count < $4`,
		clipID, userID, now, cap)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		// Cap reached: reject without mutating anything.
		var count int
		err = tx.Get(&count, `SELECT count FROM clip_likes WHERE clip_id = $1 AND user_id = $2`, clipID, userID)
		if err != nil {
			return nil, err
		}
		return &model.LikeResult{
			Reason:     model.LikeReasonMaxReached,
			LikesTotal: likesTotal,
			UserLikes:  count,
		}, nil
	}

	_, err = tx.Exec(`UPDATE clips SET likes_total = likes_total + 1 WHERE id = $1`, clipID)
	if err != nil {
		return nil, err
	}

	var userLikes int
	err = tx.Get(&userLikes, `SELECT count FROM clip_likes WHERE clip_id = $1 AND user_id = $2`, clipID, userID)
	if err != nil {
		return nil, err
	}
	err = tx.Get(&likesTotal, `SELECT likes_total FROM clips WHERE id = $1`, clipID)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit like tx: %w", err)
	}

	return &model.LikeResult{Allowed: true, LikesTotal: likesTotal, UserLikes: userLikes}, nil
}

func (r *likeRepository) Unlike(clipID, userID string) (*model.LikeResult, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin unlike tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var likesTotal int64
	err = tx.Get(&likesTotal, `SELECT likes_total FROM clips WHERE id = $1`, clipID)
	if err == sql.ErrNoRows {
		return nil, ErrClipNotFound
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()

	result, err := tx.Exec(`UPDATE clip_likes SET count = count - 1, updated_at = $1
	                        WHERE clip_id = $2 AND user_id = $3 AND count > 0`,
		now, clipID, userID)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		// Nothing to remove: no record, or already at zero.
		return &model.LikeResult{
			Reason:     model.LikeReasonNoneToRemove,
			LikesTotal: likesTotal,
		}, nil
	}

	var userLikes int
	err = tx.Get(&userLikes, `SELECT count FROM clip_likes WHERE clip_id = $1 AND user_id = $2`, clipID, userID)
	if err != nil {
		return nil, err
	}

	// Zero tallies are deleted, not kept around.
	if userLikes == 0 {
		_, err = tx.Exec(`DELETE FROM clip_likes WHERE clip_id = $1 AND user_id = $2`, clipID, userID)
		if err != nil {
			return nil, err
		}
	}

	// Floor at zero in SQL: guards the aggregate against external corruption.
	_, err = tx.Exec(`UPDATE clips
	                  SET likes_total = CASE WHEN likes_total > 0 THEN likes_total - 1 ELSE 0 END
	                  WHERE id = $1`, clipID)
	if err != nil {
		return nil, err
	}

	err = tx.Get(&likesTotal, `SELECT likes_total FROM clips WHERE id = $1`, clipID)
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("failed to commit unlike tx: %w", err)
	}

	return &model.LikeResult{Allowed: true, LikesTotal: likesTotal, UserLikes: userLikes}, nil
}

// Share bumps the share counter. No per-user record and no reversal exists.
func (r *likeRepository) Share(clipID string) (int64, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin share tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(`UPDATE clips SET shares_total = shares_total + 1 WHERE id = $1`, clipID)
	if err != nil {
		return 0, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, ErrClipNotFound
	}

	var total int64
	err = tx.Get(&total, `SELECT shares_total FROM clips WHERE id = $1`, clipID)
	if err != nil {
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		return 0, fmt.Errorf("failed to commit share tx: %w", err)
	}

	return total, nil
}

// UserCount returns the user's current tally for a clip, zero if no record.
func (r *likeRepository) UserCount(clipID, userID string) (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT count FROM clip_likes WHERE clip_id = $1 AND user_id = $2`, clipID, userID)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return count, err
}

// SumCounts recomputes the aggregate from the per-user records. likes_total
// must always equal this sum at quiescence.
func (r *likeRepository) SumCounts(clipID string) (int64, error) {
	var sum int64
	err := r.db.Get(&sum, `SELECT COALESCE(SUM(count), 0) FROM clip_likes WHERE clip_id = $1`, clipID)
	return sum, err
}
