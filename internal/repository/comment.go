package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rollnconnect/backend/internal/model"
)

type CommentRepository interface {
	Create(comment *model.Comment) error
	ByClip(clipID string) ([]*model.Comment, error)
}

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *model.Comment) error {
	query := `INSERT INTO comments (id, clip_id, user_id, body, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		comment.ID,
		comment.ClipID,
		comment.UserID,
		comment.Body,
		comment.CreatedAt,
	)

	return err
}

// ByClip returns a clip's comments oldest first. A clip with no comments
// yields an empty slice, not an error.
func (r *commentRepository) ByClip(clipID string) ([]*model.Comment, error) {
	comments := []*model.Comment{}
	query := `SELECT * FROM comments WHERE clip_id = $1 ORDER BY created_at ASC`

	err := r.db.Select(&comments, query, clipID)
	if err != nil {
		return nil, err
	}

	return comments, nil
}
