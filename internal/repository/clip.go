package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/rollnconnect/backend/internal/model"
)

var (
	ErrClipNotFound = errors.New("clip not found")
)

type ClipRepository interface {
	Create(clip *model.Clip) error
	ByID(id string) (*model.Clip, error)
	Clips() ([]*model.Clip, error)
	UpdatePartial(id string, title, description, caption, extraJSON *string) (*model.Clip, error)
	Delete(id string) error
}

type clipRepository struct {
	db *sqlx.DB
}

func NewClipRepository(db *sqlx.DB) ClipRepository {
	return &clipRepository{db: db}
}

func (r *clipRepository) Create(clip *model.Clip) error {
	query := `INSERT INTO clips (id, type, title, description, caption, media_key, user_id, extra_json, likes_total, shares_total, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		clip.ID,
		clip.Type,
		clip.Title,
		clip.Description,
		clip.Caption,
		clip.MediaKey,
		clip.UserID,
		clip.ExtraJSON,
		clip.LikesTotal,
		clip.SharesTotal,
		clip.CreatedAt,
	)

	return err
}

func (r *clipRepository) ByID(id string) (*model.Clip, error) {
	clip := &model.Clip{}
	query := `SELECT * FROM clips WHERE id = $1`

	err := r.db.Get(clip, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrClipNotFound
	}

	return clip, err
}

// Clips returns every clip, newest first. Unpaginated: the feed is small by
// design and the client renders it whole.
func (r *clipRepository) Clips() ([]*model.Clip, error) {
	var clips []*model.Clip
	query := `SELECT * FROM clips ORDER BY created_at DESC`

	err := r.db.Select(&clips, query)
	if err != nil {
		return nil, err
	}

	return clips, nil
}

// UpdatePartial overwrites only the provided fields. A nil pointer leaves the
// stored value untouched (COALESCE), so "absent" and explicit null behave the
// same. The updated row is re-read; a missing id surfaces as ErrClipNotFound.
func (r *clipRepository) UpdatePartial(id string, title, description, caption, extraJSON *string) (*model.Clip, error) {
	query := `UPDATE clips
	          SET title       = COALESCE($1, title),
	              description = COALESCE($2, description),
	              caption     = COALESCE($3, caption),
	              extra_json  = COALESCE($4, extra_json)
	          WHERE id = $5`

	_, err := r.db.Exec(query, title, description, caption, extraJSON, id)
	if err != nil {
		return nil, err
	}

	return r.ByID(id)
}

func (r *clipRepository) Delete(id string) error {
	// Comments and like rows go with the clip via ON DELETE CASCADE.
	query := `DELETE FROM clips WHERE id = $1`
	result, err := r.db.Exec(query, id)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrClipNotFound
	}

	return nil
}
