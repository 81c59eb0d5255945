package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/rollnconnect/backend/internal/model"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

type ProfileRepository interface {
	ByID(id string) (*model.Profile, error)
	Upsert(profile *model.Profile) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) ByID(id string) (*model.Profile, error) {
	profile := &model.Profile{}
	query := `SELECT * FROM profiles WHERE id = $1`

	err := r.db.Get(profile, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}

	return profile, err
}

func (r *profileRepository) Upsert(profile *model.Profile) error {
	query := `INSERT INTO profiles (id, data, updated_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`

	_, err := r.db.Exec(query, profile.ID, profile.Data, profile.UpdatedAt)
	return err
}
