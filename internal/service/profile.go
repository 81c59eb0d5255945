package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rollnconnect/backend/internal/model"
	"github.com/rollnconnect/backend/internal/repository"
)

var (
	ErrInvalidProfileDoc = errors.New("profile body must be a JSON document")
)

type ProfileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// ByID returns the stored profile document, or nil when none exists. A
// missing profile is a normal state for the client, not an error.
func (s *ProfileService) ByID(id string) (json.RawMessage, error) {
	profile, err := s.repo.ByID(id)
	if err == repository.ErrProfileNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile.Data, nil
}

// Save stores the document verbatim; the client owns the shape.
func (s *ProfileService) Save(id string, doc json.RawMessage) (json.RawMessage, error) {
	if !json.Valid(doc) {
		return nil, ErrInvalidProfileDoc
	}

	profile := &model.Profile{
		ID:        id,
		Data:      doc,
		UpdatedAt: time.Now().UnixMilli(),
	}

	err := s.repo.Upsert(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return doc, nil
}
