package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rollnconnect/backend/internal/model"
	"github.com/rollnconnect/backend/internal/repository"
)

var (
	ErrMissingCommentUser = errors.New("comment user_id is required")
	ErrMissingCommentBody = errors.New("comment body is required")
)

type CommentService struct {
	commentRepo repository.CommentRepository
	clipRepo    repository.ClipRepository
}

func NewCommentService(commentRepo repository.CommentRepository, clipRepo repository.ClipRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		clipRepo:    clipRepo,
	}
}

// Comments lists a clip's thread oldest first.
func (s *CommentService) Comments(clipID string) ([]*model.Comment, error) {
	return s.commentRepo.ByClip(clipID)
}

func (s *CommentService) Create(clipID, userID, body string) (*model.Comment, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingCommentUser
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrMissingCommentBody
	}

	// Verify the clip exists before inserting
	_, err := s.clipRepo.ByID(clipID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:        uuid.New().String(),
		ClipID:    clipID,
		UserID:    userID,
		Body:      body,
		CreatedAt: time.Now().UnixMilli(),
	}

	err = s.commentRepo.Create(comment)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}
