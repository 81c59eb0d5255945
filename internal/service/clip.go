package service

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rollnconnect/backend/internal/model"
	"github.com/rollnconnect/backend/internal/repository"
	"github.com/rollnconnect/backend/internal/storage"
	"github.com/rollnconnect/backend/internal/validation"
)

type ClipService struct {
	clipRepo repository.ClipRepository
	likeRepo repository.LikeRepository
	storage  storage.Storage
	likeCap  int
}

func NewClipService(clipRepo repository.ClipRepository, likeRepo repository.LikeRepository, storage storage.Storage, likeCap int) *ClipService {
	return &ClipService{
		clipRepo: clipRepo,
		likeRepo: likeRepo,
		storage:  storage,
		likeCap:  likeCap,
	}
}

// CreateClipInput carries the optional multipart fields; nil means the client
// did not send the field.
type CreateClipInput struct {
	Type        string
	Title       *string
	Description *string
	Caption     *string
	UserID      *string
	ExtraJSON   *string
}

// Create uploads the payload to the media store, then inserts the clip row.
// If the insert fails the blob is left behind; an out-of-band sweep reclaims
// unreferenced keys, so we log the key rather than roll back.
func (s *ClipService) Create(in CreateClipInput, file multipart.File, header *multipart.FileHeader) (*model.ClipView, error) {
	clipType := in.Type
	if clipType == "" {
		clipType = model.ClipTypePhoto
	}

	key := newMediaKey(header.Filename, clipType)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		detected, err := validation.SniffContentType(file)
		if err != nil {
			return nil, fmt.Errorf("failed to detect content type: %w", err)
		}
		contentType = detected
	}

	err := s.storage.Save(key, file, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store media: %w", err)
	}

	clip := &model.Clip{
		ID:          uuid.New().String(),
		Type:        clipType,
		Title:       in.Title,
		Description: in.Description,
		Caption:     in.Caption,
		MediaKey:    key,
		UserID:      in.UserID,
		ExtraJSON:   in.ExtraJSON,
		LikesTotal:  0,
		SharesTotal: 0,
		CreatedAt:   time.Now().UnixMilli(),
	}

	err = s.clipRepo.Create(clip)
	if err != nil {
		slog.Warn("clip insert failed after blob write, blob orphaned", "media_key", key, "error", err)
		return nil, fmt.Errorf("failed to create clip record: %w", err)
	}

	return clip.View(), nil
}

// newMediaKey builds a collision-resistant blob key: millisecond timestamp
// plus random UUID plus the derived extension. Keys are never reused, so
// pre-existence is not checked.
func newMediaKey(filename, clipType string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = defaultExtension(clipType)
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
}

func defaultExtension(clipType string) string {
	if clipType == model.ClipTypeAudio {
		return ".webm"
	}
	return ".png"
}

// Clips returns all clips newest first, annotated with their media URLs.
func (s *ClipService) Clips() ([]*model.ClipView, error) {
	clips, err := s.clipRepo.Clips()
	if err != nil {
		return nil, err
	}

	views := make([]*model.ClipView, 0, len(clips))
	for _, clip := range clips {
		views = append(views, clip.View())
	}

	return views, nil
}

func (s *ClipService) ByID(id string) (*model.ClipView, error) {
	clip, err := s.clipRepo.ByID(id)
	if err != nil {
		return nil, err
	}
	return clip.View(), nil
}

// Update overwrites only the provided fields; nil leaves stored values alone.
func (s *ClipService) Update(id string, title, description, caption, extraJSON *string) (*model.ClipView, error) {
	clip, err := s.clipRepo.UpdatePartial(id, title, description, caption, extraJSON)
	if err != nil {
		return nil, err
	}
	return clip.View(), nil
}

// Delete removes the blob before the row so a failed blob delete can be
// retried against a still-discoverable media key. A dangling row after a
// partial failure serves media reads as not-found, never as a crash.
func (s *ClipService) Delete(id string) error {
	clip, err := s.clipRepo.ByID(id)
	if err != nil {
		return err
	}

	err = s.storage.Delete(clip.MediaKey)
	if err != nil {
		return fmt.Errorf("failed to delete media blob: %w", err)
	}

	err = s.clipRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete clip record: %w", err)
	}

	return nil
}

func (s *ClipService) Like(clipID, userID string) (*model.LikeResult, error) {
	return s.likeRepo.Like(clipID, userID, s.likeCap)
}

func (s *ClipService) Unlike(clipID, userID string) (*model.LikeResult, error) {
	return s.likeRepo.Unlike(clipID, userID)
}

func (s *ClipService) Share(clipID string) (int64, error) {
	return s.likeRepo.Share(clipID)
}

// OpenMedia streams a stored blob and its content type. A key referenced by a
// dangling clip row maps to storage.ErrBlobNotFound.
func (s *ClipService) OpenMedia(key string) (io.ReadCloser, string, error) {
	return s.storage.Open(key)
}
