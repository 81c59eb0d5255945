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
	ErrMissingItemTitle = errors.New("item title is required")
)

type ItemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) Items() ([]*model.Item, error) {
	return s.repo.Items()
}

func (s *ItemService) Create(title string, description *string, price *float64) (*model.Item, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingItemTitle
	}

	item := &model.Item{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Price:       price,
		CreatedAt:   time.Now().UnixMilli(),
	}

	err := s.repo.Create(item)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}
