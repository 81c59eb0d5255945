package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rollnconnect/backend/internal/config"
	"github.com/rollnconnect/backend/internal/db"
	"github.com/rollnconnect/backend/internal/repository"
	"github.com/rollnconnect/backend/internal/service"
	"github.com/rollnconnect/backend/internal/storage"
)

type App struct {
	Cfg                 *config.Config
	DB                  *sqlx.DB
	ClipService         *service.ClipService
	CommentService      *service.CommentService
	ProfileService      *service.ProfileService
	ItemService         *service.ItemService
	NotificationService *service.NotificationService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Storage
	mediaStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	return NewWithStorage(cfg, database, mediaStorage), nil
}

// NewWithStorage wires repositories and services over an existing database
// and blob store. Used directly by tests with fakes.
func NewWithStorage(cfg *config.Config, database *sqlx.DB, mediaStorage storage.Storage) *App {
	// Repositories
	clipRepository := repository.NewClipRepository(database)
	likeRepository := repository.NewLikeRepository(database)
	commentRepository := repository.NewCommentRepository(database)
	profileRepository := repository.NewProfileRepository(database)
	itemRepository := repository.NewItemRepository(database)
	notificationRepository := repository.NewNotificationRepository(database)

	// Services
	clipService := service.NewClipService(clipRepository, likeRepository, mediaStorage, cfg.LikeCap)
	commentService := service.NewCommentService(commentRepository, clipRepository)
	profileService := service.NewProfileService(profileRepository)
	itemService := service.NewItemService(itemRepository)
	notificationService := service.NewNotificationService(notificationRepository)

	return &App{
		Cfg:                 cfg,
		DB:                  database,
		ClipService:         clipService,
		CommentService:      commentService,
		ProfileService:      profileService,
		ItemService:         itemService,
		NotificationService: notificationService,
	}
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
