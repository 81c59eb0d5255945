package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/rollnconnect/backend/internal/model"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	ByUser(userID string) ([]*model.Notification, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	query := `INSERT INTO notifications (id, user_id, data, created_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query,
		notification.ID,
		notification.UserID,
		notification.Data,
		notification.CreatedAt,
	)

	return err
}

// ByUser returns a user's notifications newest first.
func (r *notificationRepository) ByUser(userID string) ([]*model.Notification, error) {
	notifications := []*model.Notification{}
	query := `SELECT * FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&notifications, query, userID)
	if err != nil {
		return nil, err
	}

	return notifications, nil
}
