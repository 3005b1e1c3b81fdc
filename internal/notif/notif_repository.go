package notif

import (
	"context"

	"gorm.io/gorm"

	"gameotion/internal/dbmysql"
)

type NotificationRepository interface {
	ListForUser(ctx context.Context, userID string) ([]dbmysql.Notification, error)
	Create(ctx context.Context, n *dbmysql.Notification) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) ListForUser(ctx context.Context, userID string) ([]dbmysql.Notification, error) {
	var items []dbmysql.Notification
	err := r.db.WithContext(ctx).
		Preload("Actor").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *notificationRepository) Create(ctx context.Context, n *dbmysql.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}
