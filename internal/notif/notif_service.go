package notif

import (
	"context"
	"time"

	"gameotion/internal/dbmysql"
)

// NotificationItem is the wire shape of one notification row.
type NotificationItem struct {
	ID        string                    `json:"id"`
	Type      string                    `json:"type"`
	User      *dbmysql.User             `json:"user,omitempty"`
	Post      *dbmysql.NotificationPost `json:"post,omitempty"`
	Comment   string                    `json:"comment,omitempty"`
	CreatedAt time.Time                 `json:"createdAt"`
}

type NotificationUsecase interface {
	ListForUser(ctx context.Context, userID string) ([]NotificationItem, error)
}

type NotificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]NotificationItem, error) {
	rows, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]NotificationItem, 0, len(rows))
	for _, n := range rows {
		item := NotificationItem{
			ID:        n.NotificationID,
			Type:      n.Type,
			User:      n.Actor,
			Comment:   n.CommentText,
			CreatedAt: n.CreatedAt,
		}
		if n.PostID != nil {
			item.Post = &dbmysql.NotificationPost{ID: *n.PostID, Text: n.PostText}
		}
		items = append(items, item)
	}
	return items, nil
}
