package user

import (
	"context"
	"time"

	"gorm.io/gorm"

	"gameotion/internal/dbmysql"
)

type FriendRepository interface {
	CreateFriendRequest(ctx context.Context, friend *dbmysql.Friend) error
	GetFriendRequest(ctx context.Context, userID, friendUserID string) (*dbmysql.Friend, error)
	AcceptFriendRequest(ctx context.Context, userID, friendUserID string) error
	CheckFriendshipExists(ctx context.Context, userID, friendUserID string) (bool, error)
	// ListFriendIDs returns accepted friendships in either direction.
	ListFriendIDs(ctx context.Context, userID string) ([]string, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) CreateFriendRequest(ctx context.Context, friend *dbmysql.Friend) error {
	return r.db.WithContext(ctx).Create(friend).Error
}

func (r *friendRepository) GetFriendRequest(ctx context.Context, userID, friendUserID string) (*dbmysql.Friend, error) {
	var friend dbmysql.Friend
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_user_id = ?", userID, friendUserID).
		First(&friend).Error
	if err != nil {
		return nil, err
	}
	return &friend, nil
}

func (r *friendRepository) AcceptFriendRequest(ctx context.Context, userID, friendUserID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&dbmysql.Friend{}).
		Where("user_id = ? AND friend_user_id = ? AND status = ?", userID, friendUserID, "pending").
		Updates(map[string]interface{}{"status": "accepted", "accepted_at": &now}).Error
}

func (r *friendRepository) CheckFriendshipExists(ctx context.Context, userID, friendUserID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Friend{}).
		Where("status = ?", "accepted").
		Where("(user_id = ? AND friend_user_id = ?) OR (user_id = ? AND friend_user_id = ?)",
			userID, friendUserID, friendUserID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *friendRepository) ListFriendIDs(ctx context.Context, userID string) ([]string, error) {
	var friends []dbmysql.Friend
	err := r.db.WithContext(ctx).
		Where("status = ?", "accepted").
		Where("user_id = ? OR friend_user_id = ?", userID, userID).
		Find(&friends).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(friends))
	for _, f := range friends {
		if f.UserID == userID {
			ids = append(ids, f.FriendUserID)
		} else {
			ids = append(ids, f.UserID)
		}
	}
	return ids, nil
}
