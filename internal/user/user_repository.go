package user

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"gameotion/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, id string) (*dbmysql.User, error)
	GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, user *dbmysql.User) error
	SearchUsers(ctx context.Context, query, excludeUserID string) ([]dbmysql.User, error)
	ListOtherUsers(ctx context.Context, excludeUserID string) ([]dbmysql.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).First(&user, "user_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.User{}).
		Where("email = ?", strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) SearchUsers(ctx context.Context, query, excludeUserID string) ([]dbmysql.User, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	var users []dbmysql.User
	err := r.db.WithContext(ctx).
		Where("user_id <> ?", excludeUserID).
		Where("LOWER(name) LIKE ? OR LOWER(gamer_tag) LIKE ?", pattern, pattern).
		Find(&users).Error
	return users, err
}

func (r *userRepository) ListOtherUsers(ctx context.Context, excludeUserID string) ([]dbmysql.User, error) {
	var users []dbmysql.User
	err := r.db.WithContext(ctx).
		Where("user_id <> ?", excludeUserID).
		Find(&users).Error
	return users, err
}
