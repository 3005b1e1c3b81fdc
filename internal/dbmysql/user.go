package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	UserID       string         `gorm:"primaryKey;column:user_id;size:36" json:"id"`
	Email        string         `gorm:"column:email;uniqueIndex;size:255;not null" json:"email,omitempty"`
	PasswordHash string         `gorm:"column:password_hash;size:255;not null" json:"-"`
	Name         string         `gorm:"column:name;size:100" json:"name"`
	DisplayName  string         `gorm:"column:display_name;size:100" json:"displayName,omitempty"`
	GamerTag     string         `gorm:"column:gamer_tag;size:50;index" json:"gamerTag,omitempty"`
	AvatarURL    string         `gorm:"column:avatar_url;size:512" json:"avatarUrl,omitempty"`
	Bio          string         `gorm:"column:bio;type:text" json:"bio,omitempty"`
	City         string         `gorm:"column:city;size:100" json:"city,omitempty"`
	Location     string         `gorm:"column:location;size:150" json:"location,omitempty"`
	GameTags     []string       `gorm:"column:game_tags;serializer:json" json:"gameTags,omitempty"`
	Followers    int            `gorm:"column:followers" json:"followers"`
	Following    int            `gorm:"column:following" json:"following"`
	Level        int            `gorm:"column:level" json:"level"`
	IsVerified   bool           `gorm:"column:is_verified" json:"isVerified"`
	IsOnline     bool           `gorm:"column:is_online" json:"isOnline"`
	Onboarded    bool           `gorm:"column:onboarded" json:"onboarded"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
