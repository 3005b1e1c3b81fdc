package dbmysql

import (
	"time"
)

type Comment struct {
	CommentID string    `gorm:"primaryKey;column:comment_id;size:36" json:"id"`
	PostID    string    `gorm:"column:post_id;size:36;index" json:"-"`
	UserID    string    `gorm:"column:user_id;size:36" json:"-"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Text      string    `gorm:"column:text;type:text" json:"text"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}
