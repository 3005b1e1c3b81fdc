package dbmysql

import (
	"time"
)

type Notification struct {
	NotificationID string     `gorm:"primaryKey;column:notification_id;size:36" json:"id"`
	UserID         string     `gorm:"column:user_id;size:36;index" json:"-"`
	Type           string     `gorm:"column:type;size:20" json:"type"` // follow, like, comment
	ActorID        string     `gorm:"column:actor_id;size:36" json:"-"`
	Actor          *User      `gorm:"foreignKey:ActorID" json:"user,omitempty"`
	PostID         *string    `gorm:"column:post_id;size:36" json:"-"`
	PostText       string     `gorm:"column:post_text;type:text" json:"-"`
	CommentText    string     `gorm:"column:comment_text;type:text" json:"comment,omitempty"`
	ReadAt         *time.Time `gorm:"column:read_at" json:"readAt,omitempty"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"createdAt"`
}

// NotificationPost is the post summary embedded in notification
// responses.
type NotificationPost struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
