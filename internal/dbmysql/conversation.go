package dbmysql

import (
	"time"
)

type Conversation struct {
	ConversationID string    `gorm:"primaryKey;column:conversation_id;size:36" json:"id"`
	Title          string    `gorm:"column:title;size:150" json:"title"`
	IsGroup        bool      `gorm:"column:is_group" json:"isGroup,omitempty"`
	GameTag        string    `gorm:"column:game_tag;size:50" json:"gameTag,omitempty"`
	ExtraTag       string    `gorm:"column:extra_tag;size:50" json:"extraTag,omitempty"`
	Snippet        string    `gorm:"column:snippet;type:text" json:"snippet"`
	Unread         int       `gorm:"column:unread" json:"unread,omitempty"`
	MembersCount   int       `gorm:"column:members_count" json:"membersCount,omitempty"`
	Members        []string  `gorm:"column:members;serializer:json" json:"members,omitempty"`
	LastMessageAt  time.Time `gorm:"column:last_message_at" json:"time"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
}
