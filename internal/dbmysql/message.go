package dbmysql

import (
	"time"
)

type Message struct {
	MessageID      string    `gorm:"primaryKey;column:message_id;size:36" json:"id"`
	ConversationID string    `gorm:"column:conversation_id;size:36;index" json:"-"`
	SenderID       string    `gorm:"column:sender_id;size:36" json:"-"`
	Sender         *User     `gorm:"foreignKey:SenderID" json:"user,omitempty"`
	Text           string    `gorm:"column:text;type:text" json:"text"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"createdAt"`
}
