package dbmysql

import (
	"time"
)

type Friend struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string     `gorm:"column:user_id;size:36;not null;index:idx_user_friend,unique" json:"user_id"`
	FriendUserID string     `gorm:"column:friend_user_id;size:36;not null;index:idx_user_friend,unique" json:"friend_user_id"`
	Status       string     `gorm:"column:status;type:enum('pending','accepted','blocked');default:'pending'" json:"status"`
	RequestedAt  time.Time  `gorm:"column:requested_at;autoCreateTime" json:"requested_at"`
	AcceptedAt   *time.Time `gorm:"column:accepted_at" json:"accepted_at"`
}
