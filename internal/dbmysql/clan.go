package dbmysql

import (
	"time"
)

type Clan struct {
	ClanID       string    `gorm:"primaryKey;column:clan_id;size:36" json:"id"`
	Name         string    `gorm:"column:name;size:100" json:"name"`
	Tag          string    `gorm:"column:tag;size:10" json:"tag"`
	Level        int       `gorm:"column:level" json:"level"`
	Region       string    `gorm:"column:region;size:50" json:"region"`
	GameTags     []string  `gorm:"column:game_tags;serializer:json" json:"gameTags"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	MembersCount int       `gorm:"column:members_count" json:"membersCount"`
	MembersMax   int       `gorm:"column:members_max" json:"membersMax"`
	Founded      string    `gorm:"column:founded;size:10" json:"founded"`
	Requirements []string  `gorm:"column:requirements;serializer:json" json:"requirements"`
	Recruiting   bool      `gorm:"column:recruiting" json:"recruiting"`
	Members      []string  `gorm:"column:members;serializer:json" json:"members"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

type ClanInvite struct {
	InviteID    string    `gorm:"primaryKey;column:invite_id;size:36" json:"id"`
	ClanID      string    `gorm:"column:clan_id;size:36;index" json:"clanId"`
	ClanName    string    `gorm:"column:clan_name;size:100" json:"clanName"`
	UserID      string    `gorm:"column:user_id;size:36;index" json:"userId"`
	InviterID   string    `gorm:"column:inviter_id;size:36" json:"inviterId"`
	InviterName string    `gorm:"column:inviter_name;size:100" json:"inviterName"`
	Status      string    `gorm:"column:status;type:enum('pending','accepted','rejected','expired');default:'pending'" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}
