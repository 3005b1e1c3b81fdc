package dbmysql

import (
	"time"
)

// Media is a single attachment on a post.
type Media struct {
	URL  string `json:"url"`
	Type string `json:"type"` // image, video
}

// Location is the optional place a post was made from.
type Location struct {
	City string `json:"city,omitempty"`
}

// Post is user-generated feed content. GameTags is a set of tags; tag
// matching against the feed's game filter is case-sensitive.
type Post struct {
	PostID        string    `gorm:"primaryKey;column:post_id;size:36" json:"id"`
	Kind          string    `gorm:"column:kind;size:10;default:post" json:"kind"`
	AuthorID      string    `gorm:"column:author_id;size:36;index" json:"authorId"`
	Author        *User     `gorm:"foreignKey:AuthorID" json:"user,omitempty"`
	ContentText   string    `gorm:"column:content_text;type:text" json:"contentText"`
	Media         []Media   `gorm:"column:media;serializer:json" json:"media"`
	GameTags      []string  `gorm:"column:game_tags;serializer:json" json:"gameTags"`
	Location      Location  `gorm:"column:location;serializer:json" json:"location"`
	LikesCount    int       `gorm:"column:likes_count" json:"likesCount"`
	CommentsCount int       `gorm:"column:comments_count" json:"commentsCount"`
	ViewsCount    int       `gorm:"column:views_count" json:"viewsCount"`
	Visibility    string    `gorm:"column:visibility;size:20;default:public" json:"visibility"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// Event is an organizer-published feed card (tournament, LAN night).
// Unlike posts it carries at most one game tag and no author.
type Event struct {
	EventID        string    `gorm:"primaryKey;column:event_id;size:36" json:"id"`
	Kind           string    `gorm:"column:kind;size:10;default:event" json:"kind"`
	Title          string    `gorm:"column:title;size:255" json:"title"`
	GameTag        string    `gorm:"column:game_tag;size:50" json:"gameTag,omitempty"`
	City           string    `gorm:"column:city;size:100" json:"city,omitempty"`
	CTA            string    `gorm:"column:cta;size:50" json:"cta,omitempty"`
	StartsAt       time.Time `gorm:"column:starts_at" json:"startsAt"`
	EngagementHint int       `gorm:"column:engagement_hint" json:"engagementHint,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"createdAt"`
}

// FeedItem is the closed union of rankable feed content. Exactly Post
// and Event satisfy it; the ranker type-switches over the two variants
// so each one's tag and engagement fields are read from the right place.
type FeedItem interface {
	feedItem()
}

func (Post) feedItem()  {}
func (Event) feedItem() {}
