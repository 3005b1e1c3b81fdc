package feed

import (
	"context"

	"gorm.io/gorm"

	"gameotion/internal/dbmysql"
)

// ContentSource supplies the unordered candidate set the ranker scores,
// plus post-level reads and writes. The ranker itself never touches
// storage; it gets a snapshot slice.
type ContentSource interface {
	ListFeedItems(ctx context.Context) ([]dbmysql.FeedItem, error)
	ListAllPosts(ctx context.Context) ([]dbmysql.Post, error)
	ListPostsByAuthor(ctx context.Context, authorID string) ([]dbmysql.Post, error)
	GetPostByID(ctx context.Context, id string) (*dbmysql.Post, error)
	CreatePost(ctx context.Context, post *dbmysql.Post) error
	SavePost(ctx context.Context, post *dbmysql.Post) error
}

// Comments handles the per-post comment threads.
type Comments interface {
	CreateComment(ctx context.Context, comment *dbmysql.Comment) error
	ListCommentsForPost(ctx context.Context, postID string) ([]dbmysql.Comment, error)
}

// FriendSource resolves the requester's accepted friends, used only for
// the friends-scoped feed boost.
type FriendSource interface {
	ListFriendIDs(ctx context.Context, userID string) ([]string, error)
}

// UserSource resolves authors for post/comment payloads.
type UserSource interface {
	GetUserByID(ctx context.Context, id string) (*dbmysql.User, error)
}

// Notifier records like/comment notifications for post authors.
type Notifier interface {
	Create(ctx context.Context, n *dbmysql.Notification) error
}

type FeedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// ListFeedItems reads posts and events in one pass and returns them as
// a fresh slice. Each call is an independent snapshot.
func (r *FeedRepository) ListFeedItems(ctx context.Context) ([]dbmysql.FeedItem, error) {
	var posts []dbmysql.Post
	if err := r.db.WithContext(ctx).Preload("Author").Find(&posts).Error; err != nil {
		return nil, err
	}

	var events []dbmysql.Event
	if err := r.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}

	items := make([]dbmysql.FeedItem, 0, len(posts)+len(events))
	for _, p := range posts {
		items = append(items, p)
	}
	for _, e := range events {
		items = append(items, e)
	}
	return items, nil
}

func (r *FeedRepository) ListAllPosts(ctx context.Context) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *FeedRepository) ListPostsByAuthor(ctx context.Context, authorID string) ([]dbmysql.Post, error) {
	var posts []dbmysql.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *FeedRepository) GetPostByID(ctx context.Context, id string) (*dbmysql.Post, error) {
	var post dbmysql.Post
	err := r.db.WithContext(ctx).Preload("Author").First(&post, "post_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *FeedRepository) CreatePost(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *FeedRepository) SavePost(ctx context.Context, post *dbmysql.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *FeedRepository) CreateComment(ctx context.Context, comment *dbmysql.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *FeedRepository) ListCommentsForPost(ctx context.Context, postID string) ([]dbmysql.Comment, error) {
	var comments []dbmysql.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
