package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gameotion/internal/dbmysql"
)

var ErrPostNotFound = errors.New("post not found")

// FeedQuery is the request context for one ranked feed page.
type FeedQuery struct {
	Game        string
	City        string
	FriendsOnly bool
	RequesterID string
	Page        int
	Limit       int
}

// CreatePostInput is the caller-supplied part of a new post.
type CreatePostInput struct {
	ContentText string
	GameTags    []string
	Media       []dbmysql.Media
	City        string
}

type FeedUsecase interface {
	GetFeed(ctx context.Context, q FeedQuery) (RankedResult, error)
	ListPosts(ctx context.Context) ([]dbmysql.Post, error)
	CreatePost(ctx context.Context, authorID string, in CreatePostInput) (*dbmysql.Post, error)
	LikePost(ctx context.Context, postID, userID string, unlike bool) (int, error)
	BookmarkPost(ctx context.Context, postID string) error
	SharePost(ctx context.Context, postID string) (int, error)
	AddComment(ctx context.Context, postID, userID, text string) (*dbmysql.Comment, error)
	ListComments(ctx context.Context, postID string) ([]dbmysql.Comment, error)
	ListUserPosts(ctx context.Context, userID string, page, limit int) ([]dbmysql.Post, *int, error)
}

type FeedService struct {
	contentRepo ContentSource
	commentRepo Comments
	friendRepo  FriendSource
	userRepo    UserSource
	notifier    Notifier
}

func NewFeedService(c ContentSource, cm Comments, f FriendSource, u UserSource, n Notifier) *FeedService {
	return &FeedService{
		contentRepo: c,
		commentRepo: cm,
		friendRepo:  f,
		userRepo:    u,
		notifier:    n,
	}
}

// GetFeed snapshots the candidate set, resolves the requester's friends
// when the friends scope is on, and hands everything to the ranker.
func (s *FeedService) GetFeed(ctx context.Context, q FeedQuery) (RankedResult, error) {
	items, err := s.contentRepo.ListFeedItems(ctx)
	if err != nil {
		return RankedResult{}, fmt.Errorf("load feed candidates: %w", err)
	}

	sc := ScoringContext{
		Game:        q.Game,
		City:        q.City,
		FriendsOnly: q.FriendsOnly,
		Now:         time.Now(),
	}

	if q.FriendsOnly && q.RequesterID != "" {
		ids, err := s.friendRepo.ListFriendIDs(ctx, q.RequesterID)
		if err != nil {
			return RankedResult{}, fmt.Errorf("resolve friends: %w", err)
		}
		sc.FriendIDs = make(map[string]struct{}, len(ids))
		for _, id := range ids {
			sc.FriendIDs[id] = struct{}{}
		}
	}

	return Rank(items, sc, q.Page, q.Limit), nil
}

func (s *FeedService) ListPosts(ctx context.Context) ([]dbmysql.Post, error) {
	return s.contentRepo.ListAllPosts(ctx)
}

func (s *FeedService) CreatePost(ctx context.Context, authorID string, in CreatePostInput) (*dbmysql.Post, error) {
	author, err := s.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("load author: %w", err)
	}

	city := in.City
	if city == "" {
		city = author.City
	}

	gameTags := in.GameTags
	if gameTags == nil {
		gameTags = []string{}
	}
	media := in.Media
	if media == nil {
		media = []dbmysql.Media{}
	}

	post := &dbmysql.Post{
		PostID:      uuid.NewString(),
		Kind:        "post",
		AuthorID:    authorID,
		ContentText: strings.TrimSpace(in.ContentText),
		GameTags:    gameTags,
		Media:       media,
		Location:    dbmysql.Location{City: city},
		Visibility:  "public",
		CreatedAt:   time.Now(),
	}
	if err := s.contentRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	post.Author = author
	return post, nil
}

func (s *FeedService) LikePost(ctx context.Context, postID, userID string, unlike bool) (int, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return 0, err
	}

	if unlike {
		post.LikesCount--
		if post.LikesCount < 0 {
			post.LikesCount = 0
		}
	} else {
		post.LikesCount++
	}

	if err := s.contentRepo.SavePost(ctx, post); err != nil {
		return 0, err
	}
	if !unlike {
		s.notifyAuthor(ctx, post, userID, "like", "")
	}
	return post.LikesCount, nil
}

// BookmarkPost only checks that the post exists; bookmarks are a
// client-side concern in the demo backend.
func (s *FeedService) BookmarkPost(ctx context.Context, postID string) error {
	_, err := s.getPost(ctx, postID)
	return err
}

func (s *FeedService) SharePost(ctx context.Context, postID string) (int, error) {
	post, err := s.getPost(ctx, postID)
	if err != nil {
		return 0, err
	}

	post.ViewsCount++
	if err := s.contentRepo.SavePost(ctx, post); err != nil {
		return 0, err
	}
	return post.ViewsCount, nil
}

func (s *FeedService) AddComment(ctx context.Context, postID, userID, text string) (*dbmysql.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("text required")
	}

	post, err := s.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &dbmysql.Comment{
		CommentID: uuid.NewString(),
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	post.CommentsCount++
	if err := s.contentRepo.SavePost(ctx, post); err != nil {
		return nil, err
	}
	s.notifyAuthor(ctx, post, userID, "comment", text)

	if user, err := s.userRepo.GetUserByID(ctx, userID); err == nil {
		comment.User = user
	}
	return comment, nil
}

func (s *FeedService) ListComments(ctx context.Context, postID string) ([]dbmysql.Comment, error) {
	return s.commentRepo.ListCommentsForPost(ctx, postID)
}

// ListUserPosts pages through one author's posts newest-first. No
// scoring here — profile pages show plain chronology.
func (s *FeedService) ListUserPosts(ctx context.Context, userID string, page, limit int) ([]dbmysql.Post, *int, error) {
	posts, err := s.contentRepo.ListPostsByAuthor(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	start := (page - 1) * limit
	end := start + limit

	pageItems := []dbmysql.Post{}
	if start < len(posts) {
		if end > len(posts) {
			end = len(posts)
		}
		pageItems = posts[start:end]
	}

	var nextPage *int
	if start+limit < len(posts) {
		next := page + 1
		nextPage = &next
	}
	return pageItems, nextPage, nil
}

// notifyAuthor is best effort; a failed notification write never fails
// the interaction itself. Self-likes and self-comments stay silent.
func (s *FeedService) notifyAuthor(ctx context.Context, post *dbmysql.Post, actorID, kind, commentText string) {
	if actorID == "" || post.AuthorID == "" || actorID == post.AuthorID {
		return
	}
	_ = s.notifier.Create(ctx, &dbmysql.Notification{
		NotificationID: uuid.NewString(),
		UserID:         post.AuthorID,
		Type:           kind,
		ActorID:        actorID,
		PostID:         &post.PostID,
		PostText:       post.ContentText,
		CommentText:    commentText,
		CreatedAt:      time.Now(),
	})
}

func (s *FeedService) getPost(ctx context.Context, postID string) (*dbmysql.Post, error) {
	post, err := s.contentRepo.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}
