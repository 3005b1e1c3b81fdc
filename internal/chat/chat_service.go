package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gameotion/internal/dbmysql"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrEmptyMessage         = errors.New("text required")
)

type ChatUsecase interface {
	ListConversations(ctx context.Context, userID string) ([]dbmysql.Conversation, error)
	ListMessages(ctx context.Context, conversationID string) ([]dbmysql.Message, error)
	SendMessage(ctx context.Context, conversationID, senderID, text string) (*dbmysql.Message, error)
}

type ChatService struct {
	repo ChatRepository
}

func NewChatService(repo ChatRepository) *ChatService {
	return &ChatService{repo: repo}
}

// ListConversations returns the conversations the user belongs to.
// Conversations seeded without a member list are visible to everyone.
func (s *ChatService) ListConversations(ctx context.Context, userID string) ([]dbmysql.Conversation, error) {
	convs, err := s.repo.ListConversations(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]dbmysql.Conversation, 0, len(convs))
	for _, c := range convs {
		if len(c.Members) == 0 || contains(c.Members, userID) {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

func (s *ChatService) ListMessages(ctx context.Context, conversationID string) ([]dbmysql.Message, error) {
	if _, err := s.getConversation(ctx, conversationID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, conversationID)
}

// SendMessage appends a message and keeps the conversation preview
// (snippet + time) in sync, like the old backend did.
func (s *ChatService) SendMessage(ctx context.Context, conversationID, senderID, text string) (*dbmysql.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	conv, err := s.getConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	msg := &dbmysql.Message{
		MessageID:      uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Text:           text,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	conv.Snippet = text
	conv.LastMessageAt = msg.CreatedAt
	if err := s.repo.SaveConversation(ctx, conv); err != nil {
		return nil, err
	}

	return msg, nil
}

func (s *ChatService) getConversation(ctx context.Context, id string) (*dbmysql.Conversation, error) {
	conv, err := s.repo.GetConversation(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	return conv, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
