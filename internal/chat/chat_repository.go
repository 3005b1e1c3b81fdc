package chat

import (
	"context"

	"gorm.io/gorm"

	"gameotion/internal/dbmysql"
)

type ChatRepository interface {
	ListConversations(ctx context.Context) ([]dbmysql.Conversation, error)
	GetConversation(ctx context.Context, id string) (*dbmysql.Conversation, error)
	SaveConversation(ctx context.Context, conv *dbmysql.Conversation) error
	ListMessages(ctx context.Context, conversationID string) ([]dbmysql.Message, error)
	CreateMessage(ctx context.Context, msg *dbmysql.Message) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) ListConversations(ctx context.Context) ([]dbmysql.Conversation, error) {
	var convs []dbmysql.Conversation
	err := r.db.WithContext(ctx).
		Order("last_message_at DESC").
		Find(&convs).Error
	return convs, err
}

func (r *chatRepository) GetConversation(ctx context.Context, id string) (*dbmysql.Conversation, error) {
	var conv dbmysql.Conversation
	err := r.db.WithContext(ctx).First(&conv, "conversation_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *chatRepository) SaveConversation(ctx context.Context, conv *dbmysql.Conversation) error {
	return r.db.WithContext(ctx).Save(conv).Error
}

func (r *chatRepository) ListMessages(ctx context.Context, conversationID string) ([]dbmysql.Message, error) {
	var msgs []dbmysql.Message
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *chatRepository) CreateMessage(ctx context.Context, msg *dbmysql.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}
