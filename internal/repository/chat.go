package repository

import (
	"context"

	"mindease/internal/models"

	"gorm.io/gorm"
)

// ChatRepository defines persistence operations for private chat messages.
type ChatRepository interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	ListByUser(ctx context.Context, userID uint) ([]models.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository returns a new ChatRepository implementation.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *chatRepository) ListByUser(ctx context.Context, userID uint) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	// Secondary key on id keeps ordering stable across equal timestamps.
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}
