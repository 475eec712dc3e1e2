package service

import (
	"context"

	"mindease/internal/models"
	"mindease/internal/repository"
	"mindease/internal/validation"
)

// ChatService provides private chat message business logic.
type ChatService struct {
	chats repository.ChatRepository
	users repository.UserRepository
}

// NewChatService returns a new ChatService.
func NewChatService(chats repository.ChatRepository, users repository.UserRepository) *ChatService {
	return &ChatService{chats: chats, users: users}
}

// ListForUser returns the user's messages in non-decreasing created_at order,
// each carrying the author's name. The user is checked explicitly so an
// unknown user is a not-found error rather than an empty list.
func (s *ChatService) ListForUser(ctx context.Context, userID uint) ([]models.ChatMessageWithAuthor, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	messages, err := s.chats.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.ChatMessageWithAuthor, 0, len(messages))
	for _, m := range messages {
		enriched = append(enriched, models.ChatMessageWithAuthor{
			ID:        m.ID,
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
			Name:      user.Name,
		})
	}
	return enriched, nil
}

// Create appends a new message for the user with a server-assigned timestamp.
func (s *ChatService) Create(ctx context.Context, userID uint, content string) (*models.ChatMessage, error) {
	if userID == 0 || validation.Blank(content) {
		return nil, models.NewValidationError("Missing fields")
	}

	msg := &models.ChatMessage{
		UserID:  userID,
		Content: content,
	}
	if err := s.chats.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
