package service

import (
	"context"
	"testing"
	"time"

	"mindease/internal/models"
)

func TestChatServiceListForUserUnknownUser(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}

	svc := NewChatService(noopChatRepo(), users)
	_, err := svc.ListForUser(context.Background(), 42)
	assertAppErrorCode(t, err, "NOT_FOUND")
}

func TestChatServiceListForUserEnriches(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Name: "Ayesha Rahman"}, nil
	}

	chats := noopChatRepo()
	chats.listByUserFn = func(context.Context, uint) ([]models.ChatMessage, error) {
		return []models.ChatMessage{
			{ID: 1, UserID: 42, Content: "first", CreatedAt: base},
			{ID: 2, UserID: 42, Content: "second", CreatedAt: base.Add(time.Minute)},
		}, nil
	}

	svc := NewChatService(chats, users)
	messages, err := svc.ListForUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	// Repository ordering is preserved and every row carries the author name.
	if messages[0].Content != "first" || messages[1].Content != "second" {
		t.Fatalf("ordering changed: %+v", messages)
	}
	for _, m := range messages {
		if m.Name != "Ayesha Rahman" {
			t.Fatalf("missing author name on message %d", m.ID)
		}
	}
}

func TestChatServiceListForUserEmpty(t *testing.T) {
	svc := NewChatService(noopChatRepo(), noopUserRepo())
	messages, err := svc.ListForUser(context.Background(), 42)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected empty slice, got %+v", messages)
	}
}

func TestChatServiceCreateValidation(t *testing.T) {
	svc := NewChatService(noopChatRepo(), noopUserRepo())

	if _, err := svc.Create(context.Background(), 0, "hello"); err == nil {
		t.Fatal("expected error for missing user")
	}
	_, err := svc.Create(context.Background(), 42, "   ")
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestChatServiceCreatePersists(t *testing.T) {
	var saved *models.ChatMessage
	chats := noopChatRepo()
	chats.createFn = func(_ context.Context, msg *models.ChatMessage) error {
		saved = msg
		return nil
	}

	svc := NewChatService(chats, noopUserRepo())
	if _, err := svc.Create(context.Background(), 42, "hello"); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if saved == nil || saved.UserID != 42 || saved.Content != "hello" {
		t.Fatalf("unexpected persisted message: %+v", saved)
	}
}
