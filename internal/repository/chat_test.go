package repository

import (
	"context"
	"testing"
	"time"

	"mindease/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestChatRepositoryListByUserOldestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "ayesha")
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	later := &models.ChatMessage{UserID: user.ID, Content: "later", CreatedAt: base.Add(time.Minute)}
	earlier := &models.ChatMessage{UserID: user.ID, Content: "earlier", CreatedAt: base}
	assert.NoError(t, repo.Create(ctx, later))
	assert.NoError(t, repo.Create(ctx, earlier))

	messages, err := repo.ListByUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "earlier", messages[0].Content)
	assert.Equal(t, "later", messages[1].Content)
}

func TestChatRepositoryListByUserScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	ayesha := createTestUser(t, db, "ayesha")
	borhan := createTestUser(t, db, "borhan")

	assert.NoError(t, repo.Create(ctx, &models.ChatMessage{UserID: ayesha.ID, Content: "mine"}))
	assert.NoError(t, repo.Create(ctx, &models.ChatMessage{UserID: borhan.ID, Content: "theirs"}))

	messages, err := repo.ListByUser(ctx, ayesha.ID)
	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	assert.Equal(t, "mine", messages[0].Content)
}

func TestChatRepositoryStableOrderForEqualTimestamps(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChatRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "ayesha")
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for _, content := range []string{"a", "b", "c"} {
		assert.NoError(t, repo.Create(ctx, &models.ChatMessage{UserID: user.ID, Content: content, CreatedAt: at}))
	}

	// Equal created_at falls back to insertion (id) order.
	messages, err := repo.ListByUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, messages, 3)
	assert.Equal(t, "a", messages[0].Content)
	assert.Equal(t, "b", messages[1].Content)
	assert.Equal(t, "c", messages[2].Content)
}
