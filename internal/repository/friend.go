package repository

import (
	"context"

	"mindease/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines persistence operations for friend relations.
type FriendRepository interface {
	// CountAccepted counts accepted relations touching the user on either
	// side. One query with an OR condition; user_id and friend_id are never
	// equal for a relation so no row is counted twice.
	CountAccepted(ctx context.Context, userID uint) (int64, error)
	// ListPendingFor returns pending requests where the user is the target.
	ListPendingFor(ctx context.Context, userID uint) ([]models.FriendRelation, error)
	Create(ctx context.Context, relation *models.FriendRelation) error
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository returns a new FriendRepository implementation.
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) CountAccepted(ctx context.Context, userID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FriendRelation{}).
		Where("status = ? AND (user_id = ? OR friend_id = ?)",
			models.FriendStatusAccepted, userID, userID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *friendRepository) ListPendingFor(ctx context.Context, userID uint) ([]models.FriendRelation, error) {
	var relations []models.FriendRelation
	if err := r.db.WithContext(ctx).
		Where("friend_id = ? AND status = ?", userID, models.FriendStatusPending).
		Order("created_at ASC, id ASC").
		Find(&relations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return relations, nil
}

func (r *friendRepository) Create(ctx context.Context, relation *models.FriendRelation) error {
	if err := r.db.WithContext(ctx).Create(relation).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
