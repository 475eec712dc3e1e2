package repository

import (
	"context"
	"errors"

	"mindease/internal/cache"
	"mindease/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DiscussionRepository defines persistence operations for discussions,
// their likes and their replies.
type DiscussionRepository interface {
	Create(ctx context.Context, d *models.Discussion) error
	GetByID(ctx context.Context, id uint) (*models.Discussion, error)
	ListClass(ctx context.Context, batch, department string) ([]models.Discussion, error)
	ListDepartment(ctx context.Context, department string) ([]models.Discussion, error)
	ListPublic(ctx context.Context) ([]models.Discussion, error)

	LikeOnce(ctx context.Context, postID, userID uint) error
	CountLikes(ctx context.Context, postID uint) (int64, error)

	CreateReply(ctx context.Context, reply *models.PostReply) error
	ListReplies(ctx context.Context, postID uint) ([]models.PostReply, error)
}

type discussionRepository struct {
	db *gorm.DB
}

// NewDiscussionRepository returns a new DiscussionRepository implementation.
func NewDiscussionRepository(db *gorm.DB) DiscussionRepository {
	return &discussionRepository{db: db}
}

func (r *discussionRepository) Create(ctx context.Context, d *models.Discussion) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *discussionRepository) GetByID(ctx context.Context, id uint) (*models.Discussion, error) {
	var d models.Discussion
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Discussion", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &d, nil
}

func (r *discussionRepository) ListClass(ctx context.Context, batch, department string) ([]models.Discussion, error) {
	var discussions []models.Discussion
	if err := r.db.WithContext(ctx).
		Where("batch = ? AND department = ?", batch, department).
		Order("created_at DESC, id DESC").
		Find(&discussions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return discussions, nil
}

// ListDepartment returns department-level discussions only. Class-scoped
// posts from the same department (batch set) are a disjoint query path and
// deliberately excluded.
func (r *discussionRepository) ListDepartment(ctx context.Context, department string) ([]models.Discussion, error) {
	var discussions []models.Discussion
	if err := r.db.WithContext(ctx).
		Where("department = ? AND batch IS NULL", department).
		Order("created_at DESC, id DESC").
		Find(&discussions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return discussions, nil
}

func (r *discussionRepository) ListPublic(ctx context.Context) ([]models.Discussion, error) {
	var discussions []models.Discussion
	if err := r.db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("created_at DESC, id DESC").
		Find(&discussions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return discussions, nil
}

// LikeOnce inserts a like and silently does nothing when the (post_id,
// user_id) pair already exists. The unique index plus ON CONFLICT DO NOTHING
// keeps concurrent duplicate requests from ever producing two rows; there is
// no read-then-write window.
func (r *discussionRepository) LikeOnce(ctx context.Context, postID, userID uint) error {
	like := models.PostLike{PostID: postID, UserID: userID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&like).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateLikeCount(ctx, postID)
	return nil
}

func (r *discussionRepository) CountLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := cache.Aside(ctx, cache.LikeCountKey(postID), &count, cache.LikeCountTTL, func() error {
		if err := r.db.WithContext(ctx).
			Model(&models.PostLike{}).
			Where("post_id = ?", postID).
			Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *discussionRepository) CreateReply(ctx context.Context, reply *models.PostReply) error {
	if err := r.db.WithContext(ctx).Create(reply).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *discussionRepository) ListReplies(ctx context.Context, postID uint) ([]models.PostReply, error) {
	var replies []models.PostReply
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&replies).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return replies, nil
}
