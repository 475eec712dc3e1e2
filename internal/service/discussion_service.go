package service

import (
	"context"

	"mindease/internal/models"
	"mindease/internal/repository"
	"mindease/internal/validation"
)

// DiscussionService provides discussion, like and reply business logic.
type DiscussionService struct {
	discussions repository.DiscussionRepository
	enricher    *Enricher
	uploads     *UploadStore
}

// NewDiscussionService returns a new DiscussionService.
func NewDiscussionService(discussions repository.DiscussionRepository, enricher *Enricher, uploads *UploadStore) *DiscussionService {
	return &DiscussionService{
		discussions: discussions,
		enricher:    enricher,
		uploads:     uploads,
	}
}

// CreateDiscussionInput is the input for posting a discussion. Batch and
// Department are optional; IsPublic marks the post as publicly visible.
type CreateDiscussionInput struct {
	UserID     uint
	Batch      *string
	Department *string
	Content    string
	IsPublic   bool
	File       *FileUpload
}

// Create stores a new discussion, saving the optional attachment first.
func (s *DiscussionService) Create(ctx context.Context, in CreateDiscussionInput) (*models.Discussion, error) {
	if in.UserID == 0 || validation.Blank(in.Content) {
		return nil, models.NewValidationError("Missing user_id or content")
	}

	d := &models.Discussion{
		UserID:     in.UserID,
		Batch:      normalize(in.Batch),
		Department: normalize(in.Department),
		Content:    in.Content,
		IsPublic:   in.IsPublic,
	}

	if in.File != nil {
		path, err := s.uploads.Save("", in.File)
		if err != nil {
			return nil, err
		}
		d.FilePath = &path
	}

	if err := s.discussions.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// CreateDepartmentInput is the input for a department-level discussion.
type CreateDepartmentInput struct {
	UserID     uint
	Department string
	Content    string
	File       *FileUpload
}

// CreateDepartment stores a department-level discussion: batch is always
// null and the post is never public.
func (s *DiscussionService) CreateDepartment(ctx context.Context, in CreateDepartmentInput) (*models.Discussion, error) {
	if in.UserID == 0 || validation.AnyBlank(in.Department, in.Content) {
		return nil, models.NewValidationError("Missing required fields")
	}

	d := &models.Discussion{
		UserID:     in.UserID,
		Department: &in.Department,
		Content:    in.Content,
		IsPublic:   false,
	}

	if in.File != nil {
		path, err := s.uploads.Save("", in.File)
		if err != nil {
			return nil, err
		}
		d.FilePath = &path
	}

	if err := s.discussions.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListClass returns class-scoped discussions (newest first) with author names.
func (s *DiscussionService) ListClass(ctx context.Context, batch, department string) ([]models.DiscussionWithAuthor, error) {
	if validation.AnyBlank(batch, department) {
		return nil, models.NewValidationError("Missing batch or department")
	}
	discussions, err := s.discussions.ListClass(ctx, batch, department)
	if err != nil {
		return nil, err
	}
	return s.withAuthors(ctx, discussions)
}

// ListDepartment returns department-level discussions (newest first) with
// author names. Class-scoped posts are a disjoint path and excluded.
func (s *DiscussionService) ListDepartment(ctx context.Context, department string) ([]models.DiscussionWithAuthor, error) {
	if validation.Blank(department) {
		return nil, models.NewValidationError("Missing department")
	}
	discussions, err := s.discussions.ListDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	return s.withAuthors(ctx, discussions)
}

// ListPublic returns public discussions (newest first) with author names.
func (s *DiscussionService) ListPublic(ctx context.Context) ([]models.DiscussionWithAuthor, error) {
	discussions, err := s.discussions.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	return s.withAuthors(ctx, discussions)
}

// Like records the user's like on the post. Repeated likes for the same
// (post, user) pair are no-ops that still report success.
func (s *DiscussionService) Like(ctx context.Context, postID, userID uint) error {
	if userID == 0 {
		return models.NewValidationError("Missing user_id")
	}
	return s.discussions.LikeOnce(ctx, postID, userID)
}

// LikeCount returns the number of likes on the post.
func (s *DiscussionService) LikeCount(ctx context.Context, postID uint) (int64, error) {
	return s.discussions.CountLikes(ctx, postID)
}

// ReplyInput is the input for replying to a discussion.
type ReplyInput struct {
	PostID  uint
	UserID  uint
	Content string
	File    *FileUpload
}

// Reply appends a reply to the post, saving the optional attachment first.
func (s *DiscussionService) Reply(ctx context.Context, in ReplyInput) (*models.PostReply, error) {
	if in.UserID == 0 || validation.Blank(in.Content) {
		return nil, models.NewValidationError("Missing user_id or content")
	}

	reply := &models.PostReply{
		PostID:  in.PostID,
		UserID:  in.UserID,
		Content: in.Content,
	}

	if in.File != nil {
		path, err := s.uploads.Save("", in.File)
		if err != nil {
			return nil, err
		}
		reply.FilePath = &path
	}

	if err := s.discussions.CreateReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// ListReplies returns the post's replies oldest first with author names.
func (s *DiscussionService) ListReplies(ctx context.Context, postID uint) ([]models.PostReplyWithAuthor, error) {
	replies, err := s.discussions.ListReplies(ctx, postID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(replies))
	for i, r := range replies {
		ids[i] = r.UserID
	}
	authors, err := s.enricher.AuthorsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.PostReplyWithAuthor, len(replies))
	for i, r := range replies {
		enriched[i] = models.PostReplyWithAuthor{
			PostReply: r,
			Name:      authors[r.UserID].Name,
		}
	}
	return enriched, nil
}

func (s *DiscussionService) withAuthors(ctx context.Context, discussions []models.Discussion) ([]models.DiscussionWithAuthor, error) {
	ids := make([]uint, len(discussions))
	for i, d := range discussions {
		ids[i] = d.UserID
	}
	authors, err := s.enricher.AuthorsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.DiscussionWithAuthor, len(discussions))
	for i, d := range discussions {
		enriched[i] = models.DiscussionWithAuthor{
			Discussion: d,
			Name:       authors[d.UserID].Name,
		}
	}
	return enriched, nil
}

func normalize(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
