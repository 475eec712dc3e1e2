package service

import (
	"context"
	"fmt"
	"time"

	"mindease/internal/models"
	"mindease/internal/observability"
	"mindease/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// ProfileService provides profile read/update and avatar upload logic.
type ProfileService struct {
	users    repository.UserRepository
	friends  repository.FriendRepository
	enricher *Enricher
	uploads  *UploadStore
}

// NewProfileService returns a new ProfileService.
func NewProfileService(users repository.UserRepository, friends repository.FriendRepository, enricher *Enricher, uploads *UploadStore) *ProfileService {
	return &ProfileService{
		users:    users,
		friends:  friends,
		enricher: enricher,
		uploads:  uploads,
	}
}

// Profile is the aggregate returned by the profile endpoint.
type Profile struct {
	User            ProfileUser             `json:"user"`
	FriendsCount    int64                   `json:"friendsCount"`
	PendingRequests []models.PendingRequest `json:"pendingRequests"`
}

// ProfileUser is the user projection shown on the profile page.
type ProfileUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Nickname  *string   `json:"nickname"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Get returns the user's profile with the friend summary: the accepted
// relation count plus each pending incoming request resolved to the
// requester's identity.
func (s *ProfileService) Get(ctx context.Context, userID uint) (*Profile, error) {
	span, ctx := observability.NewSpan(ctx, "profile.Get")
	span.AddAttributes(attribute.Int("user.id", int(userID)))
	defer span.End()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	friendsCount, err := s.friends.CountAccepted(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending, err := s.friends.ListPendingFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	requesterIDs := make([]uint, len(pending))
	for i, rel := range pending {
		requesterIDs[i] = rel.UserID
	}
	requesters, err := s.enricher.AuthorsByID(ctx, requesterIDs)
	if err != nil {
		return nil, err
	}

	requests := make([]models.PendingRequest, len(pending))
	for i, rel := range pending {
		requester := requesters[rel.UserID]
		requests[i] = models.PendingRequest{
			RequestID:     rel.ID,
			RequesterID:   rel.UserID,
			RequesterName: requester.Name,
			AvatarURL:     requester.AvatarURL,
		}
	}

	return &Profile{
		User: ProfileUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Nickname:  user.Nickname,
			Bio:       user.Bio,
			AvatarURL: user.AvatarURL,
			CreatedAt: user.CreatedAt,
		},
		FriendsCount:    friendsCount,
		PendingRequests: requests,
	}, nil
}

// UpdateInput carries the full-overwrite profile fields; a nil field is
// stored as null, not left unchanged.
type UpdateInput struct {
	UserID   uint
	Name     *string
	Nickname *string
	Bio      *string
}

// Update applies a full-overwrite profile update.
func (s *ProfileService) Update(ctx context.Context, in UpdateInput) error {
	if in.UserID == 0 {
		return models.NewValidationError("userId required")
	}
	return s.users.UpdateProfile(ctx, in.UserID, repository.ProfileUpdate{
		Name:     in.Name,
		Nickname: in.Nickname,
		Bio:      in.Bio,
	})
}

// UploadAvatar stores the avatar file and persists its derived URL on the
// user record.
func (s *ProfileService) UploadAvatar(ctx context.Context, userID uint, file *FileUpload) (string, error) {
	if userID == 0 || file == nil || len(file.Content) == 0 {
		return "", models.NewValidationError("Missing userId or file")
	}

	url, err := s.uploads.Save(fmt.Sprintf("avatar_%d_", userID), file)
	if err != nil {
		return "", err
	}

	if err := s.users.SetAvatarURL(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}
