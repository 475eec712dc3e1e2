package service

import (
	"context"

	"mindease/internal/models"
	"mindease/internal/repository"
)

// Function-field stubs let each test override just the calls it cares about.

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	existsFn        func(context.Context, uint) (bool, error)
	updateProfileFn func(context.Context, uint, repository.ProfileUpdate) error
	setAvatarURLFn  func(context.Context, uint, string) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *userRepoStub) UpdateProfile(ctx context.Context, id uint, update repository.ProfileUpdate) error {
	return s.updateProfileFn(ctx, id, update)
}
func (s *userRepoStub) SetAvatarURL(ctx context.Context, id uint, avatarURL string) error {
	return s.setAvatarURLFn(ctx, id, avatarURL)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:  func(context.Context, *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) {
			return nil, nil
		},
		existsFn:        func(context.Context, uint) (bool, error) { return true, nil },
		updateProfileFn: func(context.Context, uint, repository.ProfileUpdate) error { return nil },
		setAvatarURLFn:  func(context.Context, uint, string) error { return nil },
	}
}

type chatRepoStub struct {
	createFn     func(context.Context, *models.ChatMessage) error
	listByUserFn func(context.Context, uint) ([]models.ChatMessage, error)
}

func (s *chatRepoStub) Create(ctx context.Context, msg *models.ChatMessage) error {
	return s.createFn(ctx, msg)
}
func (s *chatRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.ChatMessage, error) {
	return s.listByUserFn(ctx, userID)
}

func noopChatRepo() *chatRepoStub {
	return &chatRepoStub{
		createFn:     func(context.Context, *models.ChatMessage) error { return nil },
		listByUserFn: func(context.Context, uint) ([]models.ChatMessage, error) { return nil, nil },
	}
}

type discussionRepoStub struct {
	createFn         func(context.Context, *models.Discussion) error
	getByIDFn        func(context.Context, uint) (*models.Discussion, error)
	listClassFn      func(context.Context, string, string) ([]models.Discussion, error)
	listDepartmentFn func(context.Context, string) ([]models.Discussion, error)
	listPublicFn     func(context.Context) ([]models.Discussion, error)
	likeOnceFn       func(context.Context, uint, uint) error
	countLikesFn     func(context.Context, uint) (int64, error)
	createReplyFn    func(context.Context, *models.PostReply) error
	listRepliesFn    func(context.Context, uint) ([]models.PostReply, error)
}

func (s *discussionRepoStub) Create(ctx context.Context, d *models.Discussion) error {
	return s.createFn(ctx, d)
}
func (s *discussionRepoStub) GetByID(ctx context.Context, id uint) (*models.Discussion, error) {
	return s.getByIDFn(ctx, id)
}
func (s *discussionRepoStub) ListClass(ctx context.Context, batch, department string) ([]models.Discussion, error) {
	return s.listClassFn(ctx, batch, department)
}
func (s *discussionRepoStub) ListDepartment(ctx context.Context, department string) ([]models.Discussion, error) {
	return s.listDepartmentFn(ctx, department)
}
func (s *discussionRepoStub) ListPublic(ctx context.Context) ([]models.Discussion, error) {
	return s.listPublicFn(ctx)
}
func (s *discussionRepoStub) LikeOnce(ctx context.Context, postID, userID uint) error {
	return s.likeOnceFn(ctx, postID, userID)
}
func (s *discussionRepoStub) CountLikes(ctx context.Context, postID uint) (int64, error) {
	return s.countLikesFn(ctx, postID)
}
func (s *discussionRepoStub) CreateReply(ctx context.Context, reply *models.PostReply) error {
	return s.createReplyFn(ctx, reply)
}
func (s *discussionRepoStub) ListReplies(ctx context.Context, postID uint) ([]models.PostReply, error) {
	return s.listRepliesFn(ctx, postID)
}

func noopDiscussionRepo() *discussionRepoStub {
	return &discussionRepoStub{
		createFn:         func(context.Context, *models.Discussion) error { return nil },
		getByIDFn:        func(context.Context, uint) (*models.Discussion, error) { return &models.Discussion{}, nil },
		listClassFn:      func(context.Context, string, string) ([]models.Discussion, error) { return nil, nil },
		listDepartmentFn: func(context.Context, string) ([]models.Discussion, error) { return nil, nil },
		listPublicFn:     func(context.Context) ([]models.Discussion, error) { return nil, nil },
		likeOnceFn:       func(context.Context, uint, uint) error { return nil },
		countLikesFn:     func(context.Context, uint) (int64, error) { return 0, nil },
		createReplyFn:    func(context.Context, *models.PostReply) error { return nil },
		listRepliesFn:    func(context.Context, uint) ([]models.PostReply, error) { return nil, nil },
	}
}

type friendRepoStub struct {
	countAcceptedFn  func(context.Context, uint) (int64, error)
	listPendingForFn func(context.Context, uint) ([]models.FriendRelation, error)
	createFn         func(context.Context, *models.FriendRelation) error
}

func (s *friendRepoStub) CountAccepted(ctx context.Context, userID uint) (int64, error) {
	return s.countAcceptedFn(ctx, userID)
}
func (s *friendRepoStub) ListPendingFor(ctx context.Context, userID uint) ([]models.FriendRelation, error) {
	return s.listPendingForFn(ctx, userID)
}
func (s *friendRepoStub) Create(ctx context.Context, relation *models.FriendRelation) error {
	return s.createFn(ctx, relation)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		countAcceptedFn:  func(context.Context, uint) (int64, error) { return 0, nil },
		listPendingForFn: func(context.Context, uint) ([]models.FriendRelation, error) { return nil, nil },
		createFn:         func(context.Context, *models.FriendRelation) error { return nil },
	}
}
