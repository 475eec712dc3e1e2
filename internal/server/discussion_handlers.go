package server

import (
	"strconv"

	"mindease/internal/models"
	"mindease/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateDiscussion handles POST /discussions (multipart form)
func (s *Server) CreateDiscussion(c *fiber.Ctx) error {
	file, err := formUpload(c, "file")
	if err != nil {
		return respondServiceError(c, err)
	}

	in := service.CreateDiscussionInput{
		UserID:   formUint(c, "user_id"),
		Content:  c.FormValue("content"),
		IsPublic: c.FormValue("is_public") == "true",
		File:     file,
	}
	if batch := c.FormValue("batch"); batch != "" {
		in.Batch = &batch
	}
	if department := c.FormValue("department"); department != "" {
		in.Department = &department
	}

	discussion, err := s.discussionService.Create(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"id":      discussion.ID,
	})
}

// GetClassDiscussions handles GET /discussions?batch=&department=
func (s *Server) GetClassDiscussions(c *fiber.Ctx) error {
	discussions, err := s.discussionService.ListClass(
		c.UserContext(), c.Query("batch"), c.Query("department"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(discussions)
}

// CreateDepartmentDiscussion handles POST /discussions/department (multipart form)
func (s *Server) CreateDepartmentDiscussion(c *fiber.Ctx) error {
	file, err := formUpload(c, "file")
	if err != nil {
		return respondServiceError(c, err)
	}

	discussion, err := s.discussionService.CreateDepartment(c.UserContext(), service.CreateDepartmentInput{
		UserID:     formUint(c, "user_id"),
		Department: c.FormValue("department"),
		Content:    c.FormValue("content"),
		File:       file,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"id":      discussion.ID,
	})
}

// GetDepartmentDiscussions handles GET /discussions/department/:dept
func (s *Server) GetDepartmentDiscussions(c *fiber.Ctx) error {
	discussions, err := s.discussionService.ListDepartment(c.UserContext(), c.Params("dept"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(discussions)
}

// GetPublicDiscussions handles GET /discussions/public/all
func (s *Server) GetPublicDiscussions(c *fiber.Ctx) error {
	discussions, err := s.discussionService.ListPublic(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(discussions)
}

// LikeDiscussion handles POST /discussions/:id/like. Liking the same post
// twice with the same user is a no-op that still reports success.
func (s *Server) LikeDiscussion(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.discussionService.Like(c.UserContext(), postID, req.UserID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetLikeCount handles GET /discussions/:id/likes
func (s *Server) GetLikeCount(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	total, err := s.discussionService.LikeCount(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"total": total})
}

// ReplyToDiscussion handles POST /discussions/:id/reply (multipart form)
func (s *Server) ReplyToDiscussion(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	file, err := formUpload(c, "file")
	if err != nil {
		return respondServiceError(c, err)
	}

	if _, err := s.discussionService.Reply(c.UserContext(), service.ReplyInput{
		PostID:  postID,
		UserID:  formUint(c, "user_id"),
		Content: c.FormValue("content"),
		File:    file,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetReplies handles GET /discussions/:id/replies
func (s *Server) GetReplies(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replies, err := s.discussionService.ListReplies(c.UserContext(), postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(replies)
}

// formUint parses a multipart form value as a uint; malformed or missing
// values yield 0, which the service layer rejects.
func formUint(c *fiber.Ctx, field string) uint {
	v, err := strconv.ParseUint(c.FormValue(field), 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
