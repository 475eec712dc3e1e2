package server

import (
	"mindease/internal/models"
	"mindease/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /profile/:id
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.Get(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(profile)
}

// UpdateProfile handles PUT /profile. Absent fields are stored as null,
// not left unchanged (full-overwrite PUT semantics).
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		UserID   uint    `json:"userId"`
		Name     *string `json:"name"`
		Nickname *string `json:"nickname"`
		Bio      *string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.profileService.Update(c.UserContext(), service.UpdateInput{
		UserID:   req.UserID,
		Name:     req.Name,
		Nickname: req.Nickname,
		Bio:      req.Bio,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Profile updated"})
}

// UploadAvatar handles POST /profile/upload (multipart form)
func (s *Server) UploadAvatar(c *fiber.Ctx) error {
	file, err := formUpload(c, "avatar")
	if err != nil {
		return respondServiceError(c, err)
	}

	avatarURL, err := s.profileService.UploadAvatar(
		c.UserContext(), formUint(c, "userId"), file)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"avatarUrl": avatarURL})
}
