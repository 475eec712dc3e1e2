package server

import (
	"github.com/gofiber/fiber/v2"

	"mindease/internal/models"
)

// GetChats handles GET /chats/:userId
func (s *Server) GetChats(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	messages, err := s.chatService.ListForUser(c.UserContext(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(messages)
}

// CreateChat handles POST /chats
func (s *Server) CreateChat(c *fiber.Ctx) error {
	var req struct {
		UserID  uint   `json:"userId"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.chatService.Create(c.UserContext(), req.UserID, req.Content); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message saved successfully",
	})
}
