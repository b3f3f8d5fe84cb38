package handlers

import (
	"leafscan/internal/dto"
	"leafscan/internal/service"
	"leafscan/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService      *service.ChatService
	knowledgeService *service.KnowledgeService
	logger           *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, knowledgeService *service.KnowledgeService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService:      chatService,
		knowledgeService: knowledgeService,
		logger:           logger,
	}
}

// SendMessage godoc
// @Summary Ask LiAn
// @Description Answer a farming question. External models are tried first, then the offline knowledge base.
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message"
// @Security Bearer
// @Success 200 {object} dto.ChatReply
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/chatbot/message [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	reply, err := h.chatService.SendMessage(c.UserContext(), userID, req.Message)
	if err != nil {
		h.logger.Error("Chat failed", zap.String("user_id", userID.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process message",
		})
	}

	return c.JSON(reply)
}

// History godoc
// @Summary Chat history
// @Tags chatbot
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ChatHistoryItem
// @Failure 401 {object} map[string]string
// @Router /api/v1/chatbot/history [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	items, err := h.chatService.History(c.UserContext(), userID)
	if err != nil {
		h.logger.Error("Failed to load history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	return c.JSON(items)
}

// ClearHistory godoc
// @Summary Clear chat history
// @Tags chatbot
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/chatbot/history [delete]
func (h *ChatHandler) ClearHistory(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if _, err := h.chatService.ClearHistory(c.UserContext(), userID); err != nil {
		h.logger.Error("Failed to clear history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clear history",
		})
	}

	return c.JSON(dto.MessageResponse{Message: "Chat history cleared"})
}

// Status godoc
// @Summary Answering mode
// @Description Reports which provider answers first and the knowledge base size
// @Tags chatbot
// @Produce json
// @Success 200 {object} dto.ChatStatus
// @Router /api/v1/chatbot/status [get]
func (h *ChatHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.chatService.Status())
}

// ReloadKnowledge godoc
// @Summary Reload the knowledge base
// @Description Rebuilds the offline knowledge base from the database
// @Tags chatbot
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.KnowledgeReloadResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/chatbot/knowledge/reload [post]
func (h *ChatHandler) ReloadKnowledge(c *fiber.Ctx) error {
	n, source, err := h.knowledgeService.Reload(c.UserContext())
	if err != nil {
		h.logger.Error("Knowledge reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Knowledge reload failed",
		})
	}

	return c.JSON(dto.KnowledgeReloadResponse{Entries: n, Source: source})
}
