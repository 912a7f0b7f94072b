package controllers

import (
	"phishlms/backend/config"
	"phishlms/backend/models"
	"phishlms/backend/services"
	"phishlms/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ChatbotController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Chatbot *services.ChatbotService
	Content *services.ContentService
}

func NewChatbotController(db *gorm.DB, cfg *config.Config) *ChatbotController {
	return &ChatbotController{
		DB:      db,
		Cfg:     cfg,
		Chatbot: services.NewChatbotService(db, cfg),
		Content: services.NewContentService(db),
	}
}

// PostMessage godoc
// @Summary Ask the chatbot a question
// @Description Forwards the message to the completion API with user context and records the exchange
// @Tags chatbot
// @Accept json
// @Produce json
// @Param input body map[string]string true "Message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chatbot/message [post]
func (cc *ChatbotController) PostMessage(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Message == "" {
		return utils.ValidationError(c, "Message is required")
	}

	var user models.User
	if err := cc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	completedTitles, err := cc.Content.CompletedCourseTitles(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	reply := cc.Chatbot.Reply(c.Context(), &user, completedTitles, input.Message)

	if err := cc.Chatbot.SaveExchange(userID, input.Message, reply); err != nil {
		return utils.InternalServerError(c, "Could not save chat history")
	}

	return c.JSON(fiber.Map{"response": reply})
}

// GetHistory godoc
// @Summary Chat history
// @Description Returns the user's chat messages in order
// @Tags chatbot
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /chatbot/history [get]
func (cc *ChatbotController) GetHistory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	messages, err := cc.Chatbot.History(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	history := make([]fiber.Map, 0, len(messages))
	for _, m := range messages {
		history = append(history, fiber.Map{
			"sender":    m.Sender,
			"message":   m.Body,
			"timestamp": m.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{"messages": history})
}
