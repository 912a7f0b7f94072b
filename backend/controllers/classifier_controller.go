package controllers

import (
	"errors"
	"phishlms/backend/config"
	"phishlms/backend/services"
	"phishlms/backend/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClassifierController struct {
	Cfg     *config.Config
	Content *services.ContentService
}

func NewClassifierController(db *gorm.DB, cfg *config.Config) *ClassifierController {
	return &ClassifierController{Cfg: cfg, Content: services.NewContentService(db)}
}

// ClassifyUser godoc
// @Summary Classify a user by score
// @Description Applies the score-to-tier mapping directly to a user
// @Tags classifier
// @Produce json
// @Param id path int true "User ID"
// @Param score query number true "Exam score (0-100)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /classifier/classify/{id} [post]
func (cc *ClassifierController) ClassifyUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	score, err := strconv.ParseFloat(c.Query("score"), 64)
	if err != nil {
		return utils.ValidationError(c, "Score must be a number")
	}

	classification, err := cc.Content.ApplyClassification(uint(userID), score)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not update user")
	}

	return c.JSON(fiber.Map{
		"user_id":        userID,
		"classification": classification,
	})
}
