package controllers

import (
	"phishlms/backend/config"
	"phishlms/backend/services"
	"phishlms/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminController struct {
	Cfg     *config.Config
	Content *services.ContentService
}

func NewAdminController(db *gorm.DB, cfg *config.Config) *AdminController {
	return &AdminController{Cfg: cfg, Content: services.NewContentService(db)}
}

// SeedData godoc
// @Summary Reset and seed sample data
// @Description Wipes courses, content and questions and re-inserts the samples
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/seed [post]
func (ac *AdminController) SeedData(c *fiber.Ctx) error {
	if err := ac.Content.SeedSampleData(); err != nil {
		return utils.InternalServerError(c, "Could not seed data")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Sample data initialized",
	})
}
