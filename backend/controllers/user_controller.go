package controllers

import (
	"phishlms/backend/config"
	"phishlms/backend/models"
	"phishlms/backend/services"
	"phishlms/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB      *gorm.DB
	Cfg     *config.Config
	Content *services.ContentService
}

func NewUserController(db *gorm.DB, cfg *config.Config) *UserController {
	return &UserController{DB: db, Cfg: cfg, Content: services.NewContentService(db)}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated user's profile and learning progress
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	progress, err := uc.Content.Progress(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var completed []models.CompletedCourse
	if err := uc.DB.Where("user_id = ?", userID).Find(&completed).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}
	courseIDs := make([]uint, 0, len(completed))
	for _, cc := range completed {
		courseIDs = append(courseIDs, cc.CourseID)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":                user.ID,
		"name":              user.Name,
		"email":             user.Email,
		"role":              user.Role,
		"classification":    user.Classification,
		"exam_score":        user.ExamScore,
		"completed_courses": courseIDs,
		"current_course":    user.CurrentCourseID,
		"created_at":        user.CreatedAt,
		"progress":          progress,
	})
}
