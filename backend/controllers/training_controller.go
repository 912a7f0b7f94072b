package controllers

import (
	"errors"
	"phishlms/backend/config"
	"phishlms/backend/models"
	"phishlms/backend/services"
	"phishlms/backend/utils"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TrainingController struct {
	Cfg     *config.Config
	Content *services.ContentService
}

func NewTrainingController(db *gorm.DB, cfg *config.Config) *TrainingController {
	return &TrainingController{Cfg: cfg, Content: services.NewContentService(db)}
}

// GetCoursesByLevel godoc
// @Summary List courses for a difficulty tier
// @Tags training
// @Produce json
// @Param level path string true "beginner, intermediate or advanced"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /training/courses/{level} [get]
func (tc *TrainingController) GetCoursesByLevel(c *fiber.Ctx) error {
	level := c.Params("level")
	if !services.ValidTier(level) {
		return utils.ValidationError(c, "Unknown difficulty level")
	}

	courses, err := tc.Content.CoursesByLevel(level)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		result = append(result, courseProjection(&course))
	}

	return c.JSON(result)
}

// GetCourseContent godoc
// @Summary List training content for a course
// @Tags training
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /training/content/{id} [get]
func (tc *TrainingController) GetCourseContent(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	content, err := tc.Content.CourseContent(uint(courseID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	result := make([]fiber.Map, 0, len(content))
	for _, item := range content {
		result = append(result, fiber.Map{
			"id":           item.ID,
			"course_id":    item.CourseID,
			"title":        item.Title,
			"content":      item.Body,
			"content_type": item.ContentType,
			"order":        item.Position,
			"duration":     item.Duration,
		})
	}

	return c.JSON(result)
}

// MarkComplete godoc
// @Summary Mark a course complete
// @Description Idempotently adds the course to the user's completed set
// @Tags training
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /training/complete/{id} [post]
func (tc *TrainingController) MarkComplete(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	if err := tc.Content.MarkComplete(userID, uint(courseID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User or course not found")
		}
		return utils.InternalServerError(c, "Could not update completion")
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Course " + c.Params("id") + " marked as complete",
	})
}

// GetProgress godoc
// @Summary Learning progress
// @Description Returns completed and total course counts with a percentage
// @Tags training
// @Produce json
// @Success 200 {object} services.ProgressSummary
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /training/progress [get]
func (tc *TrainingController) GetProgress(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, tc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	progress, err := tc.Content.Progress(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(progress)
}

func courseProjection(course *models.Course) fiber.Map {
	return fiber.Map{
		"id":            course.ID,
		"title":         course.Title,
		"description":   course.Description,
		"difficulty":    course.Difficulty,
		"content_type":  course.ContentType,
		"duration":      course.Duration,
		"modules":       splitList(course.Modules),
		"prerequisites": splitList(course.Prerequisites),
	}
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
