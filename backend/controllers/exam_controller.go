package controllers

import (
	"encoding/json"
	"errors"
	"phishlms/backend/config"
	"phishlms/backend/services"
	"phishlms/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ExamController struct {
	Cfg  *config.Config
	Exam *services.ExamService
}

func NewExamController(db *gorm.DB, cfg *config.Config) *ExamController {
	return &ExamController{Cfg: cfg, Exam: services.NewExamService(db)}
}

// GetQuestions godoc
// @Summary List exam questions
// @Description Returns the question bank in order, without correct answers
// @Tags exam
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exam/questions [get]
func (ec *ExamController) GetQuestions(c *fiber.Ctx) error {
	questions, err := ec.Exam.Questions()
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	result := make([]fiber.Map, 0, len(questions))
	for _, q := range questions {
		var options []string
		if err := json.Unmarshal([]byte(q.Options), &options); err != nil {
			// Malformed row; leave it out rather than serving a null option list.
			continue
		}

		result = append(result, fiber.Map{
			"id":       q.ID,
			"question": q.Question,
			"options":  options,
			"order":    q.SequenceOrder,
		})
	}

	return c.JSON(result)
}

// SubmitExam godoc
// @Summary Submit exam answers
// @Description Grades the submission, records the result and reclassifies the user
// @Tags exam
// @Accept json
// @Produce json
// @Param input body map[string]interface{} true "Selected option index per question"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exam/submit [post]
func (ec *ExamController) SubmitExam(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Answers   []int `json:"answers"`
		TimeTaken int   `json:"time_taken"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result, err := ec.Exam.Evaluate(userID, input.Answers, input.TimeTaken)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return utils.NotFound(c, "User not found")
		case errors.Is(err, services.ErrAnswerCountMismatch):
			return utils.ValidationError(c, "Submission must contain one answer per question")
		default:
			return utils.InternalServerError(c, "Could not save exam result")
		}
	}

	return c.JSON(fiber.Map{
		"user_id":         result.UserID,
		"score":           result.Score,
		"total_questions": result.TotalQuestions,
		"correct_answers": result.CorrectAnswers,
		"classification":  result.Classification,
		"submitted_at":    result.CreatedAt,
	})
}

// GetHistory godoc
// @Summary Exam history
// @Description Returns the user's exam results, newest first
// @Tags exam
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /exam/history [get]
func (ec *ExamController) GetHistory(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	results, err := ec.Exam.History(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	history := make([]fiber.Map, 0, len(results))
	for _, r := range results {
		history = append(history, fiber.Map{
			"score":           r.Score,
			"total_questions": r.TotalQuestions,
			"correct_answers": r.CorrectAnswers,
			"classification":  r.Classification,
			"time_taken":      r.TimeTaken,
			"submitted_at":    r.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{"history": history})
}
