package services

import (
	"phishlms/backend/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentService struct {
	DB *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{DB: db}
}

// ProgressSummary aggregates a user's completed-course count against the
// catalog.
type ProgressSummary struct {
	CompletedCourses int64   `json:"completed_courses"`
	TotalCourses     int64   `json:"total_courses"`
	Percentage       float64 `json:"progress_percentage"`
}

// CoursesByLevel returns the courses whose difficulty equals level. Equality
// match only, no nearest-tier fallback.
func (s *ContentService) CoursesByLevel(level string) ([]models.Course, error) {
	var courses []models.Course
	if err := s.DB.Where("difficulty = ?", level).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// CourseContent returns a course's training content ordered by position.
// Returns gorm.ErrRecordNotFound when the course does not exist.
func (s *ContentService) CourseContent(courseID uint) ([]models.TrainingContent, error) {
	var course models.Course
	if err := s.DB.First(&course, courseID).Error; err != nil {
		return nil, err
	}

	var content []models.TrainingContent
	if err := s.DB.Where("course_id = ?", courseID).
		Order("position ASC").
		Find(&content).Error; err != nil {
		return nil, err
	}
	return content, nil
}

// MarkComplete adds the course to the user's completed set. Repeated calls
// are no-ops: the insert ignores the unique (user_id, course_id) conflict at
// the store, so concurrent completions cannot double-count. Gating is
// advisory; neither tier nor prerequisites are enforced here.
func (s *ContentService) MarkComplete(userID, courseID uint) error {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return err
	}
	var course models.Course
	if err := s.DB.First(&course, courseID).Error; err != nil {
		return err
	}

	completion := models.CompletedCourse{UserID: userID, CourseID: courseID}
	if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&completion).Error; err != nil {
		return err
	}

	return s.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("updated_at", time.Now()).Error
}

// Progress returns the user's completed count against the full catalog.
// Percentage carries full float precision; an empty catalog yields 0.
func (s *ContentService) Progress(userID uint) (*ProgressSummary, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	var completed int64
	if err := s.DB.Model(&models.CompletedCourse{}).
		Where("user_id = ?", userID).
		Count(&completed).Error; err != nil {
		return nil, err
	}

	var total int64
	if err := s.DB.Model(&models.Course{}).Count(&total).Error; err != nil {
		return nil, err
	}

	return &ProgressSummary{
		CompletedCourses: completed,
		TotalCourses:     total,
		Percentage:       progressPercentage(completed, total),
	}, nil
}

// CompletedCourseTitles returns the titles of the user's completed courses,
// used as chatbot context.
func (s *ContentService) CompletedCourseTitles(userID uint) ([]string, error) {
	var titles []string
	if err := s.DB.Model(&models.Course{}).
		Joins("JOIN completed_courses ON completed_courses.course_id = courses.id").
		Where("completed_courses.user_id = ? AND completed_courses.deleted_at IS NULL", userID).
		Pluck("courses.title", &titles).Error; err != nil {
		return nil, err
	}
	return titles, nil
}

// ApplyClassification classifies a score and writes the tier to the user.
// Returns gorm.ErrRecordNotFound when the user does not exist.
func (s *ContentService) ApplyClassification(userID uint, score float64) (string, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return "", err
	}

	classification := ClassifyScore(score)
	if err := s.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"classification": classification,
		"updated_at":     time.Now(),
	}).Error; err != nil {
		return "", err
	}

	return classification, nil
}

func progressPercentage(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
