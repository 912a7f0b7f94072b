package services

import (
	"errors"
	"phishlms/backend/models"
	"time"

	"gorm.io/gorm"
)

// ErrAnswerCountMismatch means the submission does not carry one answer per
// question in the bank.
var ErrAnswerCountMismatch = errors.New("answer count does not match question count")

type ExamService struct {
	DB *gorm.DB
}

func NewExamService(db *gorm.DB) *ExamService {
	return &ExamService{DB: db}
}

// Questions returns the exam question bank in sequence order.
func (s *ExamService) Questions() ([]models.ExamQuestion, error) {
	var questions []models.ExamQuestion
	if err := s.DB.Order("sequence_order ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Evaluate grades a submission against the question bank, appends an
// ExamResult to the user's history and moves the user's classification to
// match the new score. Returns gorm.ErrRecordNotFound when the user does not
// exist and ErrAnswerCountMismatch when the answer list is the wrong length.
func (s *ExamService) Evaluate(userID uint, answers []int, timeTaken int) (*models.ExamResult, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	questions, err := s.Questions()
	if err != nil {
		return nil, err
	}

	key := make([]int, len(questions))
	for i, q := range questions {
		key[i] = q.CorrectAnswer
	}

	if len(answers) != len(key) {
		return nil, ErrAnswerCountMismatch
	}

	correct := countCorrect(answers, key)
	score := 0.0
	if len(key) > 0 {
		score = float64(correct) / float64(len(key)) * 100
	}
	classification := ClassifyScore(score)

	result := models.ExamResult{
		UserID:         userID,
		Score:          score,
		TotalQuestions: len(key),
		CorrectAnswers: correct,
		Classification: classification,
		TimeTaken:      timeTaken,
	}
	if err := s.DB.Create(&result).Error; err != nil {
		return nil, err
	}

	// Single-statement update keyed by id; no read-modify-write on the user
	// row, so concurrent submissions cannot interleave partial states.
	if err := s.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"classification": classification,
		"exam_score":     score,
		"updated_at":     time.Now(),
	}).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// History returns the user's exam results, newest first.
func (s *ExamService) History(userID uint) ([]models.ExamResult, error) {
	var results []models.ExamResult
	if err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func countCorrect(answers, key []int) int {
	correct := 0
	for i, answer := range answers {
		if answer == key[i] {
			correct++
		}
	}
	return correct
}
