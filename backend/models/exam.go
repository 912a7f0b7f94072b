package models

import "gorm.io/gorm"

type ExamQuestion struct {
	gorm.Model
	Question      string
	Options       string // JSON array of options
	CorrectAnswer int    // index into Options
	Explanation   string
	SequenceOrder int
}

// ExamResult is append-only: every submission creates a new row and the
// history is never rewritten.
type ExamResult struct {
	gorm.Model
	UserID         uint `gorm:"index"`
	Score          float64
	TotalQuestions int
	CorrectAnswers int
	Classification string
	TimeTaken      int // seconds
}
