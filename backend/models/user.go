package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name           string `gorm:"not null"`
	Email          string `gorm:"unique;not null"`
	PasswordHash   string `gorm:"not null"`
	Role           string `gorm:"default:user"`     // user, admin
	Classification string `gorm:"default:beginner"` // beginner, intermediate, advanced
	// ExamScore is nil until the first exam submission. Classification always
	// matches the latest score once set.
	ExamScore        *float64
	CurrentCourseID  *uint
	CompletedCourses []CompletedCourse
}

// CompletedCourse is one element of a user's completed-course set. The unique
// index gives the set semantics: duplicate completions are conflict no-ops.
type CompletedCourse struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex:idx_user_course"`
	CourseID uint `gorm:"uniqueIndex:idx_user_course"`
}
