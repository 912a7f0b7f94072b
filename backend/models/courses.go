package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string
	Description string
	Difficulty  string // beginner, intermediate, advanced
	ContentType string // video, interactive, scenario, quiz
	Duration    int    // minutes
	// Modules and Prerequisites are comma-separated, in display order.
	Modules       string
	Prerequisites string // titles of courses expected first; advisory only
	Content       []TrainingContent
}

type TrainingContent struct {
	gorm.Model
	CourseID    uint `gorm:"index;uniqueIndex:idx_course_position"`
	Title       string
	Body        string
	ContentType string
	Position    int `gorm:"uniqueIndex:idx_course_position"` // display order within the course
	Duration    int // minutes
}
