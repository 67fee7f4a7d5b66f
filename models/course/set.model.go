package course

import "gorm.io/gorm"

// Set represents an ordered chapter of items within a course
type Set struct {
	gorm.Model
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Title     string `json:"title"`
	SortOrder int    `json:"sort_order"` // position within the course, gaps allowed
	IsDeleted bool   `gorm:"default:false"`
}
