package course

import "gorm.io/gorm"

// Enrollment tracks a user's enrollment in a course
type Enrollment struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null"`
	CourseID  uint `json:"course_id" gorm:"index;not null"`
	IsDeleted bool `gorm:"default:false"`
}
