package course

import "gorm.io/gorm"

// Lesson represents a text lesson referenced from set items
type Lesson struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content" gorm:"type:text"`
	IsDeleted   bool   `gorm:"default:false"`
}
