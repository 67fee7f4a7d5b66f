package course

import "gorm.io/gorm"

// Item type discriminator values for SetItem
const (
	ItemTypeLesson = "lesson"
	ItemTypeQuiz   = "quiz"
)

// SetItem positions a lesson or a quiz inside a set. The (ItemType, ItemID)
// pair is a tagged reference: exactly one target kind, never both.
type SetItem struct {
	gorm.Model
	SetID     uint   `json:"set_id" gorm:"index;not null"`
	ItemType  string `json:"item_type" gorm:"not null"` // lesson, quiz
	ItemID    uint   `json:"item_id" gorm:"not null"`
	SortOrder int    `json:"sort_order"` // position within the set, gaps allowed
	IsDeleted bool   `gorm:"default:false"`
}
