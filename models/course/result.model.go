package course

import "gorm.io/gorm"

// Result is one scored quiz attempt. Rows are append only: they are never
// updated or individually deleted, so there is no IsDeleted flag. A partial
// unique index on (user_id, quiz_id) WHERE passed guarantees a single
// authoritative pass event per user and quiz.
type Result struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"index;not null"`
	QuizID uint `json:"quiz_id" gorm:"index;not null"`
	Score  int  `json:"score"` // 0-100, rounded
	Passed bool `json:"passed" gorm:"default:false"`
}
