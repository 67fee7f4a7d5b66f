package course

import "gorm.io/gorm"

// Quiz represents a gradeable quiz referenced from set items
type Quiz struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	PassingScore int    `json:"passing_score" gorm:"default:70"` // minimum percentage to pass
	IsDeleted    bool   `gorm:"default:false"`

	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

// Question represents a single-select question within a quiz
type Question struct {
	gorm.Model
	QuizID    uint   `json:"quiz_id" gorm:"index;not null"`
	Text      string `json:"text"`
	SortOrder int    `json:"sort_order"` // position within the quiz, gaps allowed
	IsDeleted bool   `gorm:"default:false"`

	Options []Option `json:"options,omitempty" gorm:"foreignKey:QuestionID"`
}

// Option represents an answer option for a question
type Option struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	IsDeleted  bool   `gorm:"default:false"`
}
