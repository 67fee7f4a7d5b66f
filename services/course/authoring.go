package courseService

import (
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// CreateSet appends a new set at the end of a course.
func CreateSet(db *gorm.DB, courseID uint, title string) (*courseModels.Set, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, ErrNotFound
	}

	set := courseModels.Set{
		CourseID: courseID,
		Title:    title,
	}

	err := withOrderRetry(func() error {
		set.ID = 0
		return db.Transaction(func(tx *gorm.DB) error {
			set.SortOrder = NextSortOrder(tx, &courseModels.Set{}, "course_id", courseID)
			return tx.Create(&set).Error
		})
	})
	if err != nil {
		return nil, err
	}

	return &set, nil
}

// CreateLesson creates a lesson and appends it to the set in one transaction,
// so a failed append never leaves an unreferenced lesson behind.
func CreateLesson(db *gorm.DB, setID uint, title, description, content string) (*courseModels.Lesson, error) {
	var set courseModels.Set
	if err := db.Where("id = ? AND is_deleted = ?", setID, false).First(&set).Error; err != nil {
		return nil, ErrNotFound
	}

	lesson := courseModels.Lesson{
		Title:       title,
		Description: description,
		Content:     content,
	}

	err := withOrderRetry(func() error {
		lesson.ID = 0
		return db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&lesson).Error; err != nil {
				return err
			}
			item := courseModels.SetItem{
				SetID:     setID,
				ItemType:  courseModels.ItemTypeLesson,
				ItemID:    lesson.ID,
				SortOrder: NextSortOrder(tx, &courseModels.SetItem{}, "set_id", setID),
			}
			return tx.Create(&item).Error
		})
	})
	if err != nil {
		return nil, err
	}

	return &lesson, nil
}

// CreateQuiz creates a quiz and appends it to the set in one transaction.
// A passing score of 0 falls back to the default of 70.
func CreateQuiz(db *gorm.DB, setID uint, title, description string, passingScore int) (*courseModels.Quiz, error) {
	var set courseModels.Set
	if err := db.Where("id = ? AND is_deleted = ?", setID, false).First(&set).Error; err != nil {
		return nil, ErrNotFound
	}

	if passingScore == 0 {
		passingScore = 70
	}
	if passingScore < 0 || passingScore > 100 {
		return nil, ErrValidation
	}

	quiz := courseModels.Quiz{
		Title:        title,
		Description:  description,
		PassingScore: passingScore,
	}

	err := withOrderRetry(func() error {
		quiz.ID = 0
		return db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&quiz).Error; err != nil {
				return err
			}
			item := courseModels.SetItem{
				SetID:     setID,
				ItemType:  courseModels.ItemTypeQuiz,
				ItemID:    quiz.ID,
				SortOrder: NextSortOrder(tx, &courseModels.SetItem{}, "set_id", setID),
			}
			return tx.Create(&item).Error
		})
	})
	if err != nil {
		return nil, err
	}

	return &quiz, nil
}

// CreateQuestion appends a question at the end of a quiz.
func CreateQuestion(db *gorm.DB, quizID uint, text string) (*courseModels.Question, error) {
	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return nil, ErrNotFound
	}

	question := courseModels.Question{
		QuizID: quizID,
		Text:   text,
	}

	err := withOrderRetry(func() error {
		question.ID = 0
		return db.Transaction(func(tx *gorm.DB) error {
			question.SortOrder = NextSortOrder(tx, &courseModels.Question{}, "quiz_id", quizID)
			return tx.Create(&question).Error
		})
	})
	if err != nil {
		return nil, err
	}

	return &question, nil
}
