package courseService

import (
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// ResolvedItem is a set item normalized to its target. Kind tags whether the
// lesson or the quiz fields are populated.
type ResolvedItem struct {
	Kind        string `json:"kind"` // lesson, quiz
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	SortOrder   int    `json:"sort_order"`
}

// SetWithItems is a set together with its resolved, ordered items.
type SetWithItems struct {
	SetID     uint           `json:"set_id"`
	CourseID  uint           `json:"course_id"`
	Title     string         `json:"title"`
	SortOrder int            `json:"sort_order"`
	Items     []ResolvedItem `json:"items"`
}

// GetSetWithItems returns the set with its items resolved in sort order.
// Items whose referenced lesson or quiz no longer exists are dropped.
func GetSetWithItems(db *gorm.DB, setID uint) (*SetWithItems, error) {
	var set courseModels.Set
	if err := db.Where("id = ? AND is_deleted = ?", setID, false).First(&set).Error; err != nil {
		return nil, ErrNotFound
	}

	items, err := resolveSetItems(db, set.ID)
	if err != nil {
		return nil, err
	}

	return &SetWithItems{
		SetID:     set.ID,
		CourseID:  set.CourseID,
		Title:     set.Title,
		SortOrder: set.SortOrder,
		Items:     items,
	}, nil
}

// GetSetsForCourse returns every set of the course in sort order, each with
// its resolved items, for bulk course page rendering.
func GetSetsForCourse(db *gorm.DB, courseID uint) ([]SetWithItems, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, ErrNotFound
	}

	var sets []courseModels.Set
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("sort_order asc").Find(&sets).Error; err != nil {
		return nil, err
	}

	resolved := make([]SetWithItems, len(sets))
	for i, set := range sets {
		items, err := resolveSetItems(db, set.ID)
		if err != nil {
			return nil, err
		}
		resolved[i] = SetWithItems{
			SetID:     set.ID,
			CourseID:  set.CourseID,
			Title:     set.Title,
			SortOrder: set.SortOrder,
			Items:     items,
		}
	}

	return resolved, nil
}

// GetSetLessons returns only the lessons of a set, in item order, with the
// same dangling-reference filtering as the full resolution.
func GetSetLessons(db *gorm.DB, setID uint) ([]courseModels.Lesson, error) {
	set, err := GetSetWithItems(db, setID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(set.Items))
	for _, item := range set.Items {
		if item.Kind == courseModels.ItemTypeLesson {
			ids = append(ids, item.ID)
		}
	}

	lessons := make([]courseModels.Lesson, 0, len(ids))
	if len(ids) == 0 {
		return lessons, nil
	}

	var rows []courseModels.Lesson
	if err := db.Where("id IN ? AND is_deleted = ?", ids, false).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]courseModels.Lesson, len(rows))
	for _, l := range rows {
		byID[l.ID] = l
	}
	// Reassemble in item order
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			lessons = append(lessons, l)
		}
	}

	return lessons, nil
}

// resolveSetItems loads the active items of a set in sort order and resolves
// each tagged reference. References to deleted or missing rows are silently
// dropped; the delete-time cascade should have removed them, this is the
// read-time line of defense.
func resolveSetItems(db *gorm.DB, setID uint) ([]ResolvedItem, error) {
	var items []courseModels.SetItem
	if err := db.Where("set_id = ? AND is_deleted = ?", setID, false).
		Order("sort_order asc").Find(&items).Error; err != nil {
		return nil, err
	}

	lessonIDs := make([]uint, 0, len(items))
	quizIDs := make([]uint, 0, len(items))
	for _, item := range items {
		switch item.ItemType {
		case courseModels.ItemTypeLesson:
			lessonIDs = append(lessonIDs, item.ItemID)
		case courseModels.ItemTypeQuiz:
			quizIDs = append(quizIDs, item.ItemID)
		}
	}

	lessons := make(map[uint]courseModels.Lesson, len(lessonIDs))
	if len(lessonIDs) > 0 {
		var rows []courseModels.Lesson
		if err := db.Where("id IN ? AND is_deleted = ?", lessonIDs, false).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, l := range rows {
			lessons[l.ID] = l
		}
	}

	quizzes := make(map[uint]courseModels.Quiz, len(quizIDs))
	if len(quizIDs) > 0 {
		var rows []courseModels.Quiz
		if err := db.Where("id IN ? AND is_deleted = ?", quizIDs, false).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, q := range rows {
			quizzes[q.ID] = q
		}
	}

	resolved := make([]ResolvedItem, 0, len(items))
	for _, item := range items {
		switch item.ItemType {
		case courseModels.ItemTypeLesson:
			lesson, ok := lessons[item.ItemID]
			if !ok {
				continue
			}
			resolved = append(resolved, ResolvedItem{
				Kind:      courseModels.ItemTypeLesson,
				ID:        lesson.ID,
				Title:     lesson.Title,
				Content:   lesson.Content,
				SortOrder: item.SortOrder,
			})
		case courseModels.ItemTypeQuiz:
			quiz, ok := quizzes[item.ItemID]
			if !ok {
				continue
			}
			resolved = append(resolved, ResolvedItem{
				Kind:        courseModels.ItemTypeQuiz,
				ID:          quiz.ID,
				Title:       quiz.Title,
				Description: quiz.Description,
				SortOrder:   item.SortOrder,
			})
		}
	}

	return resolved, nil
}

// DeleteLesson soft deletes a lesson and every set item referencing it.
func DeleteLesson(db *gorm.DB, lessonID uint) error {
	var lesson courseModels.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return ErrNotFound
	}

	return db.Transaction(func(tx *gorm.DB) error {
		lesson.IsDeleted = true
		if err := tx.Save(&lesson).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.SetItem{}).
			Where("item_type = ? AND item_id = ?", courseModels.ItemTypeLesson, lessonID).
			Update("is_deleted", true).Error
	})
}

// DeleteQuiz soft deletes a quiz, its questions and options, and every set
// item referencing it. Results are kept: the attempt history outlives the
// quiz.
func DeleteQuiz(db *gorm.DB, quizID uint) error {
	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return ErrNotFound
	}

	return db.Transaction(func(tx *gorm.DB) error {
		quiz.IsDeleted = true
		if err := tx.Save(&quiz).Error; err != nil {
			return err
		}

		var questionIDs []uint
		if err := tx.Model(&courseModels.Question{}).
			Where("quiz_id = ?", quizID).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Model(&courseModels.Option{}).
				Where("question_id IN ?", questionIDs).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&courseModels.Question{}).
			Where("quiz_id = ?", quizID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}

		return tx.Model(&courseModels.SetItem{}).
			Where("item_type = ? AND item_id = ?", courseModels.ItemTypeQuiz, quizID).
			Update("is_deleted", true).Error
	})
}

// DeleteQuestion soft deletes a question and its options.
func DeleteQuestion(db *gorm.DB, questionID uint) error {
	var question courseModels.Question
	if err := db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return ErrNotFound
	}

	return db.Transaction(func(tx *gorm.DB) error {
		question.IsDeleted = true
		if err := tx.Save(&question).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.Option{}).
			Where("question_id = ?", questionID).
			Update("is_deleted", true).Error
	})
}

// DeleteSet soft deletes a set and its items. The referenced lessons and
// quizzes stay: they may appear in other sets.
func DeleteSet(db *gorm.DB, setID uint) error {
	var set courseModels.Set
	if err := db.Where("id = ? AND is_deleted = ?", setID, false).First(&set).Error; err != nil {
		return ErrNotFound
	}

	return db.Transaction(func(tx *gorm.DB) error {
		set.IsDeleted = true
		if err := tx.Save(&set).Error; err != nil {
			return err
		}
		return tx.Model(&courseModels.SetItem{}).
			Where("set_id = ?", setID).
			Update("is_deleted", true).Error
	})
}

// DeleteCourse soft deletes a course, its sets and their items.
func DeleteCourse(db *gorm.DB, courseID uint) error {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return ErrNotFound
	}

	return db.Transaction(func(tx *gorm.DB) error {
		course.IsDeleted = true
		if err := tx.Save(&course).Error; err != nil {
			return err
		}

		var setIDs []uint
		if err := tx.Model(&courseModels.Set{}).
			Where("course_id = ?", courseID).Pluck("id", &setIDs).Error; err != nil {
			return err
		}
		if len(setIDs) > 0 {
			if err := tx.Model(&courseModels.SetItem{}).
				Where("set_id IN ?", setIDs).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}

		return tx.Model(&courseModels.Set{}).
			Where("course_id = ?", courseID).
			Update("is_deleted", true).Error
	})
}
