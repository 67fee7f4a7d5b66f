package courseService_test

import (
	"testing"

	"lms/database"
	courseModels "lms/models/course"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the production
// schema and indexes. A single connection keeps concurrent transactions
// serialized the way tests need.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	err = db.AutoMigrate(
		&courseModels.Course{},
		&courseModels.Set{},
		&courseModels.SetItem{},
		&courseModels.Lesson{},
		&courseModels.Quiz{},
		&courseModels.Question{},
		&courseModels.Option{},
		&courseModels.Result{},
		&courseModels.Enrollment{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := database.CreateIndexes(db); err != nil {
		t.Fatalf("create indexes: %v", err)
	}

	return db
}

func seedCourse(t *testing.T, db *gorm.DB) courseModels.Course {
	t.Helper()
	course := courseModels.Course{Title: "Go from scratch", Description: "Intro course", IsPublished: true}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return course
}

func seedSet(t *testing.T, db *gorm.DB, courseID uint, title string, sortOrder int) courseModels.Set {
	t.Helper()
	set := courseModels.Set{CourseID: courseID, Title: title, SortOrder: sortOrder}
	if err := db.Create(&set).Error; err != nil {
		t.Fatalf("seed set: %v", err)
	}
	return set
}

func seedQuiz(t *testing.T, db *gorm.DB, passingScore int) courseModels.Quiz {
	t.Helper()
	quiz := courseModels.Quiz{Title: "Checkpoint quiz", PassingScore: passingScore}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	return quiz
}

// seedQuestion adds a question with one correct and one wrong option and
// returns the question with its correct and wrong option ids.
func seedQuestion(t *testing.T, db *gorm.DB, quizID uint, sortOrder int) (courseModels.Question, uint, uint) {
	t.Helper()
	question := courseModels.Question{QuizID: quizID, Text: "pick one", SortOrder: sortOrder}
	if err := db.Create(&question).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	right := courseModels.Option{QuestionID: question.ID, Text: "right", IsCorrect: true}
	wrong := courseModels.Option{QuestionID: question.ID, Text: "wrong"}
	if err := db.Create(&right).Error; err != nil {
		t.Fatalf("seed option: %v", err)
	}
	if err := db.Create(&wrong).Error; err != nil {
		t.Fatalf("seed option: %v", err)
	}
	return question, right.ID, wrong.ID
}

func seedLesson(t *testing.T, db *gorm.DB, title string) courseModels.Lesson {
	t.Helper()
	lesson := courseModels.Lesson{Title: title, Content: "lesson body"}
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	return lesson
}

func countResults(t *testing.T, db *gorm.DB, userID, quizID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&courseModels.Result{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Count(&count).Error; err != nil {
		t.Fatalf("count results: %v", err)
	}
	return count
}
