package courseService_test

import (
	"testing"
	"time"

	courseModels "lms/models/course"
	courseService "lms/services/course"
)

func TestLatestAttemptsReturnsEntryForEveryRequestedID(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 70)
	question, rightID, _ := seedQuestion(t, db, quiz.ID, 1)

	got, err := courseService.SubmitQuiz(db, 1, quiz.ID, []courseService.AnswerInput{
		{QuestionID: question.ID, OptionID: rightID},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if !got.Passed {
		t.Fatal("Passed = false, want true")
	}

	scores, err := courseService.LatestAttempts(db, 1, []uint{quiz.ID, 777})
	if err != nil {
		t.Fatalf("LatestAttempts() error = %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("entries = %d, want 2", len(scores))
	}
	if s := scores[quiz.ID]; s.Score != 100 || !s.Passed {
		t.Errorf("attempted quiz = %+v, want {100 true}", s)
	}
	if s := scores[777]; s.Score != 0 || s.Passed {
		t.Errorf("unattempted quiz = %+v, want {0 false}", s)
	}
}

// The aggregator reports the newest attempt, not the best one. A later
// failing row supersedes an earlier pass if the gate were ever bypassed.
func TestLatestAttemptsLatestWinsNotBest(t *testing.T) {
	db := newTestDB(t)

	earlier := courseModels.Result{UserID: 1, QuizID: 9, Score: 95, Passed: true}
	earlier.CreatedAt = time.Now().Add(-time.Hour)
	if err := db.Create(&earlier).Error; err != nil {
		t.Fatalf("create earlier result: %v", err)
	}

	later := courseModels.Result{UserID: 1, QuizID: 9, Score: 20}
	later.CreatedAt = time.Now()
	if err := db.Create(&later).Error; err != nil {
		t.Fatalf("create later result: %v", err)
	}

	scores, err := courseService.LatestAttempts(db, 1, []uint{9})
	if err != nil {
		t.Fatalf("LatestAttempts() error = %v", err)
	}
	if s := scores[9]; s.Score != 20 || s.Passed {
		t.Errorf("latest attempt = %+v, want {20 false}", s)
	}
}

func TestLatestAttemptsScopedToUser(t *testing.T) {
	db := newTestDB(t)

	other := courseModels.Result{UserID: 2, QuizID: 3, Score: 100, Passed: true}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create result: %v", err)
	}

	scores, err := courseService.LatestAttempts(db, 1, []uint{3})
	if err != nil {
		t.Fatalf("LatestAttempts() error = %v", err)
	}
	if s := scores[3]; s.Score != 0 || s.Passed {
		t.Errorf("other user's attempt leaked: %+v", s)
	}
}

func TestLatestAttemptsEmptyRequest(t *testing.T) {
	db := newTestDB(t)

	scores, err := courseService.LatestAttempts(db, 1, nil)
	if err != nil {
		t.Fatalf("LatestAttempts() error = %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("entries = %d, want 0", len(scores))
	}
}

func TestHasPassed(t *testing.T) {
	db := newTestDB(t)

	passed, err := courseService.HasPassed(db, 1, 4)
	if err != nil {
		t.Fatalf("HasPassed() error = %v", err)
	}
	if passed {
		t.Error("HasPassed = true before any attempt")
	}

	result := courseModels.Result{UserID: 1, QuizID: 4, Score: 80, Passed: true}
	if err := db.Create(&result).Error; err != nil {
		t.Fatalf("create result: %v", err)
	}

	passed, err = courseService.HasPassed(db, 1, 4)
	if err != nil {
		t.Fatalf("HasPassed() error = %v", err)
	}
	if !passed {
		t.Error("HasPassed = false after a passing attempt")
	}
}
