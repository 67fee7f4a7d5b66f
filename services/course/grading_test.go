package courseService_test

import (
	"errors"
	"testing"

	courseModels "lms/models/course"
	courseService "lms/services/course"
)

func TestSubmitQuizScoresThreeOfFour(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 70)

	answers := make([]courseService.AnswerInput, 0, 4)
	for i := 1; i <= 4; i++ {
		question, rightID, wrongID := seedQuestion(t, db, quiz.ID, i)
		optionID := rightID
		if i == 4 {
			optionID = wrongID
		}
		answers = append(answers, courseService.AnswerInput{QuestionID: question.ID, OptionID: optionID})
	}

	got, err := courseService.SubmitQuiz(db, 1, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if got.Score != 75 {
		t.Errorf("Score = %d, want 75", got.Score)
	}
	if got.Correct != 3 || got.Total != 4 {
		t.Errorf("Correct/Total = %d/%d, want 3/4", got.Correct, got.Total)
	}
	if !got.Passed {
		t.Error("Passed = false, want true (75 >= 70)")
	}
	if got.PassingScore != 70 {
		t.Errorf("PassingScore = %d, want 70", got.PassingScore)
	}
}

// 7 of 10 correct is exactly the passing score; the threshold is inclusive.
func TestSubmitQuizThresholdIsInclusive(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 70)

	answers := make([]courseService.AnswerInput, 0, 10)
	for i := 1; i <= 10; i++ {
		question, rightID, wrongID := seedQuestion(t, db, quiz.ID, i)
		optionID := rightID
		if i > 7 {
			optionID = wrongID
		}
		answers = append(answers, courseService.AnswerInput{QuestionID: question.ID, OptionID: optionID})
	}

	got, err := courseService.SubmitQuiz(db, 1, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if got.Score != 70 {
		t.Errorf("Score = %d, want 70", got.Score)
	}
	if !got.Passed {
		t.Error("Passed = false, want true at the exact threshold")
	}
}

func TestSubmitQuizRoundsScore(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 70)

	answers := make([]courseService.AnswerInput, 0, 3)
	for i := 1; i <= 3; i++ {
		question, rightID, wrongID := seedQuestion(t, db, quiz.ID, i)
		optionID := rightID
		if i > 2 {
			optionID = wrongID
		}
		answers = append(answers, courseService.AnswerInput{QuestionID: question.ID, OptionID: optionID})
	}

	// 2/3 is 66.67, rounded to 67
	got, err := courseService.SubmitQuiz(db, 1, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if got.Score != 67 {
		t.Errorf("Score = %d, want 67", got.Score)
	}
	if got.Passed {
		t.Error("Passed = true, want false (67 < 70)")
	}
}

// A quiz with no questions always scores 0 and can never pass with the
// default threshold of 70.
func TestSubmitQuizZeroQuestions(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 70)

	got, err := courseService.SubmitQuiz(db, 1, quiz.ID, []courseService.AnswerInput{
		{QuestionID: 99, OptionID: 99},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if got.Score != 0 || got.Total != 0 {
		t.Errorf("Score/Total = %d/%d, want 0/0", got.Score, got.Total)
	}
	if got.Passed {
		t.Error("Passed = true, want false")
	}
	if count := countResults(t, db, 1, quiz.ID); count != 1 {
		t.Errorf("results = %d, want 1 (failed attempts are recorded)", count)
	}
}

// Unknown option ids and options paired with the wrong question id are
// scored as incorrect, never rejected.
func TestSubmitQuizIgnoresForeignAndMismatchedAnswers(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 70)

	first, firstRight, _ := seedQuestion(t, db, quiz.ID, 1)
	second, secondRight, _ := seedQuestion(t, db, quiz.ID, 2)

	got, err := courseService.SubmitQuiz(db, 1, quiz.ID, []courseService.AnswerInput{
		{QuestionID: first.ID, OptionID: 9999},        // unknown option
		{QuestionID: first.ID, OptionID: secondRight}, // option belongs to another question
		{QuestionID: second.ID, OptionID: firstRight}, // likewise, reversed
	})
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if got.Correct != 0 || got.Score != 0 {
		t.Errorf("Correct/Score = %d/%d, want 0/0", got.Correct, got.Score)
	}
}

func TestSubmitQuizMissingAnswers(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 70)

	if _, err := courseService.SubmitQuiz(db, 1, quiz.ID, nil); !errors.Is(err, courseService.ErrValidation) {
		t.Errorf("SubmitQuiz(nil) error = %v, want ErrValidation", err)
	}
	if count := countResults(t, db, 1, quiz.ID); count != 0 {
		t.Errorf("results = %d, want 0", count)
	}
}

func TestSubmitQuizMissingQuiz(t *testing.T) {
	db := newTestDB(t)

	_, err := courseService.SubmitQuiz(db, 1, 42, []courseService.AnswerInput{{QuestionID: 1, OptionID: 1}})
	if !errors.Is(err, courseService.ErrNotFound) {
		t.Errorf("SubmitQuiz() error = %v, want ErrNotFound", err)
	}
}

func TestSubmitQuizBlocksResubmissionAfterPass(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 70)
	question, rightID, _ := seedQuestion(t, db, quiz.ID, 1)

	answers := []courseService.AnswerInput{{QuestionID: question.ID, OptionID: rightID}}

	got, err := courseService.SubmitQuiz(db, 1, quiz.ID, answers)
	if err != nil {
		t.Fatalf("SubmitQuiz() error = %v", err)
	}
	if !got.Passed {
		t.Fatal("Passed = false, want true")
	}

	if _, err := courseService.SubmitQuiz(db, 1, quiz.ID, answers); !errors.Is(err, courseService.ErrAlreadyPassed) {
		t.Errorf("resubmission error = %v, want ErrAlreadyPassed", err)
	}
	if count := countResults(t, db, 1, quiz.ID); count != 1 {
		t.Errorf("results = %d, want 1 (blocked resubmission appends nothing)", count)
	}

	// Another user is unaffected by the first user's pass
	if _, err := courseService.SubmitQuiz(db, 2, quiz.ID, answers); err != nil {
		t.Errorf("SubmitQuiz() for second user error = %v", err)
	}
}

func TestSubmitQuizAccumulatesFailedAttempts(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 70)
	question, _, wrongID := seedQuestion(t, db, quiz.ID, 1)

	answers := []courseService.AnswerInput{{QuestionID: question.ID, OptionID: wrongID}}

	for i := 0; i < 2; i++ {
		got, err := courseService.SubmitQuiz(db, 1, quiz.ID, answers)
		if err != nil {
			t.Fatalf("SubmitQuiz() error = %v", err)
		}
		if got.Passed {
			t.Fatal("Passed = true, want false")
		}
	}

	if count := countResults(t, db, 1, quiz.ID); count != 2 {
		t.Errorf("results = %d, want 2", count)
	}

	passed, err := courseService.HasPassed(db, 1, quiz.ID)
	if err != nil {
		t.Fatalf("HasPassed() error = %v", err)
	}
	if passed {
		t.Error("HasPassed = true, want false")
	}
}

// The partial unique index admits only one passed row per (user, quiz) even
// when the gate is bypassed by writing directly.
func TestPassedResultUniquePerUserAndQuiz(t *testing.T) {
	db := newTestDB(t)

	first := courseModels.Result{UserID: 1, QuizID: 5, Score: 80, Passed: true}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create first pass: %v", err)
	}

	second := courseModels.Result{UserID: 1, QuizID: 5, Score: 90, Passed: true}
	if err := db.Create(&second).Error; err == nil {
		t.Error("second pass row created, want duplicate-key error")
	}

	// Failed duplicates are tolerated
	failed := courseModels.Result{UserID: 1, QuizID: 5, Score: 10}
	if err := db.Create(&failed).Error; err != nil {
		t.Errorf("failed attempt rejected: %v", err)
	}
}
