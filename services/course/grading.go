package courseService

import (
	"errors"
	"math"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// AnswerInput is one submitted answer. Entries with unknown or mismatched
// ids are scored as incorrect, never rejected.
type AnswerInput struct {
	QuestionID uint `json:"question_id"`
	OptionID   uint `json:"option_id"`
}

// SubmissionResult is the outcome of a graded submission. No per-question
// feedback is returned.
type SubmissionResult struct {
	Score        int  `json:"score"`
	Correct      int  `json:"correct"`
	Total        int  `json:"total"`
	Passed       bool `json:"passed"`
	PassingScore int  `json:"passing_score"`
}

// SubmitQuiz grades the answers against the quiz and appends a Result row,
// passed or failed. A user who already passed cannot resubmit; the partial
// unique index on results settles concurrent passing submissions, so at most
// one pass row ever lands.
func SubmitQuiz(db *gorm.DB, userID, quizID uint, answers []AnswerInput) (*SubmissionResult, error) {
	if len(answers) == 0 {
		return nil, ErrValidation
	}

	passed, err := HasPassed(db, userID, quizID)
	if err != nil {
		return nil, err
	}
	if passed {
		return nil, ErrAlreadyPassed
	}

	var quiz courseModels.Quiz
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return nil, ErrNotFound
	}

	var questions []courseModels.Question
	if err := db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).Find(&questions).Error; err != nil {
		return nil, err
	}
	total := len(questions)

	options := make(map[uint]courseModels.Option)
	if total > 0 {
		questionIDs := make([]uint, len(questions))
		for i, q := range questions {
			questionIDs[i] = q.ID
		}
		var rows []courseModels.Option
		if err := db.Where("question_id IN ? AND is_deleted = ?", questionIDs, false).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, opt := range rows {
			options[opt.ID] = opt
		}
	}

	correct := 0
	for _, answer := range answers {
		opt, ok := options[answer.OptionID]
		if ok && opt.QuestionID == answer.QuestionID && opt.IsCorrect {
			correct++
		}
	}

	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}
	passedNow := score >= quiz.PassingScore

	result := courseModels.Result{
		UserID: userID,
		QuizID: quizID,
		Score:  score,
		Passed: passedNow,
	}
	if err := db.Create(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a pass race: another submission committed the pass first.
			return nil, ErrAlreadyPassed
		}
		return nil, err
	}

	return &SubmissionResult{
		Score:        score,
		Correct:      correct,
		Total:        total,
		Passed:       passedNow,
		PassingScore: quiz.PassingScore,
	}, nil
}
