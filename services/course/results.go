package courseService

import (
	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// QuizScore is the per-quiz status reported to the learner's course page.
type QuizScore struct {
	Score  int  `json:"score"`
	Passed bool `json:"passed"`
}

// HasPassed reports whether the user already holds a passed result for the
// quiz. This is the resubmission gate.
func HasPassed(db *gorm.DB, userID, quizID uint) (bool, error) {
	var count int64
	err := db.Model(&courseModels.Result{}).
		Where("user_id = ? AND quiz_id = ? AND passed = ?", userID, quizID, true).
		Count(&count).Error
	return count > 0, err
}

// LatestAttempts returns the most recent attempt per requested quiz id.
// Every requested id gets an entry; quizzes without attempts default to
// {score: 0, passed: false}. Most recent means newest by creation time, not
// highest score; the row id breaks same-timestamp ties.
func LatestAttempts(db *gorm.DB, userID uint, quizIDs []uint) (map[uint]QuizScore, error) {
	scores := make(map[uint]QuizScore, len(quizIDs))
	for _, id := range quizIDs {
		scores[id] = QuizScore{}
	}
	if len(quizIDs) == 0 {
		return scores, nil
	}

	var results []courseModels.Result
	if err := db.Where("user_id = ? AND quiz_id IN ?", userID, quizIDs).
		Order("created_at desc, id desc").
		Find(&results).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(quizIDs))
	for _, r := range results {
		if seen[r.QuizID] {
			continue
		}
		seen[r.QuizID] = true
		scores[r.QuizID] = QuizScore{Score: r.Score, Passed: r.Passed}
	}

	return scores, nil
}
