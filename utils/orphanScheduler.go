package utils

import (
	"fmt"
	"lms/database"
	courseModels "lms/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[ORPHAN-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// sweepOrphanedItems soft-deletes set items whose lesson or quiz is gone
func sweepOrphanedItems() {
	db := database.Database.Db

	lessonIDs := db.Model(&courseModels.Lesson{}).
		Select("id").Where("is_deleted = ?", false)

	result := db.Model(&courseModels.SetItem{}).
		Where("item_type = ? AND is_deleted = ? AND item_id NOT IN (?)", courseModels.ItemTypeLesson, false, lessonIDs).
		Update("is_deleted", true)
	if result.Error != nil {
		logSweeper("Error sweeping lesson items: " + result.Error.Error())
		return
	}
	swept := result.RowsAffected

	quizIDs := db.Model(&courseModels.Quiz{}).
		Select("id").Where("is_deleted = ?", false)

	result = db.Model(&courseModels.SetItem{}).
		Where("item_type = ? AND is_deleted = ? AND item_id NOT IN (?)", courseModels.ItemTypeQuiz, false, quizIDs).
		Update("is_deleted", true)
	if result.Error != nil {
		logSweeper("Error sweeping quiz items: " + result.Error.Error())
		return
	}
	swept += result.RowsAffected

	if swept > 0 {
		logSweeper(fmt.Sprintf("Swept %d orphaned set items", swept))
	}
}

// StartOrphanScheduler runs the orphaned item sweep nightly at 3 AM
func StartOrphanScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 3 * * *", func() {
		sweepOrphanedItems()
	})

	c.Start()

	logSweeper("Orphan sweeper started - runs nightly at 3 AM")
	return c
}
