package courseService

import (
	"errors"

	courseModels "lms/models/course"

	"gorm.io/gorm"
)

// appendRetries bounds duplicate-key retries when two appenders race for the
// same position under one parent.
const appendRetries = 3

// NextSortOrder returns the next append position for a new row under the
// given parent. The max is taken over every row, soft deleted included, so a
// freed position is never reissued and existing orders are never renumbered.
// Must run inside the transaction that inserts the row.
func NextSortOrder(tx *gorm.DB, model interface{}, parentColumn string, parentID uint) int {
	var maxOrder int
	tx.Model(model).
		Where(parentColumn+" = ?", parentID).
		Select("COALESCE(MAX(sort_order), 0)").
		Scan(&maxOrder)
	return maxOrder + 1
}

// withOrderRetry reruns an append whose insert collided on the per-parent
// sort order unique index. Each retry recomputes the max inside a fresh
// transaction.
func withOrderRetry(fn func() error) error {
	var err error
	for i := 0; i < appendRetries; i++ {
		err = fn()
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}

// AppendSetItem places a lesson or quiz reference at the end of a set.
func AppendSetItem(db *gorm.DB, setID uint, itemType string, itemID uint) (*courseModels.SetItem, error) {
	if itemType != courseModels.ItemTypeLesson && itemType != courseModels.ItemTypeQuiz {
		return nil, ErrValidation
	}

	var set courseModels.Set
	if err := db.Where("id = ? AND is_deleted = ?", setID, false).First(&set).Error; err != nil {
		return nil, ErrNotFound
	}

	item := courseModels.SetItem{
		SetID:    setID,
		ItemType: itemType,
		ItemID:   itemID,
	}

	err := withOrderRetry(func() error {
		item.ID = 0
		return db.Transaction(func(tx *gorm.DB) error {
			item.SortOrder = NextSortOrder(tx, &courseModels.SetItem{}, "set_id", setID)
			return tx.Create(&item).Error
		})
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}
