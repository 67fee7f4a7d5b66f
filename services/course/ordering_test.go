package courseService_test

import (
	"sync"
	"testing"

	courseModels "lms/models/course"
	courseService "lms/services/course"
)

func TestCreateSetAssignsIncreasingSortOrder(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db)

	for want := 1; want <= 3; want++ {
		set, err := courseService.CreateSet(db, course.ID, "Chapter")
		if err != nil {
			t.Fatalf("CreateSet() error = %v", err)
		}
		if set.SortOrder != want {
			t.Errorf("SortOrder = %d, want %d", set.SortOrder, want)
		}
	}
}

func TestAppendSetItemAssignsIncreasingSortOrder(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db)
	set := seedSet(t, db, course.ID, "Chapter 1", 1)

	for want := 1; want <= 3; want++ {
		lesson := seedLesson(t, db, "Lesson")
		item, err := courseService.AppendSetItem(db, set.ID, courseModels.ItemTypeLesson, lesson.ID)
		if err != nil {
			t.Fatalf("AppendSetItem() error = %v", err)
		}
		if item.SortOrder != want {
			t.Errorf("SortOrder = %d, want %d", item.SortOrder, want)
		}
	}
}

func TestAppendSetItemRejectsUnknownKind(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db)
	set := seedSet(t, db, course.ID, "Chapter 1", 1)

	if _, err := courseService.AppendSetItem(db, set.ID, "video", 1); err != courseService.ErrValidation {
		t.Errorf("AppendSetItem(video) error = %v, want ErrValidation", err)
	}
}

func TestAppendSetItemMissingSet(t *testing.T) {
	db := newTestDB(t)

	if _, err := courseService.AppendSetItem(db, 999, courseModels.ItemTypeLesson, 1); err != courseService.ErrNotFound {
		t.Errorf("AppendSetItem() error = %v, want ErrNotFound", err)
	}
}

// A deleted row keeps its position; the next append continues past it
// instead of filling the gap.
func TestAppendContinuesPastDeletedPositions(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db)

	var last *courseModels.Set
	for i := 0; i < 3; i++ {
		set, err := courseService.CreateSet(db, course.ID, "Chapter")
		if err != nil {
			t.Fatalf("CreateSet() error = %v", err)
		}
		last = set
	}

	if err := courseService.DeleteSet(db, last.ID); err != nil {
		t.Fatalf("DeleteSet() error = %v", err)
	}

	set, err := courseService.CreateSet(db, course.ID, "Chapter")
	if err != nil {
		t.Fatalf("CreateSet() error = %v", err)
	}
	if set.SortOrder != 4 {
		t.Errorf("SortOrder after delete = %d, want 4", set.SortOrder)
	}
}

func TestCreateQuestionAssignsIncreasingSortOrder(t *testing.T) {
	db := newTestDB(t)
	quiz := seedQuiz(t, db, 70)

	for want := 1; want <= 3; want++ {
		question, err := courseService.CreateQuestion(db, quiz.ID, "pick one")
		if err != nil {
			t.Fatalf("CreateQuestion() error = %v", err)
		}
		if question.SortOrder != want {
			t.Errorf("SortOrder = %d, want %d", question.SortOrder, want)
		}
	}
}

func TestConcurrentAppendsNeverDuplicateSortOrder(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db)
	set := seedSet(t, db, course.ID, "Chapter 1", 1)

	const appenders = 8
	lessons := make([]courseModels.Lesson, appenders)
	for i := range lessons {
		lessons[i] = seedLesson(t, db, "Lesson")
	}

	var wg sync.WaitGroup
	orders := make(chan int, appenders)
	errs := make(chan error, appenders)
	for i := 0; i < appenders; i++ {
		wg.Add(1)
		go func(lessonID uint) {
			defer wg.Done()
			item, err := courseService.AppendSetItem(db, set.ID, courseModels.ItemTypeLesson, lessonID)
			if err != nil {
				errs <- err
				return
			}
			orders <- item.SortOrder
		}(lessons[i].ID)
	}
	wg.Wait()
	close(orders)
	close(errs)

	for err := range errs {
		t.Fatalf("AppendSetItem() error = %v", err)
	}

	seen := make(map[int]bool)
	for order := range orders {
		if seen[order] {
			t.Fatalf("duplicate sort_order %d", order)
		}
		seen[order] = true
	}
	if len(seen) != appenders {
		t.Errorf("distinct sort orders = %d, want %d", len(seen), appenders)
	}
}
