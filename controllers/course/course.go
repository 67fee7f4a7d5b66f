package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses for learners, with set counts and
// the caller's enrollment flag
func GetAllCourses(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return nil
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("is_published = ? AND is_deleted = ?", true, false).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	type CourseListing struct {
		courseModels.Course
		SetsCount int64 `json:"sets_count"`
		Enrolled  bool  `json:"enrolled"`
	}

	listings := make([]CourseListing, len(courses))
	for i, course := range courses {
		var setsCount, enrolled int64
		database.Database.Db.Model(&courseModels.Set{}).Where("course_id = ? AND is_deleted = ?", course.ID, false).Count(&setsCount)
		database.Database.Db.Model(&courseModels.Enrollment{}).Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, course.ID, false).Count(&enrolled)
		listings[i] = CourseListing{
			Course:    course,
			SetsCount: setsCount,
			Enrolled:  enrolled > 0,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": listings,
	})
}

// GetCourseDetails fetches a single course
func GetCourseDetails(c *fiber.Ctx) error {
	if _, ok := requireUser(c); !ok {
		return nil
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}
