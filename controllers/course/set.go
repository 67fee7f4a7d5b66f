package controllers

import (
	"errors"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	courseService "lms/services/course"

	"github.com/gofiber/fiber/v2"
)

// GetCourseSets returns every set of a course with its resolved items, for
// the learner's course page
func GetCourseSets(c *fiber.Ctx) error {
	if _, ok := requireUser(c); !ok {
		return nil
	}

	courseID := c.Locals("courseID").(int)

	sets, err := courseService.GetSetsForCourse(database.Database.Db, uint(courseID))
	if err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sets fetched successfully!", fiber.Map{
		"sets": sets,
	})
}

// GetSetItems returns a single set with its resolved items
func GetSetItems(c *fiber.Ctx) error {
	if _, ok := requireUser(c); !ok {
		return nil
	}

	setID := c.Locals("setID").(int)

	set, err := courseService.GetSetWithItems(database.Database.Db, uint(setID))
	if err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Set not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch set!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Set fetched successfully!", set)
}

// GetSetLessons returns only the lessons of a set, in item order
func GetSetLessons(c *fiber.Ctx) error {
	if _, ok := requireUser(c); !ok {
		return nil
	}

	setID := c.Locals("setID").(int)

	lessons, err := courseService.GetSetLessons(database.Database.Db, uint(setID))
	if err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Set not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": lessons,
	})
}

// AdminCreateSet appends a new set at the end of a course
func AdminCreateSet(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedSet").(*struct {
		CourseID uint   `json:"course_id"`
		Title    string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	set, err := courseService.CreateSet(database.Database.Db, reqData.CourseID, reqData.Title)
	if err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create set!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Set created successfully!", set)
}

// AdminUpdateSet renames a set
func AdminUpdateSet(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	setID := c.Locals("setID").(int)

	var set courseModels.Set
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", setID, false).First(&set).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Set not found!", nil)
	}

	reqData, ok := c.Locals("validatedSetUpdate").(*struct {
		Title string `json:"title"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		set.Title = reqData.Title
	}

	if err := database.Database.Db.Save(&set).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update set!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Set updated successfully!", set)
}

// AdminDeleteSet soft deletes a set with its items
func AdminDeleteSet(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	setID := c.Locals("setID").(int)

	if err := courseService.DeleteSet(database.Database.Db, uint(setID)); err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Set not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete set!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Set deleted successfully!", nil)
}
