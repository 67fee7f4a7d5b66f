package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminDashboardStats returns platform totals and recent quiz activity
func AdminDashboardStats(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	db := database.Database.Db

	var totalCourses, totalStudents, totalEnrollments, totalAttempts int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "USER", false).Count(&totalStudents)
	db.Model(&courseModels.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&courseModels.Result{}).Count(&totalAttempts)

	var attemptsToday, attemptsThisWeek, passedThisWeek int64
	db.Model(&courseModels.Result{}).Where("created_at >= ?", now.BeginningOfDay()).Count(&attemptsToday)
	db.Model(&courseModels.Result{}).Where("created_at >= ?", now.BeginningOfWeek()).Count(&attemptsThisWeek)
	db.Model(&courseModels.Result{}).Where("created_at >= ? AND passed = ?", now.BeginningOfWeek(), true).Count(&passedThisWeek)

	var recentAttempts []courseModels.Result
	db.Order("created_at desc").Limit(10).Find(&recentAttempts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"totalCourses":     totalCourses,
		"totalStudents":    totalStudents,
		"totalEnrollments": totalEnrollments,
		"totalAttempts":    totalAttempts,
		"attemptsToday":    attemptsToday,
		"attemptsThisWeek": attemptsThisWeek,
		"passedThisWeek":   passedThisWeek,
		"recentAttempts":   recentAttempts,
	})
}

// AdminGetCourseEnrollments lists enrolled students for a course
func AdminGetCourseEnrollments(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrolledStudent struct {
		EnrollmentID uint   `json:"enrollmentId"`
		UserID       uint   `json:"userId"`
		Name         string `json:"name"`
		Email        string `json:"email"`
	}

	students := make([]EnrolledStudent, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollment.UserID, false).First(&user).Error; err != nil {
			continue
		}
		students = append(students, EnrolledStudent{
			EnrollmentID: enrollment.ID,
			UserID:       user.ID,
			Name:         user.Name,
			Email:        user.Email,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"course":   course.Title,
		"students": students,
	})
}
