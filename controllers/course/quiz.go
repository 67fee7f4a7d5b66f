package controllers

import (
	"errors"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	courseService "lms/services/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetQuiz returns the quiz with its ordered questions and their options
func GetQuiz(c *fiber.Ctx) error {
	if _, ok := requireUser(c); !ok {
		return nil
	}

	quizID := c.Locals("quizID").(int)

	var quiz courseModels.Quiz
	err := database.Database.Db.
		Where("id = ? AND is_deleted = ?", quizID, false).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("sort_order asc")
		}).
		Preload("Questions.Options", "is_deleted = ?", false).
		First(&quiz).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

// SubmitQuiz grades a submission and records the attempt
func SubmitQuiz(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return nil
	}

	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedSubmission").(*struct {
		Answers []courseService.AnswerInput `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := courseService.SubmitQuiz(database.Database.Db, user.ID, uint(quizID), reqData.Answers)
	if err != nil {
		switch {
		case errors.Is(err, courseService.ErrAlreadyPassed):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You have already passed this quiz!", nil)
		case errors.Is(err, courseService.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		case errors.Is(err, courseService.ErrValidation):
			return middleware.ValidationErrorResponse(c, map[string]string{"answers": "Answers are required!"})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", result)
}

// MyScores reports the latest attempt per requested quiz id. Every requested
// id gets an entry, defaulting to {score: 0, passed: false}.
func MyScores(c *fiber.Ctx) error {
	user, ok := requireUser(c)
	if !ok {
		return nil
	}

	quizIDs, ok := c.Locals("quizIDs").([]uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	scores, err := courseService.LatestAttempts(database.Database.Db, user.ID, quizIDs)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch scores!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Scores fetched successfully!", scores)
}
