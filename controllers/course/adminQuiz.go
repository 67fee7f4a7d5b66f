package controllers

import (
	"errors"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	courseService "lms/services/course"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateQuiz creates a quiz and appends it to the target set
func AdminCreateQuiz(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedQuiz").(*struct {
		SetID        uint   `json:"set_id"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		PassingScore int    `json:"passing_score"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz, err := courseService.CreateQuiz(database.Database.Db, reqData.SetID, reqData.Title, reqData.Description, reqData.PassingScore)
	if err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Set not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

// AdminUpdateQuiz updates title, description or passing score
func AdminUpdateQuiz(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	quizID := c.Locals("quizID").(int)

	var quiz courseModels.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", quizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuizUpdate").(*struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		PassingScore *int   `json:"passing_score"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		quiz.Title = reqData.Title
	}
	if reqData.Description != "" {
		quiz.Description = reqData.Description
	}
	if reqData.PassingScore != nil {
		quiz.PassingScore = *reqData.PassingScore
	}

	if err := database.Database.Db.Save(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz updated successfully!", quiz)
}

// AdminDeleteQuiz soft deletes a quiz with its questions, options and set
// items. Attempt history is retained.
func AdminDeleteQuiz(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	quizID := c.Locals("quizID").(int)

	if err := courseService.DeleteQuiz(database.Database.Db, uint(quizID)); err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz deleted successfully!", nil)
}

// AdminCreateQuestion appends a question at the end of a quiz
func AdminCreateQuestion(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedQuestion").(*struct {
		QuizID uint   `json:"quiz_id"`
		Text   string `json:"text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	question, err := courseService.CreateQuestion(database.Database.Db, reqData.QuizID, reqData.Text)
	if err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// AdminUpdateQuestion updates the question text
func AdminUpdateQuestion(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	questionID := c.Locals("questionID").(int)

	var question courseModels.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuestionUpdate").(*struct {
		Text string `json:"text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Text != "" {
		question.Text = reqData.Text
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// AdminDeleteQuestion soft deletes a question and its options
func AdminDeleteQuestion(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	questionID := c.Locals("questionID").(int)

	if err := courseService.DeleteQuestion(database.Database.Db, uint(questionID)); err != nil {
		if errors.Is(err, courseService.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}

// AdminCreateOption adds an answer option to a question
func AdminCreateOption(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedOption").(*struct {
		QuestionID uint   `json:"question_id"`
		Text       string `json:"text"`
		IsCorrect  bool   `json:"is_correct"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var question courseModels.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.QuestionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	option := courseModels.Option{
		QuestionID: reqData.QuestionID,
		Text:       reqData.Text,
		IsCorrect:  reqData.IsCorrect,
	}

	if err := database.Database.Db.Create(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create option!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Option created successfully!", option)
}

// AdminUpdateOption updates an option's text or correctness flag
func AdminUpdateOption(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	optionID := c.Locals("optionID").(int)

	var option courseModels.Option
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", optionID, false).First(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Option not found!", nil)
	}

	reqData, ok := c.Locals("validatedOptionUpdate").(*struct {
		Text      string `json:"text"`
		IsCorrect *bool  `json:"is_correct"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Text != "" {
		option.Text = reqData.Text
	}
	if reqData.IsCorrect != nil {
		option.IsCorrect = *reqData.IsCorrect
	}

	if err := database.Database.Db.Save(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update option!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Option updated successfully!", option)
}

// AdminDeleteOption soft deletes an option
func AdminDeleteOption(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	optionID := c.Locals("optionID").(int)

	var option courseModels.Option
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", optionID, false).First(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Option not found!", nil)
	}

	option.IsDeleted = true
	if err := database.Database.Db.Save(&option).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete option!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Option deleted successfully!", nil)
}
