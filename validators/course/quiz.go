package courseValidator

import (
	"lms/middleware"
	courseService "lms/services/course"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// QuizID validates the :id route param
func QuizID() fiber.Handler {
	return paramID("id", "quizID", "Quiz ID")
}

// QuestionID validates the :id route param
func QuestionID() fiber.Handler {
	return paramID("id", "questionID", "Question ID")
}

// OptionID validates the :id route param
func OptionID() fiber.Handler {
	return paramID("id", "optionID", "Option ID")
}

// CreateQuiz validates quiz creation request
func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SetID        uint   `json:"set_id"`
			Title        string `json:"title"`
			Description  string `json:"description"`
			PassingScore int    `json:"passing_score"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		// Validate Set ID
		if reqData.SetID == 0 {
			errors["set_id"] = "Set ID is required!"
		}

		// Validate Title
		if len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Passing Score
		if reqData.PassingScore < 0 || reqData.PassingScore > 100 {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

// UpdateQuiz validates quiz update request
func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			PassingScore *int   `json:"passing_score"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Description = strings.TrimSpace(reqData.Description)

		if reqData.Title != "" && len(reqData.Title) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if reqData.PassingScore != nil && (*reqData.PassingScore < 0 || *reqData.PassingScore > 100) {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuizUpdate", reqData)
		return c.Next()
	}
}

// CreateQuestion validates question creation request
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuizID uint   `json:"quiz_id"`
			Text   string `json:"text"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Text = strings.TrimSpace(reqData.Text)

		// Validate Quiz ID
		if reqData.QuizID == 0 {
			errors["quiz_id"] = "Quiz ID is required!"
		}

		// Validate Text
		if reqData.Text == "" {
			errors["text"] = "Question text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// UpdateQuestion validates question update request
func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Text string `json:"text"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Text = strings.TrimSpace(reqData.Text)

		c.Locals("validatedQuestionUpdate", reqData)
		return c.Next()
	}
}

// CreateOption validates option creation request
func CreateOption() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			QuestionID uint   `json:"question_id"`
			Text       string `json:"text"`
			IsCorrect  bool   `json:"is_correct"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Text = strings.TrimSpace(reqData.Text)

		// Validate Question ID
		if reqData.QuestionID == 0 {
			errors["question_id"] = "Question ID is required!"
		}

		// Validate Text
		if reqData.Text == "" {
			errors["text"] = "Option text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedOption", reqData)
		return c.Next()
	}
}

// UpdateOption validates option update request
func UpdateOption() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Text      string `json:"text"`
			IsCorrect *bool  `json:"is_correct"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Text = strings.TrimSpace(reqData.Text)

		c.Locals("validatedOptionUpdate", reqData)
		return c.Next()
	}
}

// SubmitQuiz validates quiz submission request
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers []courseService.AnswerInput `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Answers
		if len(reqData.Answers) == 0 {
			errors["answers"] = "At least one answer is required!"
		}
		for _, answer := range reqData.Answers {
			if answer.QuestionID == 0 || answer.OptionID == 0 {
				errors["answers"] = "Each answer needs a question and an option!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}

// MyScores validates the quiz_ids query param and parses it into quiz IDs
func MyScores() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Query("quiz_ids"))

		quizIDs := make([]uint, 0)
		if raw != "" {
			errors := make(map[string]string)
			for _, token := range strings.Split(raw, ",") {
				token = strings.TrimSpace(token)
				if token == "" {
					continue
				}
				id, err := strconv.Atoi(token)
				if err != nil || id <= 0 {
					errors["quiz_ids"] = "Quiz IDs must be positive numbers!"
					break
				}
				quizIDs = append(quizIDs, uint(id))
			}
			if len(errors) > 0 {
				return middleware.ValidationErrorResponse(c, errors)
			}
		}

		c.Locals("quizIDs", quizIDs)
		return c.Next()
	}
}
