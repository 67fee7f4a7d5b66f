package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course listing and details (published courses only)
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Get("/:id/sets", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseSets)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Delete("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.UnenrollFromCourse)

	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollments)

	// Set content
	setGroup := app.Group("/set")
	setGroup.Get("/:id/items", middleware.JWTMiddleware, validators.SetID(), controllers.GetSetItems)
	setGroup.Get("/:id/lessons", middleware.JWTMiddleware, validators.SetID(), controllers.GetSetLessons)

	// Quizzes; the static route must be registered before the :id route
	quizGroup := app.Group("/quiz")
	quizGroup.Get("/my-scores", middleware.JWTMiddleware, validators.MyScores(), controllers.MyScores)
	quizGroup.Get("/:id", middleware.JWTMiddleware, validators.QuizID(), controllers.GetQuiz)
	quizGroup.Post("/:id/submit", middleware.JWTMiddleware, validators.QuizID(), validators.SubmitQuiz(), controllers.SubmitQuiz)
}
