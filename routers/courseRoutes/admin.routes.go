package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	// Dashboard
	adminGroup.Get("/dashboard", middleware.JWTMiddleware, controllers.AdminDashboardStats)

	// Course CRUD
	courseGroup := adminGroup.Group("/course")
	courseGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), controllers.AdminCreateCourse)
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.AdminGetAllCourses)
	courseGroup.Put("/:id", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateCourse(), controllers.AdminUpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.AdminDeleteCourse)
	courseGroup.Get("/:id/enrollments", middleware.JWTMiddleware, validators.CourseID(), controllers.AdminGetCourseEnrollments)

	// Set CRUD
	setGroup := adminGroup.Group("/set")
	setGroup.Post("/create", middleware.JWTMiddleware, validators.CreateSet(), controllers.AdminCreateSet)
	setGroup.Put("/:id", middleware.JWTMiddleware, validators.SetID(), validators.UpdateSet(), controllers.AdminUpdateSet)
	setGroup.Delete("/:id", middleware.JWTMiddleware, validators.SetID(), controllers.AdminDeleteSet)

	// Lesson CRUD
	lessonGroup := adminGroup.Group("/lesson")
	lessonGroup.Post("/create", middleware.JWTMiddleware, validators.CreateLesson(), controllers.AdminCreateLesson)
	lessonGroup.Put("/:id", middleware.JWTMiddleware, validators.LessonID(), validators.UpdateLesson(), controllers.AdminUpdateLesson)
	lessonGroup.Delete("/:id", middleware.JWTMiddleware, validators.LessonID(), controllers.AdminDeleteLesson)

	// Quiz CRUD
	quizGroup := adminGroup.Group("/quiz")
	quizGroup.Post("/create", middleware.JWTMiddleware, validators.CreateQuiz(), controllers.AdminCreateQuiz)
	quizGroup.Put("/:id", middleware.JWTMiddleware, validators.QuizID(), validators.UpdateQuiz(), controllers.AdminUpdateQuiz)
	quizGroup.Delete("/:id", middleware.JWTMiddleware, validators.QuizID(), controllers.AdminDeleteQuiz)

	// Question CRUD
	questionGroup := adminGroup.Group("/question")
	questionGroup.Post("/create", middleware.JWTMiddleware, validators.CreateQuestion(), controllers.AdminCreateQuestion)
	questionGroup.Put("/:id", middleware.JWTMiddleware, validators.QuestionID(), validators.UpdateQuestion(), controllers.AdminUpdateQuestion)
	questionGroup.Delete("/:id", middleware.JWTMiddleware, validators.QuestionID(), controllers.AdminDeleteQuestion)

	// Option CRUD
	optionGroup := adminGroup.Group("/option")
	optionGroup.Post("/create", middleware.JWTMiddleware, validators.CreateOption(), controllers.AdminCreateOption)
	optionGroup.Put("/:id", middleware.JWTMiddleware, validators.OptionID(), validators.UpdateOption(), controllers.AdminUpdateOption)
	optionGroup.Delete("/:id", middleware.JWTMiddleware, validators.OptionID(), controllers.AdminDeleteOption)
}
