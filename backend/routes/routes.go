package routes

import (
	"phishlms/backend/config"
	"phishlms/backend/controllers"
	"phishlms/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)

	// Exam routes
	examController := controllers.NewExamController(db, cfg)
	exam := app.Group("/api/exam", authMiddleware)
	exam.Get("/questions", examController.GetQuestions)
	exam.Post("/submit", examController.SubmitExam)
	exam.Get("/history", examController.GetHistory)

	// Classifier routes
	classifierController := controllers.NewClassifierController(db, cfg)
	app.Post("/api/classifier/classify/:id", authMiddleware, adminMiddleware, classifierController.ClassifyUser)

	// Training routes
	trainingController := controllers.NewTrainingController(db, cfg)
	training := app.Group("/api/training", authMiddleware)
	training.Get("/courses/:level", trainingController.GetCoursesByLevel)
	training.Get("/content/:id", trainingController.GetCourseContent)
	training.Post("/complete/:id", trainingController.MarkComplete)
	training.Get("/progress", trainingController.GetProgress)

	// Chatbot routes
	chatbotController := controllers.NewChatbotController(db, cfg)
	chatbot := app.Group("/api/chatbot", authMiddleware)
	chatbot.Post("/message", chatbotController.PostMessage)
	chatbot.Get("/history", chatbotController.GetHistory)

	// Admin routes
	adminController := controllers.NewAdminController(db, cfg)
	app.Post("/api/admin/seed", authMiddleware, adminMiddleware, adminController.SeedData)
}
