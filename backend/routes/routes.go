package routes

import (
	"dishashakti/backend/config"
	"dishashakti/backend/controllers"
	"dishashakti/backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/register", authController.Register)
	app.Post("/api/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware()

	// Profile routes
	userController := controllers.NewUserController(db, cfg)
	app.Get("/api/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/profile", authMiddleware, userController.UpdateProfile)

	// Courses routes: reads are public, creation is admin-only
	coursesController := controllers.NewCoursesController(db, cfg)
	app.Get("/api/courses", coursesController.ListCourses)
	app.Get("/api/courses/:id", coursesController.GetCourse)
	app.Post("/api/courses", authMiddleware, adminMiddleware, coursesController.CreateCourse)
}
