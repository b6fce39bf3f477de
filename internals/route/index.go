package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingRoutes "praiativa_backend/internals/features/billing/routes"
	instructorRoutes "praiativa_backend/internals/features/instructors/routes"
	studentRoutes "praiativa_backend/internals/features/students/routes"
	authService "praiativa_backend/internals/features/users/auth/service"
	"praiativa_backend/internals/middlewares"
	authMiddleware "praiativa_backend/internals/middlewares/auth"
)

// SetupRoutes registra todas as rotas da API.
// /api/auth/* é público (com rate limit próprio); /api/u/* exige token.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ========== AUTH (público) ==========
	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Register(db, c)
	})
	auth.Post("/login", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authService.Login(db, c)
	})
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), func(c *fiber.Ctx) error {
		return authService.Logout(db, c)
	})

	// ========== USER (autenticado) ==========
	user := api.Group("/u", authMiddleware.AuthMiddleware(db))
	instructorRoutes.InstructorUserRoutes(user, db)
	studentRoutes.StudentUserRoutes(user, db)
	billingRoutes.BillingUserRoutes(user, db)
}
