package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praiativa_backend/internals/features/students/controller"
)

// StudentUserRoutes monta as rotas autenticadas de aluno.
func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	grp := r.Group("/alunos")
	grp.Get("/", ctrl.GetAllStudents)
	grp.Post("/", ctrl.CreateStudent)
}
