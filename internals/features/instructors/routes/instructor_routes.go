package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praiativa_backend/internals/features/instructors/controller"
)

// InstructorUserRoutes monta as rotas autenticadas de instrutor.
func InstructorUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInstructorController(db)

	grp := r.Group("/instrutores")
	grp.Get("/", ctrl.GetAllInstructors)
	grp.Get("/meu", ctrl.GetMyInstructor)
	grp.Get("/:id/alunos", ctrl.GetRoster)
	grp.Post("/", ctrl.CreateInstructor)
	grp.Patch("/:id/valor", ctrl.UpdateDefaultPrice)
}
