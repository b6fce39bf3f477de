package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	instructorModel "praiativa_backend/internals/features/instructors/model"
	"praiativa_backend/internals/features/students/dto"
	"praiativa_backend/internals/features/students/model"
	helper "praiativa_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /api/u/alunos — snapshot completo, na ordem do banco
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	var alunos []model.StudentModel
	if err := ctrl.DB.Order("created_at DESC").Find(&alunos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar alunos")
	}
	return helper.JsonOK(c, "Alunos carregados.", alunos)
}

// POST /api/u/alunos — cadastra aluno vinculado ao instrutor do usuário.
// Grava as DUAS chaves de vínculo (legada e nova) no cadastro.
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(nil); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	userID := helper.GetUserUUID(c)
	var instrutor instructorModel.InstructorModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&instrutor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Cadastre-se como instrutor antes de adicionar alunos")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar instrutor")
	}

	aluno := model.StudentModel{
		Nome:             body.Nome,
		Contato:          body.Contato,
		Email:            body.Email,
		Whatsapp:         body.Whatsapp,
		Atividade:        body.Atividade,
		Valor:            body.Valor,
		ValorMensalidade: body.ValorMensalidade,
		Validade:         body.Validade,
		DataVencimento:   body.DataVencimento,
		ContatoInstrutor: &instrutor.InstrutorID,
	}
	if instrutor.InstrutorNumero != "" {
		numero := instrutor.InstrutorNumero
		aluno.NumeroInstrutor = &numero
	}
	if aluno.Atividade == "" {
		aluno.Atividade = instrutor.Atividade
	}
	if aluno.Valor == "" && aluno.ValorMensalidade == nil {
		aluno.Valor = instrutor.Valor
	}

	if err := ctrl.DB.Create(&aluno).Error; err != nil {
		log.Println("[ERROR] Falha ao criar aluno:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao cadastrar aluno")
	}

	return helper.JsonCreated(c, "Aluno cadastrado!", aluno)
}
