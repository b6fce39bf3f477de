package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"praiativa_backend/internals/features/instructors/dto"
	"praiativa_backend/internals/features/instructors/model"
	"praiativa_backend/internals/features/instructors/service"
	studentModel "praiativa_backend/internals/features/students/model"
	helper "praiativa_backend/internals/helpers"
)

type InstructorController struct {
	DB *gorm.DB
}

func NewInstructorController(db *gorm.DB) *InstructorController {
	return &InstructorController{DB: db}
}

/* ===================== Queries ===================== */

// GET /api/u/instrutores
func (ctrl *InstructorController) GetAllInstructors(c *fiber.Ctx) error {
	var instrutores []model.InstructorModel
	if err := ctrl.DB.Order("created_at DESC").Find(&instrutores).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar instrutores")
	}
	return helper.JsonOK(c, "Instrutores carregados.", instrutores)
}

// GET /api/u/instrutores/meu — registro do usuário autenticado
func (ctrl *InstructorController) GetMyInstructor(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)

	var instrutor model.InstructorModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&instrutor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Instrutor não encontrado para este usuário")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar instrutor")
	}
	return helper.JsonOK(c, "Instrutor carregado.", instrutor)
}

// GET /api/u/instrutores/:id/alunos — roster do instrutor selecionado.
// Snapshot inteiro refeito a cada chamada, sem patch incremental.
func (ctrl *InstructorController) GetRoster(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de instrutor inválido")
	}

	var instrutores []model.InstructorModel
	if err := ctrl.DB.Order("created_at DESC").Find(&instrutores).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar instrutores")
	}

	var selected *model.InstructorModel
	for i := range instrutores {
		if instrutores[i].InstrutorID == id {
			selected = &instrutores[i]
			break
		}
	}
	if selected == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Instrutor não encontrado")
	}

	var alunos []studentModel.StudentModel
	if err := ctrl.DB.Order("created_at DESC").Find(&alunos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar alunos")
	}

	roster := service.ResolveRoster(instrutores, alunos, selected)
	return helper.JsonOK(c, "Alunos do instrutor carregados.", roster)
}

/* ===================== Create ===================== */

// POST /api/u/instrutores
func (ctrl *InstructorController) CreateInstructor(c *fiber.Ctx) error {
	var body dto.CreateInstructorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(nil); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	userID := helper.GetUserUUID(c)

	instrutor := model.InstructorModel{
		Nome:        body.Nome,
		Contato:     body.Contato,
		Atividade:   body.Atividade,
		Valor:       body.Valor,
		DiaHorario:  body.DiaHorario,
		Localizacao: body.Localizacao,
		// instrutor_numero nasce igual ao contato; depois as colunas vivem separadas
		InstrutorNumero: strings.TrimSpace(body.Contato),
		CPFCNPJ:         body.CPFCNPJ,
		Banco:           body.Banco,
		Agencia:         body.Agencia,
		Conta:           body.Conta,
		ChavePix:        body.ChavePix,
	}
	if userID != uuid.Nil {
		uid := userID
		instrutor.UserID = &uid
	}

	if err := ctrl.DB.Create(&instrutor).Error; err != nil {
		log.Println("[ERROR] Falha ao criar instrutor:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao cadastrar instrutor")
	}

	return helper.JsonCreated(c, "Instrutor cadastrado!", instrutor)
}

/* ===================== Update ===================== */

// PATCH /api/u/instrutores/:id/valor — valor padrão
func (ctrl *InstructorController) UpdateDefaultPrice(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID de instrutor inválido")
	}

	var body dto.UpdateDefaultPriceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := service.UpdateDefaultPrice(ctrl.DB, id, body.Valor); err != nil {
		if errors.Is(err, service.ErrEmptyPrice) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		var storeErr *service.StoreError
		if errors.As(err, &storeErr) && errors.Is(storeErr.Err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Instrutor não encontrado")
		}
		log.Println("[ERROR] Falha ao atualizar valor padrão:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar valor padrão")
	}

	return helper.JsonUpdated(c, "Valor padrão atualizado com sucesso!", fiber.Map{
		"instrutor_id": id,
		"valor":        body.Valor,
	})
}
