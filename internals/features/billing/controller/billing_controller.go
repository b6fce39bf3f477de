package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praiativa_backend/internals/features/billing/dto"
	billingService "praiativa_backend/internals/features/billing/service"
	instructorModel "praiativa_backend/internals/features/instructors/model"
	rosterService "praiativa_backend/internals/features/instructors/service"
	studentModel "praiativa_backend/internals/features/students/model"
	helper "praiativa_backend/internals/helpers"
)

type BillingController struct {
	DB      *gorm.DB
	Billing *billingService.BillingService
}

func NewBillingController(db *gorm.DB, billing *billingService.BillingService) *BillingController {
	return &BillingController{DB: db, Billing: billing}
}

// POST /api/u/cobrancas — cria sessão de checkout para um aluno do instrutor logado
func (ctrl *BillingController) CreateBillingSession(c *fiber.Ctx) error {
	var body dto.CreateBillingRequest
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
			return helper.JsonError(c, fiber.StatusNotFound, "Instrutor não encontrado para este usuário")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar instrutor")
	}

	var aluno studentModel.StudentModel
	if err := ctrl.DB.Where("aluno_id = ?", body.AlunoID).First(&aluno).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Aluno não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao carregar aluno")
	}

	// Só cobra aluno do próprio roster
	if !rosterService.StudentBelongsTo(aluno, instrutor) {
		return helper.JsonError(c, fiber.StatusForbidden, "Aluno não pertence a este instrutor")
	}

	result, err := ctrl.Billing.CreateBillingSession(
		c.UserContext(),
		aluno,
		instrutor,
		body.DataEmissao,
		body.DataVencimento,
		body.PaymentType,
	)
	if err != nil {
		switch {
		case errors.Is(err, billingService.ErrMissingDates):
			return helper.JsonError(c, fiber.StatusBadRequest, "Preencha as datas de emissão e vencimento")
		case errors.Is(err, billingService.ErrInvalidAmount):
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Valor do aluno inválido para cobrança")
		}
		var ce *billingService.CheckoutError
		if errors.As(err, &ce) {
			log.Println("[ERROR] Checkout falhou:", ce.Detail)
			return helper.JsonError(c, fiber.StatusBadGateway, ce.Error())
		}
		log.Println("[ERROR] Falha ao criar cobrança:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar cobrança")
	}

	return helper.JsonCreated(c, "Cobrança criada! Link de pagamento gerado.", result)
}
