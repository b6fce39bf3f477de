package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	billingModel "praiativa_backend/internals/features/billing/model"
	instructorModel "praiativa_backend/internals/features/instructors/model"
	studentModel "praiativa_backend/internals/features/students/model"
)

const billingCurrency = "brl"

var (
	ErrMissingDates  = errors.New("informe as datas de emissão e vencimento")
	ErrInvalidAmount = errors.New("valor do aluno inválido")
)

/* =========================================================
   Resultado
========================================================= */

type BillingSummary struct {
	AlunoNome      string `json:"aluno_nome"`
	Valor          string `json:"valor"` // reais, duas casas
	DataEmissao    string `json:"data_emissao"`
	DataVencimento string `json:"data_vencimento"`
}

type BillingResult struct {
	SessionID string         `json:"session_id"`
	URL       string         `json:"url"`
	Resumo    BillingSummary `json:"resumo"`
}

/* =========================================================
   Orquestrador
========================================================= */

type BillingService struct {
	DB       *gorm.DB
	Provider CheckoutProvider
	Gateway  string
}

func NewBillingService(db *gorm.DB, provider CheckoutProvider, gateway string) *BillingService {
	return &BillingService{DB: db, Provider: provider, Gateway: gateway}
}

// CreateBillingSession valida, resolve o valor em centavos e dispara UMA
// chamada ao provedor. Sem estado parcial em falha: é seguro o chamador
// tentar de novo.
//
// Ordem das pré-condições (a primeira falha ganha):
//  1. datas de emissão e vencimento presentes;
//  2. valor do aluno resolve para um número finito.
func (s *BillingService) CreateBillingSession(
	ctx context.Context,
	aluno studentModel.StudentModel,
	instrutor instructorModel.InstructorModel,
	dataEmissao, dataVencimento, paymentType string,
) (*BillingResult, error) {
	if strings.TrimSpace(dataEmissao) == "" || strings.TrimSpace(dataVencimento) == "" {
		return nil, ErrMissingDates
	}

	amount, err := ResolveAmount(aluno)
	if err != nil {
		return nil, err
	}
	cents := ToMinorUnits(amount)
	if cents <= 0 {
		return nil, ErrInvalidAmount
	}

	atividade := aluno.Atividade
	if atividade == "" {
		atividade = instrutor.Atividade
	}

	req := CheckoutRequest{
		Amount:       cents,
		Currency:     billingCurrency,
		Description:  fmt.Sprintf("%s - %s", atividade, aluno.Nome),
		InstructorID: instrutor.InstrutorID,
		Students:     []studentModel.StudentModel{aluno},
		PaymentType:  paymentType,
		DueDate:      dataVencimento,
		IssueDate:    dataEmissao,
	}

	resp, err := s.Provider.CreateSession(ctx, req)
	if err != nil {
		var ce *CheckoutError
		if errors.As(err, &ce) {
			return nil, ce
		}
		return nil, &CheckoutError{Detail: err.Error()}
	}
	if resp.URL == "" {
		return nil, &CheckoutError{Detail: "provedor respondeu sem url de checkout"}
	}

	s.recordSession(aluno, instrutor, req, resp)

	return &BillingResult{
		SessionID: resp.SessionID,
		URL:       resp.URL,
		Resumo: BillingSummary{
			AlunoNome:      aluno.Nome,
			Valor:          amount.StringFixed(2),
			DataEmissao:    dataEmissao,
			DataVencimento: dataVencimento,
		},
	}, nil
}

// recordSession grava o registro de auditoria. Best-effort: falha aqui é
// logada e não derruba uma cobrança já criada no provedor.
func (s *BillingService) recordSession(
	aluno studentModel.StudentModel,
	instrutor instructorModel.InstructorModel,
	req CheckoutRequest,
	resp CheckoutResponse,
) {
	if s.DB == nil {
		return
	}

	alunoID := aluno.AlunoID
	row := billingModel.BillingSessionModel{
		BillingSessionAlunoID:        &alunoID,
		BillingSessionInstrutorID:    instrutor.InstrutorID,
		BillingSessionAmountCents:    req.Amount,
		BillingSessionCurrency:       req.Currency,
		BillingSessionDescription:    req.Description,
		BillingSessionPaymentType:    req.PaymentType,
		BillingSessionDataEmissao:    req.IssueDate,
		BillingSessionDataVencimento: req.DueDate,
		BillingSessionGateway:        s.Gateway,
		BillingSessionProviderID:     resp.SessionID,
		BillingSessionCheckoutURL:    resp.URL,
		BillingSessionMethodTypes:    methodTypesFor(req.PaymentType),
		BillingSessionMeta: datatypes.JSONMap{
			"aluno_nome":    aluno.Nome,
			"aluno_contato": aluno.Contato,
			"atividade":     req.Description,
			"alunos_count":  len(req.Students),
		},
	}
	if err := s.DB.Create(&row).Error; err != nil {
		log.Println("[WARN] Falha ao registrar billing_session (auditoria):", err)
	}
}

// Métodos de pagamento aceitos no checkout, por modalidade.
func methodTypesFor(paymentType string) pq.StringArray {
	switch paymentType {
	case "pix":
		return pq.StringArray{"pix"}
	case "boleto":
		return pq.StringArray{"card", "boleto"}
	default:
		return pq.StringArray{"card"}
	}
}
