package dto

import "github.com/go-playground/validator/v10"

/* =========================================================
   Request
========================================================= */

// CreateBillingRequest abre uma sessão de cobrança para um aluno.
// Datas ficam fora do validator de propósito: a ausência delas é regra
// de negócio do serviço de cobrança, não erro de formato.
type CreateBillingRequest struct {
	AlunoID        int64  `json:"aluno_id" validate:"required"`
	DataEmissao    string `json:"data_emissao"`
	DataVencimento string `json:"data_vencimento"`
	PaymentType    string `json:"payment_type" validate:"required,oneof=pix link boleto"`
}

func (r *CreateBillingRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}
