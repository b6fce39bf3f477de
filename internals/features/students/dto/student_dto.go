package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CreateStudentRequest struct {
	Nome     string  `json:"nome" validate:"required,max=120"`
	Contato  string  `json:"contato" validate:"required,max=40"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Whatsapp *string `json:"whatsapp" validate:"omitempty,max=40"`

	Atividade        string   `json:"atividade" validate:"omitempty,max=80"`
	Valor            string   `json:"valor" validate:"omitempty,max=20"`
	ValorMensalidade *float64 `json:"valor_mensalidade" validate:"omitempty,gt=0"`
	Validade         *string  `json:"validade" validate:"omitempty,max=20"`
	DataVencimento   *string  `json:"data_vencimento" validate:"omitempty,max=20"`
}

func (r *CreateStudentRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	if err := v.Struct(r); err != nil {
		return err
	}
	// valor em string precisa ser decimal parseável quando presente
	if s := strings.TrimSpace(r.Valor); s != "" {
		if _, err := decimal.NewFromString(s); err != nil {
			return errors.New("valor não é um número decimal válido")
		}
	}
	return nil
}
