package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

/* ===================== DTO ===================== */

type CreateInstructorRequest struct {
	Nome        string `json:"nome" validate:"required,max=120"`
	Contato     string `json:"contato" validate:"required,max=40"`
	Atividade   string `json:"atividade" validate:"required,max=80"`
	Valor       string `json:"valor" validate:"omitempty,max=20"`
	DiaHorario  string `json:"dia_horario" validate:"omitempty,max=120"`
	Localizacao string `json:"localizacao" validate:"omitempty,max=160"`

	// Dados bancários (opcionais)
	CPFCNPJ  *string `json:"cpf_cnpj" validate:"omitempty,max=20"`
	Banco    *string `json:"banco" validate:"omitempty,max=60"`
	Agencia  *string `json:"agencia" validate:"omitempty,max=10"`
	Conta    *string `json:"conta" validate:"omitempty,max=20"`
	ChavePix *string `json:"chave_pix" validate:"omitempty,max=120"`
}

func (r *CreateInstructorRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	if err := v.Struct(r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Contato) == "" {
		return errors.New("contato não pode ser só espaços")
	}
	return nil
}

type UpdateDefaultPriceRequest struct {
	Valor string `json:"valor" validate:"required,max=20"`
}
