package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstructorModel espelha praiativa_instrutores.
// instrutor_numero nasce igual ao contato no cadastro, mas as duas colunas
// são independentes e podem divergir depois (o resolver não assume igualdade).
type InstructorModel struct {
	InstrutorID int `gorm:"column:instrutor_id;primaryKey;autoIncrement" json:"instrutor_id"`

	UserID *uuid.UUID `gorm:"column:user_id;type:uuid;index" json:"user_id,omitempty"`

	Nome            string `gorm:"column:nome;type:varchar(120);not null" json:"nome"`
	Contato         string `gorm:"column:contato;type:varchar(40);not null" json:"contato"`
	Atividade       string `gorm:"column:atividade;type:varchar(80);not null" json:"atividade"`
	Valor           string `gorm:"column:valor;type:varchar(20)" json:"valor"`
	DiaHorario      string `gorm:"column:dia_horario;type:varchar(120)" json:"dia_horario"`
	Localizacao     string `gorm:"column:localizacao;type:varchar(160)" json:"localizacao"`
	InstrutorNumero string `gorm:"column:instrutor_numero;type:varchar(40)" json:"instrutor_numero"`

	// Dados bancários (opcionais)
	CPFCNPJ  *string `gorm:"column:cpf_cnpj;type:varchar(20)" json:"cpf_cnpj,omitempty"`
	Banco    *string `gorm:"column:banco;type:varchar(60)" json:"banco,omitempty"`
	Agencia  *string `gorm:"column:agencia;type:varchar(10)" json:"agencia,omitempty"`
	Conta    *string `gorm:"column:conta;type:varchar(20)" json:"conta,omitempty"`
	ChavePix *string `gorm:"column:chave_pix;type:varchar(120)" json:"chave_pix,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (InstructorModel) TableName() string { return "praiativa_instrutores" }
