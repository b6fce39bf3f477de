package model

import (
	"time"

	"gorm.io/gorm"
)

// StudentModel espelha praiativa_alunos.
// O vínculo com instrutor tem duas chaves que convivem sem migração:
// contato_instrutor (FK numérica legada) e numero_instrutor (string, mais nova).
type StudentModel struct {
	AlunoID int64 `gorm:"column:aluno_id;primaryKey;autoIncrement" json:"aluno_id"`

	Nome     string  `gorm:"column:nome;type:varchar(120);not null" json:"nome"`
	Contato  string  `gorm:"column:contato;type:varchar(40);not null" json:"contato"`
	Email    *string `gorm:"column:email;type:varchar(120)" json:"email,omitempty"`
	Whatsapp *string `gorm:"column:whatsapp;type:varchar(40)" json:"whatsapp,omitempty"`

	Atividade        string   `gorm:"column:atividade;type:varchar(80)" json:"atividade"`
	Valor            string   `gorm:"column:valor;type:varchar(20)" json:"valor"`
	ValorMensalidade *float64 `gorm:"column:valor_mensalidade" json:"valor_mensalidade,omitempty"`
	Validade         *string  `gorm:"column:validade;type:varchar(20)" json:"validade,omitempty"`
	DataVencimento   *string  `gorm:"column:data_vencimento;type:varchar(20)" json:"data_vencimento,omitempty"`

	ContatoInstrutor *int    `gorm:"column:contato_instrutor" json:"contato_instrutor,omitempty"`
	NumeroInstrutor  *string `gorm:"column:numero_instrutor;type:varchar(40)" json:"numero_instrutor,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "praiativa_alunos" }
