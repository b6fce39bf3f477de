package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel espelha a tabela profiles criada no signup
// (um registro por usuário autenticado).
type ProfileModel struct {
	ProfileID uuid.UUID `gorm:"column:profile_id;type:uuid;default:gen_random_uuid();primaryKey" json:"profile_id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;unique" json:"user_id"`
	Nome      string    `gorm:"column:nome;type:varchar(120);not null" json:"nome"`
	Contato   string    `gorm:"column:contato;type:varchar(40);not null" json:"contato"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProfileModel) TableName() string { return "profiles" }
