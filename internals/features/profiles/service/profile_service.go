package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	profileModel "praiativa_backend/internals/features/profiles/model"
)

// CreateInitialProfile grava o registro de perfil vinculado ao signup.
// O chamador decide o que fazer com o erro (o cadastro não aborta por ele).
func CreateInitialProfile(db *gorm.DB, userID uuid.UUID, nome, contato string) error {
	return db.Create(&profileModel.ProfileModel{
		UserID:  userID,
		Nome:    nome,
		Contato: contato,
	}).Error
}
