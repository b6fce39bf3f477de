package helper

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// ValidateRegisterInput cobre as regras mínimas do cadastro
// (nome e contato são obrigatórios, igual ao formulário original).
func ValidateRegisterInput(email, password, nome, contato string) error {
	if !emailRe.MatchString(email) {
		return errors.New("email inválido")
	}
	if len(password) < 6 {
		return errors.New("a senha precisa de pelo menos 6 caracteres")
	}
	if nome == "" || contato == "" {
		return errors.New("nome e contato são obrigatórios para cadastro")
	}
	return nil
}
