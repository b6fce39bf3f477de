package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"praiativa_backend/internals/configs"
	profileService "praiativa_backend/internals/features/profiles/service"
	authHelper "praiativa_backend/internals/features/users/auth/helper"
	authModel "praiativa_backend/internals/features/users/auth/model"
	authRepo "praiativa_backend/internals/features/users/auth/repository"
	helpers "praiativa_backend/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Nome     string `json:"nome"`
		Contato  string `json:"contato"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.Email, input.Password, input.Nome, input.Contato); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := authModel.UserModel{
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: passwordHash,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Email já cadastrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar usuário")
	}

	// Best-effort: o perfil não pode derrubar o cadastro
	if err := profileService.CreateInitialProfile(db, user.ID, input.Nome, input.Contato); err != nil {
		log.Printf("[WARN] falha ao criar perfil para %s: %v", user.ID, err)
	}

	return helpers.JsonCreated(c, "Cadastro realizado! Faça login para continuar.", nil)
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := authRepo.FindUserByEmail(db, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email ou senha incorretos")
	}

	token, expiresAt, err := generateAccessToken(user.ID.String())
	if err != nil {
		log.Println("[ERROR] Falha ao gerar token:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar token")
	}

	return helpers.JsonOK(c, "Login realizado!", fiber.Map{
		"access_token": token,
		"expires_at":   expiresAt.Unix(),
		"user_id":      user.ID,
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw, _ := c.Locals("access_token").(string)
	if raw == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Token ausente")
	}

	expiredAt := time.Now().Add(accessTTLDefault)
	if exp := tokenExpiry(raw); !exp.IsZero() {
		expiredAt = exp
	}

	if err := authRepo.BlacklistToken(db, raw, expiredAt); err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate key") && !strings.Contains(low, "unique") {
			log.Println("[ERROR] Falha ao registrar blacklist:", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao encerrar sessão")
		}
	}

	return helpers.JsonOK(c, "Sessão encerrada.", nil)
}

/* ==========================
   Token helpers
========================== */

func generateAccessToken(userID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	return signed, expiresAt, err
}

// tokenExpiry extrai o exp sem validar assinatura (só para TTL da blacklist).
func tokenExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Time{}
}
