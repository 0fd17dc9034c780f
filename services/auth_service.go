package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/antoniofmoraes/nutri-plan/apperr"
	"github.com/antoniofmoraes/nutri-plan/logger"
	"github.com/antoniofmoraes/nutri-plan/models"
	"github.com/antoniofmoraes/nutri-plan/utils"
)

type AuthService struct {
	db      *gorm.DB
	log     *logger.Logger
	secret  []byte
	expires time.Duration
}

func NewAuthService(db *gorm.DB, log *logger.Logger, secret []byte, expires time.Duration) *AuthService {
	return &AuthService{
		db:      db,
		log:     log.With("service", "AuthService"),
		secret:  secret,
		expires: expires,
	}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthUser is the credential-free user shape returned by auth endpoints.
type AuthUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type AuthResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}

func (s *AuthService) Register(in RegisterInput) (*AuthResponse, error) {
	var existing models.User
	err := s.db.First(&existing, "email = ?", in.Email).Error
	if err == nil {
		return nil, apperr.Conflict("Email já cadastrado")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{Name: in.Name, Email: in.Email, Password: hashed}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	s.log.Info("user registered", "userId", user.ID)

	return s.respond(&user)
}

func (s *AuthService) Login(in LoginInput) (*AuthResponse, error) {
	var user models.User
	err := s.db.First(&user, "email = ?", in.Email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unauthorized("Credenciais inválidas")
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(in.Password, user.Password) {
		return nil, apperr.Unauthorized("Credenciais inválidas")
	}

	return s.respond(&user)
}

func (s *AuthService) Me(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Usuário não encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) respond(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateJWT(s.secret, user.ID, user.Email, s.expires)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:  AuthUser{ID: user.ID, Name: user.Name, Email: user.Email},
		Token: token,
	}, nil
}
