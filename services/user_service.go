package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/antoniofmoraes/nutri-plan/apperr"
	"github.com/antoniofmoraes/nutri-plan/logger"
	"github.com/antoniofmoraes/nutri-plan/models"
)

type UserService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserService(db *gorm.DB, log *logger.Logger) *UserService {
	return &UserService{db: db, log: log.With("service", "UserService")}
}

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (in UpdateUserInput) validate() error {
	if in.Name != nil && *in.Name == "" {
		return apperr.Validation("Dados inválidos",
			apperr.FieldError{Field: "name", Message: "Nome é obrigatório"})
	}
	return nil
}

func (s *UserService) Get(userID uuid.UUID) (*models.User, error) {
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

func (s *UserService) Update(userID uuid.UUID, in UpdateUserInput) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		var other models.User
		err := s.db.First(&other, "email = ?", *in.Email).Error
		if err == nil {
			return nil, apperr.Conflict("Email já está em uso")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user and every plan the user owns, in one transaction.
func (s *UserService) Delete(userID uuid.UUID) error {
	if _, err := s.Get(userID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var planIDs []uuid.UUID
		if err := tx.Model(&models.MealPlan{}).Where("user_id = ?", userID).Pluck("id", &planIDs).Error; err != nil {
			return err
		}
		for _, planID := range planIDs {
			if err := deletePlanTx(tx, planID); err != nil {
				return err
			}
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
	if err != nil {
		return err
	}
	s.log.Info("user deleted", "userId", userID)
	return nil
}
