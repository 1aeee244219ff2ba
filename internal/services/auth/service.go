// Package auth authenticates the operators of the admin API. There is
// no self-service registration; accounts come from cmd/seed.
package auth

import (
	"errors"
	"log"

	"insights/internal/models"
	"insights/internal/repositories"
	"insights/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	// Login verifies the credentials and returns a signed admin token.
	Login(email, password string) (string, error)
}

type service struct {
	admins repositories.AdminUserRepository
}

func NewService(admins repositories.AdminUserRepository) Service {
	return &service{
		admins: admins,
	}
}

func (s *service) Login(email, password string) (string, error) {
	user, err := s.admins.GetByEmail(email)
	if err != nil {
		log.Printf("login failed: no admin user for %s", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("login failed: incorrect password for admin %d", user.ID)
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateAdminToken(&models.AdminClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		log.Println("error generating token:", err)
		return "", errors.New("error generating token")
	}
	return token, nil
}
