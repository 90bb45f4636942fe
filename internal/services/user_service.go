package services

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"synctech/internal/authz"
	"synctech/internal/models"
)

type UserStore interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}

type UserService struct {
	Store UserStore
	Auth  *AuthService
}

func NewUserService(store UserStore, auth *AuthService) *UserService {
	return &UserService{Store: store, Auth: auth}
}

func (s *UserService) Register(email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errors.New("valid email is required")
	}
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	existing, err := s.Store.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       authz.RoleOperator,
		CreatedAt:    time.Now(),
	}
	if err := s.Store.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and returns a signed token for the session.
func (s *UserService) Login(email, password string) (string, *models.User, error) {
	user, err := s.Store.GetByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	token, err := s.Auth.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
