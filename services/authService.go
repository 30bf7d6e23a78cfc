package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Bayu-x3/Washify-Backend/config"
	"github.com/Bayu-x3/Washify-Backend/dtos"
	"github.com/Bayu-x3/Washify-Backend/models"
	"github.com/Bayu-x3/Washify-Backend/utils"
)

var (
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrUsernameTaken      = errors.New("Username already exists")
)

type AuthService interface {
	Login(input dtos.LoginInput) (*dtos.AuthResponse, error)
	Register(input dtos.RegisterInput) (*models.User, error)
}

type authService struct {
	maker *utils.TokenMaker
}

func NewAuthService(maker *utils.TokenMaker) AuthService {
	return &authService{maker: maker}
}

func (s *authService) Login(input dtos.LoginInput) (*dtos.AuthResponse, error) {
	var user models.User
	if err := config.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.maker.Generate(user)
	if err != nil {
		return nil, err
	}

	return &dtos.AuthResponse{Token: token}, nil
}

func (s *authService) Register(input dtos.RegisterInput) (*models.User, error) {
	var existing models.User
	if err := config.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Nama:     input.Nama,
		Username: input.Username,
		Password: string(hashed),
		Role:     input.Role,
		IDOutlet: input.IDOutlet,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}
