package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bayu-x3/Washify-Backend/dtos"
	"github.com/Bayu-x3/Washify-Backend/services"
	"github.com/Bayu-x3/Washify-Backend/utils"
)

type AuthController struct {
	service services.AuthService
}

func NewAuthController(service services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input dtos.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	user, err := ctl.service.Register(input)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			utils.SendError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "User created successfully", user)
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input dtos.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	resp, err := ctl.service.Login(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.SendError(c, http.StatusUnauthorized, err.Error())
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Logged in successfully", resp)
}

// Logout is a stateless acknowledgment; tokens stay valid until expiry.
func (ctl *AuthController) Logout(c *gin.Context) {
	utils.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

func (ctl *AuthController) Me(c *gin.Context) {
	claims := utils.GetClaims(c)
	if claims == nil {
		utils.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Success", gin.H{
		"id":       claims.UserID,
		"nama":     claims.Nama,
		"username": claims.Username,
		"role":     claims.Role,
	})
}
