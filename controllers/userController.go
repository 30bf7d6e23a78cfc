package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Bayu-x3/Washify-Backend/config"
	"github.com/Bayu-x3/Washify-Backend/dtos"
	"github.com/Bayu-x3/Washify-Backend/models"
	"github.com/Bayu-x3/Washify-Backend/utils"
)

func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Preload("Outlet").Order("id asc").Find(&users).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", users)
}

func GetUserByID(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", user)
}

func CreateUser(c *gin.Context) {
	var input dtos.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := models.User{
		Nama:     input.Nama,
		Username: input.Username,
		Password: string(hashed),
		Role:     input.Role,
		IDOutlet: input.IDOutlet,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "Username already exists")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "User created successfully", user)
}

func UpdateUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	var input dtos.UserUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	if input.Nama != nil {
		user.Nama = *input.Nama
	}
	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), 10)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update user")
			return
		}
		user.Password = string(hashed)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.IDOutlet != nil {
		user.IDOutlet = *input.IDOutlet
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "User updated successfully", user)
}

func DeleteUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "User deleted successfully", nil)
}
