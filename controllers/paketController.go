package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bayu-x3/Washify-Backend/config"
	"github.com/Bayu-x3/Washify-Backend/dtos"
	"github.com/Bayu-x3/Washify-Backend/models"
	"github.com/Bayu-x3/Washify-Backend/utils"
)

func GetPakets(c *gin.Context) {
	var pakets []models.Paket
	if err := config.DB.Preload("Outlet").Order("id asc").Find(&pakets).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch pakets")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", pakets)
}

func GetPaketByID(c *gin.Context) {
	var paket models.Paket
	if err := config.DB.First(&paket, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Paket not found")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", paket)
}

func CreatePaket(c *gin.Context) {
	var input dtos.PaketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	paket := models.Paket{
		IDOutlet:  input.IDOutlet,
		Jenis:     input.Jenis,
		NamaPaket: input.NamaPaket,
		Harga:     input.Harga,
	}

	if err := config.DB.Create(&paket).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create paket")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Paket created successfully", paket)
}

func UpdatePaket(c *gin.Context) {
	var paket models.Paket
	if err := config.DB.First(&paket, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Paket not found")
		return
	}

	var input dtos.PaketUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	if input.IDOutlet != nil {
		paket.IDOutlet = *input.IDOutlet
	}
	if input.Jenis != nil {
		paket.Jenis = *input.Jenis
	}
	if input.NamaPaket != nil {
		paket.NamaPaket = *input.NamaPaket
	}
	if input.Harga != nil {
		paket.Harga = *input.Harga
	}

	if err := config.DB.Save(&paket).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update paket")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Paket updated successfully", paket)
}

func DeletePaket(c *gin.Context) {
	var paket models.Paket
	if err := config.DB.First(&paket, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Paket not found")
		return
	}

	if err := config.DB.Delete(&paket).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete paket")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Paket deleted successfully", nil)
}
