package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bayu-x3/Washify-Backend/config"
	"github.com/Bayu-x3/Washify-Backend/dtos"
	"github.com/Bayu-x3/Washify-Backend/models"
	"github.com/Bayu-x3/Washify-Backend/utils"
)

func GetDetailTransaksi(c *gin.Context) {
	var details []models.DetailTransaksi
	if err := config.DB.
		Preload("Transaksi").
		Preload("Paket").
		Order("id asc").
		Find(&details).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch details")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", details)
}

func GetDetailTransaksiByID(c *gin.Context) {
	var detail models.DetailTransaksi
	if err := config.DB.
		Preload("Transaksi").
		Preload("Paket").
		First(&detail, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Detail Transaction not found")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", detail)
}

func CreateDetailTransaksi(c *gin.Context) {
	var input dtos.DetailTransaksiInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	detail := models.DetailTransaksi{
		IDTransaksi: input.IDTransaksi,
		IDPaket:     input.IDPaket,
		Qty:         input.Qty,
		Keterangan:  input.Keterangan,
	}

	if err := config.DB.Create(&detail).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "Failed to create detail")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Detail Transaction created successfully", detail)
}

func UpdateDetailTransaksi(c *gin.Context) {
	var detail models.DetailTransaksi
	if err := config.DB.First(&detail, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Detail Transaction not found")
		return
	}

	var input dtos.DetailTransaksiUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	if input.IDTransaksi != nil {
		detail.IDTransaksi = *input.IDTransaksi
	}
	if input.IDPaket != nil {
		detail.IDPaket = *input.IDPaket
	}
	if input.Qty != nil {
		detail.Qty = *input.Qty
	}
	if input.Keterangan != nil {
		detail.Keterangan = *input.Keterangan
	}

	if err := config.DB.Save(&detail).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update detail")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Detail Transaction updated successfully", detail)
}

func DeleteDetailTransaksi(c *gin.Context) {
	var detail models.DetailTransaksi
	if err := config.DB.First(&detail, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Detail Transaction not found")
		return
	}

	if err := config.DB.Delete(&detail).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete detail")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Detail Transaction deleted successfully", nil)
}
