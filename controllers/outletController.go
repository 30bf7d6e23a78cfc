package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bayu-x3/Washify-Backend/config"
	"github.com/Bayu-x3/Washify-Backend/dtos"
	"github.com/Bayu-x3/Washify-Backend/models"
	"github.com/Bayu-x3/Washify-Backend/utils"
)

func GetOutlets(c *gin.Context) {
	var outlets []models.Outlet
	if err := config.DB.Order("id asc").Find(&outlets).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch outlets")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", outlets)
}

func GetOutletByID(c *gin.Context) {
	var outlet models.Outlet
	if err := config.DB.First(&outlet, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Outlet not found")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", outlet)
}

func CreateOutlet(c *gin.Context) {
	var input dtos.OutletInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	outlet := models.Outlet{
		Nama:   input.Nama,
		Alamat: input.Alamat,
		Tlp:    input.Tlp,
	}

	if err := config.DB.Create(&outlet).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create outlet")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Outlet created successfully", outlet)
}

func UpdateOutlet(c *gin.Context) {
	var outlet models.Outlet
	if err := config.DB.First(&outlet, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Outlet not found")
		return
	}

	var input dtos.OutletUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	// only supplied fields change
	if input.Nama != nil {
		outlet.Nama = *input.Nama
	}
	if input.Alamat != nil {
		outlet.Alamat = *input.Alamat
	}
	if input.Tlp != nil {
		outlet.Tlp = *input.Tlp
	}

	if err := config.DB.Save(&outlet).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update outlet")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Outlet updated successfully", outlet)
}

// DeleteOutlet removes the outlet and every dependent row, dependents first,
// inside one transaction so a partial failure rolls everything back.
func DeleteOutlet(c *gin.Context) {
	var outlet models.Outlet
	if err := config.DB.First(&outlet, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Outlet not found")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		transaksiIDs := tx.Model(&models.Transaksi{}).
			Select("id").
			Where("id_outlet = ?", outlet.ID)

		if err := tx.Where("id_transaksi IN (?)", transaksiIDs).
			Delete(&models.DetailTransaksi{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id_outlet = ?", outlet.ID).
			Delete(&models.Transaksi{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id_outlet = ?", outlet.ID).
			Delete(&models.Paket{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id_outlet = ?", outlet.ID).
			Delete(&models.User{}).Error; err != nil {
			return err
		}
		return tx.Delete(&outlet).Error
	})

	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete outlet")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Outlet and related data deleted successfully", nil)
}
