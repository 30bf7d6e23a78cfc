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

func GetTransaksi(c *gin.Context) {
	var transaksi []models.Transaksi
	if err := config.DB.
		Preload("Outlet").
		Preload("Member").
		Preload("User").
		Order("id asc").
		Find(&transaksi).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", transaksi)
}

func GetTransaksiByID(c *gin.Context) {
	var transaksi models.Transaksi
	if err := config.DB.
		Preload("Outlet").
		Preload("Member").
		Preload("User").
		First(&transaksi, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Transaction not found")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", transaksi)
}

func CreateTransaksi(c *gin.Context) {
	var input dtos.TransaksiInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	transaksi := models.Transaksi{
		IDOutlet:      input.IDOutlet,
		KodeInvoice:   input.KodeInvoice,
		IDMember:      input.IDMember,
		Tgl:           input.Tgl,
		BatasWaktu:    input.BatasWaktu,
		TglBayar:      input.TglBayar,
		BiayaTambahan: input.BiayaTambahan,
		Diskon:        input.Diskon,
		Pajak:         input.Pajak,
		Status:        input.Status,
		Dibayar:       input.Dibayar,
		IDUser:        input.IDUser,
	}

	if err := config.DB.Create(&transaksi).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "Failed to create transaction")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Transaction created successfully", transaksi)
}

func UpdateTransaksi(c *gin.Context) {
	var transaksi models.Transaksi
	if err := config.DB.First(&transaksi, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Transaction not found")
		return
	}

	var input dtos.TransaksiUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	if input.IDOutlet != nil {
		transaksi.IDOutlet = *input.IDOutlet
	}
	if input.KodeInvoice != nil {
		transaksi.KodeInvoice = *input.KodeInvoice
	}
	if input.IDMember != nil {
		transaksi.IDMember = *input.IDMember
	}
	if input.Tgl != nil {
		transaksi.Tgl = *input.Tgl
	}
	if input.BatasWaktu != nil {
		transaksi.BatasWaktu = *input.BatasWaktu
	}
	// an omitted tgl_bayar leaves the stored payment date untouched
	if input.TglBayar != nil {
		transaksi.TglBayar = input.TglBayar
	}
	if input.BiayaTambahan != nil {
		transaksi.BiayaTambahan = *input.BiayaTambahan
	}
	if input.Diskon != nil {
		transaksi.Diskon = *input.Diskon
	}
	if input.Pajak != nil {
		transaksi.Pajak = *input.Pajak
	}
	if input.Status != nil {
		transaksi.Status = *input.Status
	}
	if input.Dibayar != nil {
		transaksi.Dibayar = *input.Dibayar
	}
	if input.IDUser != nil {
		transaksi.IDUser = *input.IDUser
	}

	if err := config.DB.Save(&transaksi).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update transaction")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Transaction updated successfully", transaksi)
}

// DeleteTransaksi removes the transaction with its detail rows first so the
// foreign key constraint holds throughout.
func DeleteTransaksi(c *gin.Context) {
	var transaksi models.Transaksi
	if err := config.DB.First(&transaksi, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Transaction not found")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_transaksi = ?", transaksi.ID).
			Delete(&models.DetailTransaksi{}).Error; err != nil {
			return err
		}
		return tx.Delete(&transaksi).Error
	})

	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Transaction and related data deleted successfully", nil)
}
