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

func GetMembers(c *gin.Context) {
	var members []models.Member
	if err := config.DB.Order("id asc").Find(&members).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch members")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", members)
}

func GetMemberByID(c *gin.Context) {
	var member models.Member
	if err := config.DB.First(&member, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Member not found")
		return
	}
	utils.SendSuccess(c, http.StatusOK, "Success", member)
}

func CreateMember(c *gin.Context) {
	var input dtos.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	member := models.Member{
		Nama:         input.Nama,
		Alamat:       input.Alamat,
		JenisKelamin: input.JenisKelamin,
		Tlp:          input.Tlp,
	}

	if err := config.DB.Create(&member).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create member")
		return
	}

	utils.SendSuccess(c, http.StatusCreated, "Member created successfully", member)
}

func UpdateMember(c *gin.Context) {
	var member models.Member
	if err := config.DB.First(&member, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Member not found")
		return
	}

	var input dtos.MemberUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := utils.Validate(input); errs != nil {
		utils.SendValidationError(c, errs)
		return
	}

	if input.Nama != nil {
		member.Nama = *input.Nama
	}
	if input.Alamat != nil {
		member.Alamat = *input.Alamat
	}
	if input.JenisKelamin != nil {
		member.JenisKelamin = *input.JenisKelamin
	}
	if input.Tlp != nil {
		member.Tlp = *input.Tlp
	}

	if err := config.DB.Save(&member).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update member")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Member updated successfully", member)
}

// DeleteMember cascades to the member's transactions and their detail rows,
// dependents first, in one transaction.
func DeleteMember(c *gin.Context) {
	var member models.Member
	if err := config.DB.First(&member, c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Member not found")
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		transaksiIDs := tx.Model(&models.Transaksi{}).
			Select("id").
			Where("id_member = ?", member.ID)

		if err := tx.Where("id_transaksi IN (?)", transaksiIDs).
			Delete(&models.DetailTransaksi{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id_member = ?", member.ID).
			Delete(&models.Transaksi{}).Error; err != nil {
			return err
		}
		return tx.Delete(&member).Error
	})

	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete member")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Member and related data deleted successfully", nil)
}
