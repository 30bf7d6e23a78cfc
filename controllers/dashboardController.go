package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bayu-x3/Washify-Backend/services"
	"github.com/Bayu-x3/Washify-Backend/utils"
)

func GetDashboard(c *gin.Context) {
	claims := utils.GetClaims(c)
	if claims == nil {
		utils.SendError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	service := services.NewDashboardService()
	data, err := service.GetDashboardData(claims.Nama, claims.Role)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Dashboard data retrieved successfully", data)
}
