package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Bayu-x3/Washify-Backend/config"
	"github.com/Bayu-x3/Washify-Backend/routes"
	"github.com/Bayu-x3/Washify-Backend/seeders"
	"github.com/Bayu-x3/Washify-Backend/utils"
)

func main() {
	cfg := config.Load()

	// connect db
	config.ConnectDatabase(cfg)

	// init router
	r := gin.Default() // Logger & Recovery included

	// CORS before routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// the signing secret comes from config so each environment rotates its own
	maker := utils.NewTokenMaker(cfg.JWTSecret)

	// routes
	routes.RegisterRoutes(r, maker)

	// seed data
	seeders.Seed()

	r.Run(":" + cfg.Port)
}
