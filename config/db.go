package config

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Bayu-x3/Washify-Backend/models"
)

var DB *gorm.DB

func ConnectDatabase(cfg Config) {
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Outlet{},
		&models.User{},
		&models.Member{},
		&models.Paket{},
		&models.Transaksi{},
		&models.DetailTransaksi{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	DB = db
}
