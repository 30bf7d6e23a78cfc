package models

import "time"

type Outlet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"size:100;not null" json:"nama"`
	Alamat    string    `gorm:"size:255;not null" json:"alamat"`
	Tlp       int64     `gorm:"not null" json:"tlp"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
