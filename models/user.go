package models

import "time"

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Nama     string  `gorm:"size:50;not null" json:"nama"`
	Username string  `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password string  `gorm:"size:255;not null" json:"-"`
	Role     string  `gorm:"type:enum('admin','cashier','owner');not null" json:"role"`
	IDOutlet uint    `gorm:"not null" json:"id_outlet"`
	Outlet   *Outlet `gorm:"foreignKey:IDOutlet" json:"outlet,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
