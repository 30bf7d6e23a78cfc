package models

import "time"

type Member struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nama         string    `gorm:"size:50;not null" json:"nama"`
	Alamat       string    `gorm:"size:100;not null" json:"alamat"`
	JenisKelamin string    `gorm:"type:enum('laki_laki','perempuan');not null" json:"jenis_kelamin"`
	Tlp          int64     `gorm:"not null" json:"tlp"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
