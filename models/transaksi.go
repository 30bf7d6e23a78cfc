package models

import "time"

type Transaksi struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	IDOutlet      uint       `gorm:"not null" json:"id_outlet"`
	Outlet        *Outlet    `gorm:"foreignKey:IDOutlet" json:"outlet,omitempty"`
	KodeInvoice   string     `gorm:"size:100;uniqueIndex;not null" json:"kode_invoice"`
	IDMember      uint       `gorm:"not null" json:"id_member"`
	Member        *Member    `gorm:"foreignKey:IDMember" json:"member,omitempty"`
	Tgl           time.Time  `gorm:"not null" json:"tgl"`
	BatasWaktu    time.Time  `gorm:"not null" json:"batas_waktu"`
	TglBayar      *time.Time `json:"tgl_bayar"`
	BiayaTambahan float64    `gorm:"not null;default:0" json:"biaya_tambahan"`
	Diskon        float64    `gorm:"not null;default:0" json:"diskon"`
	Pajak         float64    `gorm:"not null;default:0" json:"pajak"`
	Status        string     `gorm:"type:enum('baru','proses','selesai','diambil');default:'baru'" json:"status"`
	Dibayar       string     `gorm:"type:enum('dibayar','belum_dibayar');default:'belum_dibayar'" json:"dibayar"`
	IDUser        uint       `gorm:"not null" json:"id_user"`
	User          *User      `gorm:"foreignKey:IDUser" json:"user,omitempty"`
}
