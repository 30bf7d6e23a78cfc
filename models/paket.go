package models

type Paket struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	IDOutlet  uint    `gorm:"not null" json:"id_outlet"`
	Outlet    *Outlet `gorm:"foreignKey:IDOutlet" json:"outlet,omitempty"`
	Jenis     string  `gorm:"type:enum('kiloan','selimut','bed_cover','kaos','lain');not null" json:"jenis"`
	NamaPaket string  `gorm:"size:100;not null" json:"nama_paket"`
	Harga     int     `gorm:"not null" json:"harga"`
}
