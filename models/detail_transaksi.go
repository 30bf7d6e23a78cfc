package models

type DetailTransaksi struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	IDTransaksi uint       `gorm:"not null" json:"id_transaksi"`
	Transaksi   *Transaksi `gorm:"foreignKey:IDTransaksi" json:"transaksi,omitempty"`
	IDPaket     uint       `gorm:"not null" json:"id_paket"`
	Paket       *Paket     `gorm:"foreignKey:IDPaket" json:"paket,omitempty"`
	Qty         int        `gorm:"not null;default:0" json:"qty"`
	Keterangan  string     `gorm:"size:255;not null" json:"keterangan"`
}
