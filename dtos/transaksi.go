package dtos

import "time"

type TransaksiInput struct {
	IDOutlet      uint       `json:"id_outlet" validate:"required,gt=0"`
	KodeInvoice   string     `json:"kode_invoice" validate:"required,min=1,max=100"`
	IDMember      uint       `json:"id_member" validate:"required,gt=0"`
	Tgl           time.Time  `json:"tgl" validate:"required"`
	BatasWaktu    time.Time  `json:"batas_waktu" validate:"required"`
	TglBayar      *time.Time `json:"tgl_bayar"`
	BiayaTambahan float64    `json:"biaya_tambahan" validate:"gte=0"`
	Diskon        float64    `json:"diskon" validate:"gte=0,lte=100"`
	Pajak         float64    `json:"pajak" validate:"gte=0"`
	Status        string     `json:"status" validate:"required,oneof=baru proses selesai diambil"`
	Dibayar       string     `json:"dibayar" validate:"required,oneof=dibayar belum_dibayar"`
	IDUser        uint       `json:"id_user" validate:"required,gt=0"`
}

type TransaksiUpdateInput struct {
	IDOutlet      *uint      `json:"id_outlet" validate:"omitempty,gt=0"`
	KodeInvoice   *string    `json:"kode_invoice" validate:"omitempty,min=1,max=100"`
	IDMember      *uint      `json:"id_member" validate:"omitempty,gt=0"`
	Tgl           *time.Time `json:"tgl"`
	BatasWaktu    *time.Time `json:"batas_waktu"`
	TglBayar      *time.Time `json:"tgl_bayar"`
	BiayaTambahan *float64   `json:"biaya_tambahan" validate:"omitempty,gte=0"`
	Diskon        *float64   `json:"diskon" validate:"omitempty,gte=0,lte=100"`
	Pajak         *float64   `json:"pajak" validate:"omitempty,gte=0"`
	Status        *string    `json:"status" validate:"omitempty,oneof=baru proses selesai diambil"`
	Dibayar       *string    `json:"dibayar" validate:"omitempty,oneof=dibayar belum_dibayar"`
	IDUser        *uint      `json:"id_user" validate:"omitempty,gt=0"`
}
