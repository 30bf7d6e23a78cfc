package dtos

type DetailTransaksiInput struct {
	IDTransaksi uint   `json:"id_transaksi" validate:"required,gt=0"`
	IDPaket     uint   `json:"id_paket" validate:"required,gt=0"`
	Qty         int    `json:"qty" validate:"gte=0"`
	Keterangan  string `json:"keterangan" validate:"required,min=1,max=255"`
}

type DetailTransaksiUpdateInput struct {
	IDTransaksi *uint   `json:"id_transaksi" validate:"omitempty,gt=0"`
	IDPaket     *uint   `json:"id_paket" validate:"omitempty,gt=0"`
	Qty         *int    `json:"qty" validate:"omitempty,gte=0"`
	Keterangan  *string `json:"keterangan" validate:"omitempty,min=1,max=255"`
}
