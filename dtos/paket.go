package dtos

type PaketInput struct {
	IDOutlet  uint   `json:"id_outlet" validate:"required,gt=0"`
	Jenis     string `json:"jenis" validate:"required,oneof=kiloan selimut bed_cover kaos lain"`
	NamaPaket string `json:"nama_paket" validate:"required,min=1,max=100"`
	Harga     int    `json:"harga" validate:"required,gt=0"`
}

type PaketUpdateInput struct {
	IDOutlet  *uint   `json:"id_outlet" validate:"omitempty,gt=0"`
	Jenis     *string `json:"jenis" validate:"omitempty,oneof=kiloan selimut bed_cover kaos lain"`
	NamaPaket *string `json:"nama_paket" validate:"omitempty,min=1,max=100"`
	Harga     *int    `json:"harga" validate:"omitempty,gt=0"`
}
