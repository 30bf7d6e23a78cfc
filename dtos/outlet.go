package dtos

type OutletInput struct {
	Nama   string `json:"nama" validate:"required,min=1,max=100"`
	Alamat string `json:"alamat" validate:"required,min=1,max=255"`
	Tlp    int64  `json:"tlp" validate:"required,gt=0"`
}

type OutletUpdateInput struct {
	Nama   *string `json:"nama" validate:"omitempty,min=1,max=100"`
	Alamat *string `json:"alamat" validate:"omitempty,min=1,max=255"`
	Tlp    *int64  `json:"tlp" validate:"omitempty,gt=0"`
}
