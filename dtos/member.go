package dtos

type MemberInput struct {
	Nama         string `json:"nama" validate:"required,min=3,max=50"`
	Alamat       string `json:"alamat" validate:"required,min=3,max=100"`
	JenisKelamin string `json:"jenis_kelamin" validate:"required,oneof=laki_laki perempuan"`
	Tlp          int64  `json:"tlp" validate:"required,gt=0"`
}

type MemberUpdateInput struct {
	Nama         *string `json:"nama" validate:"omitempty,min=3,max=50"`
	Alamat       *string `json:"alamat" validate:"omitempty,min=3,max=100"`
	JenisKelamin *string `json:"jenis_kelamin" validate:"omitempty,oneof=laki_laki perempuan"`
	Tlp          *int64  `json:"tlp" validate:"omitempty,gt=0"`
}
