package dtos

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Nama     string `json:"nama" validate:"required,min=3,max=50"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=50"`
	Role     string `json:"role" validate:"required,oneof=admin cashier owner"`
	IDOutlet uint   `json:"id_outlet" validate:"required,gt=0"`
}

type AuthResponse struct {
	Token string `json:"token"`
}
