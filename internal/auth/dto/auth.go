package dto

type RegisterRequest struct {
	NombreUsuario string `json:"nombre_usuario" binding:"required"`
	Correo        string `json:"correo" binding:"required,email"`
	Contrasena    string `json:"contraseña" binding:"required,min=6"`
}

type LoginRequest struct {
	Correo     string `json:"correo" binding:"required,email"`
	Contrasena string `json:"contraseña" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
