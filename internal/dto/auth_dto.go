package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=1,max=100"`
	Username string `json:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required,min=1"`
	Rol      string `json:"rol"      validate:"required,rol"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1"`
	Rol      string `json:"rol"      validate:"required,rol"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse never carries the password.
type UsuarioResponse struct {
	Nombre   string `json:"nombre"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
	Cedula   string `json:"cedula"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"` // seconds
	User        UsuarioResponse `json:"user"`
}
