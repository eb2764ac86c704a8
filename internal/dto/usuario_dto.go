package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=4"`
}

type ActualizarEstadoRequest struct {
	Activo *bool `json:"activo" validate:"required"`
}

type ActualizarRolRequest struct {
	Rol string `json:"rol" validate:"required,oneof=administrador moderador tecnico usuario"`
}

type AsignarEppRequest struct {
	InventarioID string `json:"inventarioId" validate:"required,uuid"`
	Motivo       string `json:"motivo"       validate:"max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"` // seconds
	User        UsuarioResponse `json:"user"`
}

type AsignacionResponse struct {
	InventarioID    string `json:"inventarioId"`
	Kardex          string `json:"kardex"`
	Nombre          string `json:"nombre"`
	FechaAsignacion string `json:"fechaAsignacion"`
	Motivo          string `json:"motivo,omitempty"`
}
