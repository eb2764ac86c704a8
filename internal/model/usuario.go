package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles de usuario del panel administrativo.
const (
	RolAdministrador = "administrador"
	RolModerador     = "moderador"
	RolTecnico       = "tecnico"
	RolUsuario       = "usuario"
)

// RolesDisponibles lists every assignable role.
var RolesDisponibles = []string{RolAdministrador, RolModerador, RolTecnico, RolUsuario}

// RolValido reports whether rol (already lower-cased) is assignable.
func RolValido(rol string) bool {
	for _, r := range RolesDisponibles {
		if rol == r {
			return true
		}
	}
	return false
}

// Usuario stores console users with role-based access.
type Usuario struct {
	ID           uuid.UUID `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Nombre       string    `bson:"nombre" json:"nombre"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Rol          string    `bson:"rol" json:"rol"`
	Activo       bool      `bson:"activo" json:"activo"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
