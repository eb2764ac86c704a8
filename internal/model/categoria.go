package model

import (
	"time"

	"github.com/google/uuid"
)

// Categoria classifies inventory items. Nombre is unique (case-insensitive).
type Categoria struct {
	ID            uuid.UUID `bson:"_id" json:"id"`
	Nombre        string    `bson:"nombre" json:"nombre"`
	FechaCreacion time.Time `bson:"fechaCreacion" json:"fechaCreacion"`
}
