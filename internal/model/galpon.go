package model

import (
	"time"

	"github.com/google/uuid"
)

// Galpon is a physical facility unit whose maintenance history is tracked.
type Galpon struct {
	ID                  uuid.UUID `bson:"_id" json:"id"`
	Nombre              string    `bson:"nombre" json:"nombre"`
	Ubicacion           string    `bson:"ubicacion" json:"ubicacion"`
	Estado              string    `bson:"estado" json:"estado"`
	UltimoMantenimiento string    `bson:"ultimoMantenimiento,omitempty" json:"ultimoMantenimiento,omitempty"`
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt" json:"updatedAt"`
}
