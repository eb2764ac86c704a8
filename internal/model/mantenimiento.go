package model

import (
	"time"

	"github.com/google/uuid"
)

// Mantenimiento is a maintenance event logged against a galpón.
//
// Fecha is deliberately `any`: historical documents carry a localized long
// form string ("12 de marzo, 2024") while newer ones carry a native datetime.
// Reporting resolves both through reports.ResolverFecha — nothing else should
// inspect this field directly.
type Mantenimiento struct {
	ID            uuid.UUID `bson:"_id" json:"id"`
	GalponID      uuid.UUID `bson:"galponId" json:"galponId"`
	Tipo          string    `bson:"tipo" json:"tipo"`
	Estado        string    `bson:"estado" json:"estado"`
	Fecha         any       `bson:"fecha" json:"fecha"`
	TecnicoNombre string    `bson:"tecnicoNombre" json:"tecnicoNombre"`
	Descripcion   string    `bson:"descripcion" json:"descripcion"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
