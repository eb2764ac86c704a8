package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados válidos para un item de inventario.
const (
	EstadoDisponible      = "disponible"
	EstadoEnUso           = "en uso"
	EstadoEnMantenimiento = "en mantenimiento"
	EstadoDadoDeBaja      = "dado de baja"
)

// EstadosInventario lists every valid estado, in display order.
var EstadosInventario = []string{EstadoDisponible, EstadoEnUso, EstadoEnMantenimiento, EstadoDadoDeBaja}

// EstadoValido reports whether s (already lower-cased) is a known estado.
func EstadoValido(s string) bool {
	for _, e := range EstadosInventario {
		if s == e {
			return true
		}
	}
	return false
}

// Inventario is a physical inventory item tracked by its kardex code.
// FechaAdquisicion is stored as an ISO date string (YYYY-MM-DD), the same
// shape the import pipeline normalizes into.
type Inventario struct {
	ID               uuid.UUID `bson:"_id" json:"id"`
	Kardex           string    `bson:"kardex" json:"kardex"`
	Nombre           string    `bson:"nombre" json:"nombre"`
	Descripcion      string    `bson:"descripcion" json:"descripcion"`
	Categoria        string    `bson:"categoria" json:"categoria"`
	Cantidad         int       `bson:"cantidad" json:"cantidad"`
	PrecioUnitario   float64   `bson:"precioUnitario" json:"precioUnitario"`
	Proveedor        string    `bson:"proveedor" json:"proveedor"`
	Ubicacion        string    `bson:"ubicacion" json:"ubicacion"`
	Estado           string    `bson:"estado" json:"estado"`
	FechaAdquisicion string    `bson:"fechaAdquisicion" json:"fechaAdquisicion"`

	// Asignación de herramientas / EPP a personal
	AsignadoA       *uuid.UUID `bson:"asignadoA,omitempty" json:"asignadoA,omitempty"`
	FechaAsignacion *time.Time `bson:"fechaAsignacion,omitempty" json:"fechaAsignacion,omitempty"`
	FechaDevolucion *time.Time `bson:"fechaDevolucion,omitempty" json:"fechaDevolucion,omitempty"`
	MotivoCambio    string     `bson:"motivoCambio,omitempty" json:"motivoCambio,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
