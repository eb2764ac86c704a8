package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearInventarioRequest struct {
	Kardex           string           `json:"kardex"            validate:"required,min=1,max=60"`
	Nombre           string           `json:"nombre"            validate:"required,min=1,max=120"`
	Descripcion      string           `json:"descripcion"       validate:"max=500"`
	Categoria        string           `json:"categoria"`
	Cantidad         int              `json:"cantidad"          validate:"min=0"`
	PrecioUnitario   *decimal.Decimal `json:"precioUnitario"`
	Proveedor        string           `json:"proveedor"`
	Ubicacion        string           `json:"ubicacion"`
	Estado           string           `json:"estado"            validate:"omitempty,oneof=disponible 'en uso' 'en mantenimiento' 'dado de baja'"`
	FechaAdquisicion string           `json:"fechaAdquisicion"  validate:"omitempty,datetime=2006-01-02"`
}

type ActualizarInventarioRequest struct {
	Kardex           *string          `json:"kardex"            validate:"omitempty,min=1,max=60"`
	Nombre           *string          `json:"nombre"            validate:"omitempty,min=1,max=120"`
	Descripcion      *string          `json:"descripcion"       validate:"omitempty,max=500"`
	Categoria        *string          `json:"categoria"`
	Cantidad         *int             `json:"cantidad"          validate:"omitempty,min=0"`
	PrecioUnitario   *decimal.Decimal `json:"precioUnitario"`
	Proveedor        *string          `json:"proveedor"`
	Ubicacion        *string          `json:"ubicacion"`
	Estado           *string          `json:"estado"            validate:"omitempty,oneof=disponible 'en uso' 'en mantenimiento' 'dado de baja'"`
	FechaAdquisicion *string          `json:"fechaAdquisicion"  validate:"omitempty,datetime=2006-01-02"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type InventarioFilter struct {
	Categoria string `form:"categoria"`
	Estado    string `form:"estado"`
	Busqueda  string `form:"q"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InventarioResponse struct {
	ID               string  `json:"id"`
	Kardex           string  `json:"kardex"`
	Nombre           string  `json:"nombre"`
	Descripcion      string  `json:"descripcion"`
	Categoria        string  `json:"categoria"`
	Cantidad         int     `json:"cantidad"`
	PrecioUnitario   float64 `json:"precioUnitario"`
	Proveedor        string  `json:"proveedor"`
	Ubicacion        string  `json:"ubicacion"`
	Estado           string  `json:"estado"`
	FechaAdquisicion string  `json:"fechaAdquisicion"`
	AsignadoA        *string `json:"asignadoA,omitempty"`
}

type InventarioListResponse struct {
	Data  []InventarioResponse `json:"data"`
	Total int                  `json:"total"`
}
