package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearGalponRequest struct {
	Nombre    string `json:"nombre"    validate:"required,min=1,max=100"`
	Ubicacion string `json:"ubicacion" validate:"max=200"`
	Estado    string `json:"estado"    validate:"omitempty,oneof=operativo 'en mantenimiento' inactivo"`
}

type ActualizarGalponRequest struct {
	Nombre    *string `json:"nombre"    validate:"omitempty,min=1,max=100"`
	Ubicacion *string `json:"ubicacion" validate:"omitempty,max=200"`
	Estado    *string `json:"estado"    validate:"omitempty,oneof=operativo 'en mantenimiento' inactivo"`
}

type CrearMantenimientoRequest struct {
	Tipo          string `json:"tipo"          validate:"required,min=1,max=100"`
	Estado        string `json:"estado"        validate:"omitempty,oneof=pendiente 'en progreso' completado"`
	Fecha         string `json:"fecha"         validate:"omitempty,datetime=2006-01-02"`
	TecnicoNombre string `json:"tecnicoNombre" validate:"max=100"`
	Descripcion   string `json:"descripcion"   validate:"max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type GalponResponse struct {
	ID                  string `json:"id"`
	Nombre              string `json:"nombre"`
	Ubicacion           string `json:"ubicacion"`
	Estado              string `json:"estado"`
	UltimoMantenimiento string `json:"ultimoMantenimiento,omitempty"`
}

type MantenimientoResponse struct {
	ID            string `json:"id"`
	GalponID      string `json:"galponId"`
	Tipo          string `json:"tipo"`
	Estado        string `json:"estado"`
	Fecha         string `json:"fecha,omitempty"`
	TecnicoNombre string `json:"tecnicoNombre"`
	Descripcion   string `json:"descripcion"`
}
