package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=30"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	FechaCreacion string `json:"fechaCreacion"`
}
