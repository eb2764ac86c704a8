package dto

import "github.com/santosdevelop/Manto/internal/importer"

// ─── Responses ───────────────────────────────────────────────────────────────

// PreviewResponse feeds the mapping modal: detected headers, the inferred
// mapping, validation state under it and a sample of rows.
type PreviewResponse struct {
	Encabezados []string                   `json:"encabezados"`
	Mapeo       importer.Mapeo             `json:"mapeo"`
	Errores     []importer.ErrorValidacion `json:"errores"`
	Filas       []map[string]string        `json:"filas"`
	TotalFilas  int                        `json:"totalFilas"`
}

// ImportarResponse reports the commit outcome. Importados can be non-zero
// even when Errores is present: earlier chunks stay committed.
type ImportarResponse struct {
	JobID      string                     `json:"jobId"`
	Importados int                        `json:"importados"`
	Errores    []importer.ErrorValidacion `json:"errores,omitempty"`
}

type ProgresoResponse struct {
	JobID    string `json:"jobId"`
	Progreso int    `json:"progreso"`
}

type ImportLogResponse struct {
	ID            string            `json:"id"`
	FileName      string            `json:"fileName"`
	FileSize      int64             `json:"fileSize"`
	DownloadURL   string            `json:"downloadUrl"`
	ImportedItems int               `json:"importedItems"`
	ImportedBy    string            `json:"importedBy"`
	ImportedAt    string            `json:"importedAt"`
	Mapping       map[string]string `json:"mapping"`
}
