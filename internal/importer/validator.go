package importer

import (
	"fmt"
	"strings"

	"github.com/santosdevelop/Manto/internal/model"
)

// ErrorValidacion is one row-scoped problem found during validation.
// Fila is the spreadsheet row as the operator sees it: data index + 2
// (1-based plus the header row).
type ErrorValidacion struct {
	Fila    int    `json:"fila"`
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// camposRequeridos must resolve to a non-empty value for every row.
var camposRequeridos = []string{"nombre", "cantidad"}

// Validar checks every row against the field rules under the given mapping.
// Errors accumulate — a row can contribute several. The result is recomputed
// from scratch on every call; the caller re-runs it whenever the mapping
// changes and once more right before committing.
func Validar(filas []Fila, m Mapeo) []ErrorValidacion {
	var errs []ErrorValidacion

	for i, fila := range filas {
		numFila := i + 2

		for _, campo := range camposRequeridos {
			if m.Valor(fila, campo).Vacia() {
				errs = append(errs, ErrorValidacion{
					Fila:    numFila,
					Campo:   campo,
					Mensaje: fmt.Sprintf("%s es requerido", Etiqueta(campo)),
				})
			}
		}

		if celda := m.Valor(fila, "cantidad"); !celda.Vacia() {
			if n, ok := celda.ComoNumero(); !ok {
				errs = append(errs, ErrorValidacion{Fila: numFila, Campo: "cantidad", Mensaje: "Cantidad debe ser un número"})
			} else if n < 0 {
				errs = append(errs, ErrorValidacion{Fila: numFila, Campo: "cantidad", Mensaje: "Cantidad no puede ser negativa"})
			}
		}

		// A missing price is fine; a present one must be a non-negative number.
		if celda := m.Valor(fila, "precioUnitario"); !celda.Vacia() {
			if n, ok := celda.ComoNumero(); !ok {
				errs = append(errs, ErrorValidacion{Fila: numFila, Campo: "precioUnitario", Mensaje: "Precio debe ser un número"})
			} else if n < 0 {
				errs = append(errs, ErrorValidacion{Fila: numFila, Campo: "precioUnitario", Mensaje: "Precio no puede ser negativo"})
			}
		}

		if celda := m.Valor(fila, "estado"); !celda.Vacia() {
			if !model.EstadoValido(strings.ToLower(celda.String())) {
				errs = append(errs, ErrorValidacion{
					Fila:    numFila,
					Campo:   "estado",
					Mensaje: fmt.Sprintf("Estado inválido. Debe ser uno de: %s", strings.Join(model.EstadosInventario, ", ")),
				})
			}
		}
	}

	return errs
}
