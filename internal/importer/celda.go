package importer

import (
	"strconv"
	"strings"
)

// TipoCelda discriminates the shapes a spreadsheet cell can take after decode.
type TipoCelda int

const (
	CeldaVacia TipoCelda = iota
	CeldaNumero
	CeldaTexto
)

// Celda is the tagged value of a single cell. Exactly one of Numero/Texto is
// meaningful, according to Tipo.
type Celda struct {
	Tipo   TipoCelda
	Numero float64
	Texto  string
}

// NuevaCelda resolves a raw cell value into its variant. This is the only
// place that decides whether a cell is empty, numeric or textual — every
// consumer (validator, date normalizer, row mapper) dispatches on the result.
func NuevaCelda(raw string) Celda {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Celda{Tipo: CeldaVacia}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Celda{Tipo: CeldaNumero, Numero: n, Texto: s}
	}
	return Celda{Tipo: CeldaTexto, Texto: s}
}

// Vacia reports whether the cell holds no value.
func (c Celda) Vacia() bool { return c.Tipo == CeldaVacia }

// String returns the textual rendering of the cell ("" when empty).
func (c Celda) String() string {
	if c.Tipo == CeldaVacia {
		return ""
	}
	return c.Texto
}

// ComoNumero parses the cell as a number. ok is false for empty cells and
// non-numeric text.
func (c Celda) ComoNumero() (float64, bool) {
	if c.Tipo == CeldaNumero {
		return c.Numero, true
	}
	return 0, false
}
