package importer

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrArchivoIlegible is returned when the uploaded bytes are not a parseable
// spreadsheet. The HTTP layer maps it to a user-facing decode message.
var ErrArchivoIlegible = errors.New("el archivo no es una hoja de cálculo legible")

// Fila is one data row keyed by source column name. Cells are resolved
// variants, never raw strings.
type Fila map[string]Celda

// Leer decodes an uploaded spreadsheet into its header and data rows.
// Only the first sheet is read; the first row is the header and is not
// included in the returned rows. Size limits are the caller's problem.
func Leer(data []byte) ([]string, []Fila, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrArchivoIlegible, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, ErrArchivoIlegible
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrArchivoIlegible, err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrArchivoIlegible
	}

	encabezados := make([]string, 0, len(rows[0]))
	for _, h := range rows[0] {
		encabezados = append(encabezados, strings.TrimSpace(h))
	}

	filas := make([]Fila, 0, len(rows)-1)
	for _, row := range rows[1:] {
		fila := make(Fila, len(encabezados))
		vacia := true
		for i, col := range encabezados {
			if col == "" {
				continue
			}
			var celda Celda
			if i < len(row) {
				celda = NuevaCelda(row[i])
			}
			if !celda.Vacia() {
				vacia = false
			}
			fila[col] = celda
		}
		if vacia {
			continue // skip fully empty trailing rows
		}
		filas = append(filas, fila)
	}

	return encabezados, filas, nil
}
