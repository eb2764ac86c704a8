package importer

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/santosdevelop/Manto/internal/model"
)

const hojaInventario = "Inventario"

var encabezadosExport = []string{
	"Código Kardex", "Nombre", "Descripción", "Categoría", "Cantidad",
	"Precio Unitario", "Proveedor", "Ubicación", "Estado", "Fecha Adquisición",
}

var encabezadosPlantilla = []string{
	"Codigo_Kardex", "Nombre", "Descripcion", "Categoria", "Cantidad",
	"Precio_Unitario", "Proveedor", "Ubicacion", "Estado", "Fecha_Adquisicion",
}

// ExportarInventario renders the full inventory as an xlsx workbook with
// human readable headers, ready to stream as a download.
func ExportarInventario(items []model.Inventario) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), hojaInventario)
	if err := escribirFila(f, 1, toAny(encabezadosExport)); err != nil {
		return nil, err
	}
	estilo, err := estiloEncabezado(f)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(hojaInventario, "A1", "J1", estilo); err != nil {
		return nil, err
	}

	for i, it := range items {
		fila := []any{
			it.Kardex, it.Nombre, it.Descripcion, it.Categoria, it.Cantidad,
			it.PrecioUnitario, it.Proveedor, it.Ubicacion, it.Estado, it.FechaAdquisicion,
		}
		if err := escribirFila(f, i+2, fila); err != nil {
			return nil, err
		}
	}
	ajustarColumnas(f)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribiendo libro: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerarPlantilla builds the import template: snake_case headers the
// auto-mapper resolves without manual adjustment, plus one example row.
func GenerarPlantilla() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), hojaInventario)
	if err := escribirFila(f, 1, toAny(encabezadosPlantilla)); err != nil {
		return nil, err
	}
	estilo, err := estiloEncabezado(f)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(hojaInventario, "A1", "J1", estilo); err != nil {
		return nil, err
	}

	ejemplo := []any{
		"KDX-001", "Monitor LED 24\"", "Samsung 1920x1080", "Monitores", 5,
		599.99, "Distribuidora Tech S.A.", "Almacén A Estante 3", "disponible", "2023-01-15",
	}
	if err := escribirFila(f, 2, ejemplo); err != nil {
		return nil, err
	}
	ajustarColumnas(f)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("escribiendo plantilla: %w", err)
	}
	return buf.Bytes(), nil
}

func escribirFila(f *excelize.File, num int, valores []any) error {
	celda, err := excelize.CoordinatesToCellName(1, num)
	if err != nil {
		return err
	}
	return f.SetSheetRow(hojaInventario, celda, &valores)
}

func estiloEncabezado(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
}

func ajustarColumnas(f *excelize.File) {
	// Widths tuned for the ten canonical columns.
	f.SetColWidth(hojaInventario, "A", "A", 14)
	f.SetColWidth(hojaInventario, "B", "D", 22)
	f.SetColWidth(hojaInventario, "E", "F", 14)
	f.SetColWidth(hojaInventario, "G", "H", 24)
	f.SetColWidth(hojaInventario, "I", "J", 16)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
