package importer

import "strings"

// CamposCanonicos are the ten target attributes an imported row maps into,
// in display order. The set is fixed — every Mapeo carries all ten keys.
var CamposCanonicos = []string{
	"kardex",
	"nombre",
	"descripcion",
	"categoria",
	"cantidad",
	"precioUnitario",
	"proveedor",
	"ubicacion",
	"estado",
	"fechaAdquisicion",
}

// candidatos holds, per canonical field, the substrings tried against the
// header names during auto-mapping.
var candidatos = map[string][]string{
	"kardex":           {"kardex", "codigo", "id", "sku"},
	"nombre":           {"nombre", "name", "item", "producto"},
	"descripcion":      {"descripcion", "description", "detalles"},
	"categoria":        {"categoria", "category", "tipo", "grupo"},
	"cantidad":         {"cantidad", "quantity", "qty", "stock"},
	"precioUnitario":   {"precio", "price", "costo", "cost"},
	"proveedor":        {"proveedor", "supplier", "vendor"},
	"ubicacion":        {"ubicacion", "location", "place", "almacen"},
	"estado":           {"estado", "status", "condition"},
	"fechaAdquisicion": {"fecha", "date", "adquisicion", "adquisition"},
}

// etiquetas maps canonical field names to their display labels.
var etiquetas = map[string]string{
	"kardex":           "Código Kardex",
	"nombre":           "Nombre",
	"descripcion":      "Descripción",
	"categoria":        "Categoría",
	"cantidad":         "Cantidad",
	"precioUnitario":   "Precio Unitario",
	"proveedor":        "Proveedor",
	"ubicacion":        "Ubicación",
	"estado":           "Estado",
	"fechaAdquisicion": "Fecha Adquisición",
}

// Etiqueta returns the display label for a canonical field.
func Etiqueta(campo string) string {
	if l, ok := etiquetas[campo]; ok {
		return l
	}
	return campo
}

// Mapeo assigns each canonical field a source column name, "" = unmapped.
type Mapeo map[string]string

// NuevoMapeo returns a Mapeo with every canonical field present and unmapped.
func NuevoMapeo() Mapeo {
	m := make(Mapeo, len(CamposCanonicos))
	for _, campo := range CamposCanonicos {
		m[campo] = ""
	}
	return m
}

// Completo reports whether every canonical field points at a source column.
func (m Mapeo) Completo() bool {
	for _, campo := range CamposCanonicos {
		if m[campo] == "" {
			return false
		}
	}
	return true
}

// AutoMapear infers a Mapeo from the spreadsheet header. For each canonical
// field the headers are scanned in their original order; the first header
// whose lower-cased name contains any candidate substring wins. Fields with
// no matching header stay unmapped.
func AutoMapear(encabezados []string) Mapeo {
	m := NuevoMapeo()
	for _, campo := range CamposCanonicos {
		for _, col := range encabezados {
			if col == "" {
				continue
			}
			bajo := strings.ToLower(col)
			for _, cand := range candidatos[campo] {
				if strings.Contains(bajo, cand) {
					m[campo] = col
					break
				}
			}
			if m[campo] != "" {
				break
			}
		}
	}
	return m
}

// Valor resolves the cell a canonical field points at within a row.
// Unmapped fields resolve to an empty cell.
func (m Mapeo) Valor(fila Fila, campo string) Celda {
	col := m[campo]
	if col == "" {
		return Celda{Tipo: CeldaVacia}
	}
	return fila[col]
}
