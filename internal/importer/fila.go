package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/santosdevelop/Manto/internal/model"
)

// MapearFila converts one validated row into an inventory item using the
// active mapping. Pure: no I/O, no store lookups. Unmapped or empty fields
// take the same defaults the manual form uses.
func MapearFila(fila Fila, m Mapeo) model.Inventario {
	cantidad := 0
	if n, ok := m.Valor(fila, "cantidad").ComoNumero(); ok {
		cantidad = int(n)
	}
	precio := 0.0
	if n, ok := m.Valor(fila, "precioUnitario").ComoNumero(); ok {
		precio = n
	}
	estado := model.EstadoDisponible
	if c := m.Valor(fila, "estado"); !c.Vacia() {
		estado = strings.ToLower(c.String())
	}

	now := time.Now().UTC()
	return model.Inventario{
		ID:               uuid.New(),
		Kardex:           m.Valor(fila, "kardex").String(),
		Nombre:           m.Valor(fila, "nombre").String(),
		Descripcion:      m.Valor(fila, "descripcion").String(),
		Categoria:        m.Valor(fila, "categoria").String(),
		Cantidad:         cantidad,
		PrecioUnitario:   precio,
		Proveedor:        m.Valor(fila, "proveedor").String(),
		Ubicacion:        m.Valor(fila, "ubicacion").String(),
		Estado:           estado,
		FechaAdquisicion: NormalizarFecha(m.Valor(fila, "fechaAdquisicion")),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// MapearFilas applies MapearFila to every row, keeping order.
func MapearFilas(filas []Fila, m Mapeo) []model.Inventario {
	items := make([]model.Inventario, len(filas))
	for i, fila := range filas {
		items[i] = MapearFila(fila, m)
	}
	return items
}
