package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/santosdevelop/Manto/internal/model"
)

func TestMapearFilaCompleta(t *testing.T) {
	m := Mapeo{
		"kardex": "Codigo", "nombre": "Nombre", "descripcion": "Detalle",
		"categoria": "Categoria", "cantidad": "Cantidad", "precioUnitario": "Precio",
		"proveedor": "Proveedor", "ubicacion": "Ubicacion", "estado": "Estado",
		"fechaAdquisicion": "Fecha",
	}
	f := Fila{
		"Codigo": NuevaCelda("KDX-001"), "Nombre": NuevaCelda("Monitor LED 24\""),
		"Detalle": NuevaCelda("Samsung 1920x1080"), "Categoria": NuevaCelda("Monitores"),
		"Cantidad": NuevaCelda("5"), "Precio": NuevaCelda("599.99"),
		"Proveedor": NuevaCelda("Distribuidora Tech S.A."), "Ubicacion": NuevaCelda("Almacén A Estante 3"),
		"Estado": NuevaCelda("DISPONIBLE"), "Fecha": NuevaCelda("2023-01-15"),
	}

	item := MapearFila(f, m)

	assert.NotEqual(t, "", item.ID.String())
	assert.Equal(t, "KDX-001", item.Kardex)
	assert.Equal(t, "Monitor LED 24\"", item.Nombre)
	assert.Equal(t, 5, item.Cantidad)
	assert.Equal(t, 599.99, item.PrecioUnitario)
	assert.Equal(t, "disponible", item.Estado)
	assert.Equal(t, "2023-01-15", item.FechaAdquisicion)
}

func TestMapearFilaDefaults(t *testing.T) {
	fijarHoy(t, "2025-06-30")
	m := Mapeo{"nombre": "Nombre", "cantidad": "Cantidad"}
	f := Fila{"Nombre": NuevaCelda("Casco"), "Cantidad": NuevaCelda("10")}

	item := MapearFila(f, m)

	assert.Equal(t, model.EstadoDisponible, item.Estado)
	assert.Equal(t, 0.0, item.PrecioUnitario)
	assert.Equal(t, "2025-06-30", item.FechaAdquisicion)
	assert.Empty(t, item.Kardex)
}

func TestMapearFilasConservaOrden(t *testing.T) {
	m := Mapeo{"nombre": "Nombre"}
	items := MapearFilas([]Fila{
		{"Nombre": NuevaCelda("A")},
		{"Nombre": NuevaCelda("B")},
	}, m)

	assert.Equal(t, "A", items[0].Nombre)
	assert.Equal(t, "B", items[1].Nombre)
}
