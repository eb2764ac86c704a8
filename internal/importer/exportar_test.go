package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santosdevelop/Manto/internal/model"
)

func TestExportarInventarioEncabezados(t *testing.T) {
	datos, err := ExportarInventario(nil)
	require.NoError(t, err)

	encabezados, filas, err := Leer(datos)
	require.NoError(t, err)
	assert.Empty(t, filas)
	assert.Equal(t, []string{
		"Código Kardex", "Nombre", "Descripción", "Categoría", "Cantidad",
		"Precio Unitario", "Proveedor", "Ubicación", "Estado", "Fecha Adquisición",
	}, encabezados)
}

func TestExportarInventarioFilas(t *testing.T) {
	items := []model.Inventario{
		{
			Kardex:           "KDX-001",
			Nombre:           "Monitor LED 24\"",
			Descripcion:      "Samsung 1920x1080",
			Categoria:        "Monitores",
			Cantidad:         5,
			PrecioUnitario:   599.99,
			Proveedor:        "Distribuidora Tech S.A.",
			Ubicacion:        "Almacén A Estante 3",
			Estado:           model.EstadoDisponible,
			FechaAdquisicion: "2023-01-15",
		},
		{Kardex: "KDX-002", Nombre: "Casco", Estado: model.EstadoEnUso},
	}

	datos, err := ExportarInventario(items)
	require.NoError(t, err)

	_, filas, err := Leer(datos)
	require.NoError(t, err)
	require.Len(t, filas, 2)

	assert.Equal(t, "KDX-001", filas[0]["Código Kardex"].String())
	assert.Equal(t, "Samsung 1920x1080", filas[0]["Descripción"].String())
	assert.Equal(t, "2023-01-15", filas[0]["Fecha Adquisición"].String())
	assert.Equal(t, model.EstadoDisponible, filas[0]["Estado"].String())

	cantidad, ok := filas[0]["Cantidad"].ComoNumero()
	require.True(t, ok)
	assert.Equal(t, 5.0, cantidad)
	precio, ok := filas[0]["Precio Unitario"].ComoNumero()
	require.True(t, ok)
	assert.Equal(t, 599.99, precio)

	assert.Equal(t, "KDX-002", filas[1]["Código Kardex"].String())
	assert.Equal(t, "Casco", filas[1]["Nombre"].String())
}
