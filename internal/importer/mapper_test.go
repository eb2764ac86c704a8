package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoMapearPlantilla(t *testing.T) {
	headers := []string{
		"Codigo_Kardex", "Nombre", "Descripcion", "Categoria", "Cantidad",
		"Precio_Unitario", "Proveedor", "Ubicacion", "Estado", "Fecha_Adquisicion",
	}

	m := AutoMapear(headers)

	require.True(t, m.Completo(), "la plantilla debe mapear todos los campos")
	assert.Equal(t, "Codigo_Kardex", m["kardex"])
	assert.Equal(t, "Nombre", m["nombre"])
	assert.Equal(t, "Precio_Unitario", m["precioUnitario"])
	assert.Equal(t, "Fecha_Adquisicion", m["fechaAdquisicion"])
}

func TestAutoMapearParcial(t *testing.T) {
	m := AutoMapear([]string{"Codigo_Kardex", "Nombre", "Cantidad"})

	assert.Equal(t, "Codigo_Kardex", m["kardex"])
	assert.Equal(t, "Nombre", m["nombre"])
	assert.Equal(t, "Cantidad", m["cantidad"])
	assert.Empty(t, m["precioUnitario"])
	assert.False(t, m.Completo())
}

func TestAutoMapearPrimerEncabezadoGana(t *testing.T) {
	// Ambos contienen "nombre"; gana el que aparece primero en la hoja.
	m := AutoMapear([]string{"Nombre Corto", "Nombre Completo"})

	assert.Equal(t, "Nombre Corto", m["nombre"])
}

func TestAutoMapearIgnoraMayusculas(t *testing.T) {
	m := AutoMapear([]string{"CANTIDAD EN STOCK", "proveedor principal"})

	assert.Equal(t, "CANTIDAD EN STOCK", m["cantidad"])
	assert.Equal(t, "proveedor principal", m["proveedor"])
}

func TestAutoMapearSinCandidatos(t *testing.T) {
	m := AutoMapear([]string{"Columna A", "Columna B"})

	for _, campo := range CamposCanonicos {
		assert.Empty(t, m[campo])
	}
}

func TestMapeoValor(t *testing.T) {
	fila := Fila{"Nombre": NuevaCelda("Taladro"), "Cantidad": NuevaCelda("3")}
	m := Mapeo{"nombre": "Nombre", "cantidad": "Cantidad"}

	assert.Equal(t, "Taladro", m.Valor(fila, "nombre").String())
	assert.True(t, m.Valor(fila, "estado").Vacia())
}
