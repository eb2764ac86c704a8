package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapeoBase() Mapeo {
	m := NuevoMapeo()
	m["nombre"] = "Nombre"
	m["cantidad"] = "Cantidad"
	m["precioUnitario"] = "Precio"
	m["estado"] = "Estado"
	return m
}

func fila(nombre, cantidad, precio, estado string) Fila {
	return Fila{
		"Nombre":   NuevaCelda(nombre),
		"Cantidad": NuevaCelda(cantidad),
		"Precio":   NuevaCelda(precio),
		"Estado":   NuevaCelda(estado),
	}
}

func TestValidarFilaCorrecta(t *testing.T) {
	errs := Validar([]Fila{fila("Taladro", "5", "120.50", "disponible")}, mapeoBase())

	assert.Empty(t, errs)
}

func TestValidarRequeridos(t *testing.T) {
	errs := Validar([]Fila{fila("", "", "", "")}, mapeoBase())

	require.Len(t, errs, 2)
	assert.Equal(t, 2, errs[0].Fila)
	assert.Equal(t, "nombre", errs[0].Campo)
	assert.Equal(t, "Nombre es requerido", errs[0].Mensaje)
	assert.Equal(t, "cantidad", errs[1].Campo)
	assert.Equal(t, "Cantidad es requerido", errs[1].Mensaje)
}

func TestValidarCantidad(t *testing.T) {
	errs := Validar([]Fila{
		fila("A", "abc", "", ""),
		fila("B", "-1", "", ""),
		fila("C", "0", "", ""),
	}, mapeoBase())

	require.Len(t, errs, 2)
	assert.Equal(t, "Cantidad debe ser un número", errs[0].Mensaje)
	assert.Equal(t, 3, errs[1].Fila)
	assert.Equal(t, "Cantidad no puede ser negativa", errs[1].Mensaje)
}

func TestValidarPrecioSoloSiPresente(t *testing.T) {
	// Precio vacío no molesta; presente debe ser numérico y no negativo.
	errs := Validar([]Fila{
		fila("A", "1", "", ""),
		fila("B", "1", "gratis", ""),
		fila("C", "1", "-0.01", ""),
	}, mapeoBase())

	require.Len(t, errs, 2)
	assert.Equal(t, "Precio debe ser un número", errs[0].Mensaje)
	assert.Equal(t, "Precio no puede ser negativo", errs[1].Mensaje)
}

func TestValidarEstado(t *testing.T) {
	errs := Validar([]Fila{
		fila("A", "1", "", "DISPONIBLE"),
		fila("B", "1", "", "roto"),
	}, mapeoBase())

	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Fila)
	assert.Equal(t, "estado", errs[0].Campo)
	assert.Contains(t, errs[0].Mensaje, "Estado inválido")
}

func TestValidarCampoSinMapear(t *testing.T) {
	m := NuevoMapeo()
	m["cantidad"] = "Cantidad"

	errs := Validar([]Fila{{"Cantidad": NuevaCelda("2")}}, m)

	// nombre quedó sin mapear: cuenta como vacío en toda fila.
	require.Len(t, errs, 1)
	assert.Equal(t, "nombre", errs[0].Campo)
}

func TestValidarAcumulaEntreFilas(t *testing.T) {
	errs := Validar([]Fila{
		fila("", "x", "", ""),
		fila("B", "1", "", "mal"),
	}, mapeoBase())

	require.Len(t, errs, 3)
	assert.Equal(t, 2, errs[0].Fila)
	assert.Equal(t, 2, errs[1].Fila)
	assert.Equal(t, 3, errs[2].Fila)
}
