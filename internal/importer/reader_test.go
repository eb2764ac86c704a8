package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func libroPrueba(t *testing.T, filas [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	hoja := f.GetSheetName(0)
	for i := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(hoja, celda, &filas[i]))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestLeer(t *testing.T) {
	data := libroPrueba(t, [][]any{
		{"Nombre", "Cantidad", "Precio"},
		{"Taladro", 5, 120.5},
		{"Casco", "diez", nil},
	})

	encabezados, filas, err := Leer(data)

	require.NoError(t, err)
	assert.Equal(t, []string{"Nombre", "Cantidad", "Precio"}, encabezados)
	require.Len(t, filas, 2)

	n, ok := filas[0]["Cantidad"].ComoNumero()
	require.True(t, ok)
	assert.Equal(t, 5.0, n)
	assert.Equal(t, "diez", filas[1]["Cantidad"].String())
	assert.True(t, filas[1]["Precio"].Vacia())
}

func TestLeerOmiteFilasVacias(t *testing.T) {
	data := libroPrueba(t, [][]any{
		{"Nombre"},
		{"A"},
		{nil},
		{"B"},
	})

	_, filas, err := Leer(data)

	require.NoError(t, err)
	require.Len(t, filas, 2)
	assert.Equal(t, "B", filas[1]["Nombre"].String())
}

func TestLeerArchivoCorrupto(t *testing.T) {
	_, _, err := Leer([]byte("esto no es un xlsx"))

	assert.ErrorIs(t, err, ErrArchivoIlegible)
}

func TestPlantillaSeReimporta(t *testing.T) {
	data, err := GenerarPlantilla()
	require.NoError(t, err)

	encabezados, filas, err := Leer(data)
	require.NoError(t, err)

	m := AutoMapear(encabezados)
	assert.True(t, m.Completo())
	for _, campo := range CamposCanonicos {
		assert.NotEmpty(t, m[campo], campo)
	}
	require.Len(t, filas, 1)
	assert.Empty(t, Validar(filas, m))
}
