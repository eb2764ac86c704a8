package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/santosdevelop/Manto/internal/model"
)

func mant(tipo string, fecha any) model.Mantenimiento {
	return model.Mantenimiento{Tipo: tipo, Fecha: fecha}
}

func TestClasificar(t *testing.T) {
	assert.Equal(t, TipoPreventivo, Clasificar("Preventivo mensual"))
	assert.Equal(t, TipoCorrectivo, Clasificar("correctivo urgente"))
	assert.Equal(t, TipoPredictivo, Clasificar("predictivo"))
	assert.Equal(t, TipoOtros, Clasificar(""))
	assert.Equal(t, TipoOtros, Clasificar("inspección general"))
}

func TestAgregarPorTipo(t *testing.T) {
	c := AgregarPorTipo([]model.Mantenimiento{
		mant("Preventivo mensual", nil),
		mant("correctivo urgente", nil),
		mant("", nil),
		mant("predictivo", nil),
	})

	assert.Equal(t, ConteoTipos{Preventivo: 1, Correctivo: 1, Predictivo: 1, Otros: 1}, c)
}

func TestAgregarPorMes(t *testing.T) {
	s := AgregarPorMes([]model.Mantenimiento{
		mant("preventivo", "12 de marzo, 2024"),
		mant("preventivo", "1 de marzo, 2023"),
		mant("correctivo", time.Date(2024, 12, 25, 10, 0, 0, 0, time.UTC)),
	})

	require.Len(t, s.Etiquetas, 12)
	assert.Equal(t, 2, s.Series[TipoPreventivo][2])  // marzo
	assert.Equal(t, 1, s.Series[TipoCorrectivo][11]) // diciembre
	assert.Zero(t, s.Series[TipoOtros][0])
}

func TestAgregarPorDiaSemana(t *testing.T) {
	// 2024-03-12 fue martes; 2024-03-10 domingo.
	s := AgregarPorDiaSemana([]model.Mantenimiento{
		mant("preventivo", "12 de marzo, 2024"),
		mant("otros trabajos", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)),
	})

	require.Len(t, s.Etiquetas, 7)
	assert.Equal(t, "Domingo", s.Etiquetas[0])
	assert.Equal(t, 1, s.Series[TipoPreventivo][2])
	assert.Equal(t, 1, s.Series[TipoOtros][0])
}

func TestAgregarDescartaFechasIrresolubles(t *testing.T) {
	registros := []model.Mantenimiento{
		mant("preventivo", "fecha rota"),
		mant("preventivo", nil),
		mant("preventivo", "5 de abril, 2024"),
	}

	// Las series de calendario descartan en silencio; el conteo por tipo no.
	assert.Equal(t, 1, suma(AgregarPorMes(registros)))
	assert.Equal(t, 1, suma(AgregarPorDiaSemana(registros)))
	assert.Equal(t, 3, AgregarPorTipo(registros).Preventivo)
}

func suma(s Serie) int {
	total := 0
	for _, serie := range s.Series {
		for _, n := range serie {
			total += n
		}
	}
	return total
}

func TestResolverFecha(t *testing.T) {
	casos := []struct {
		entrada  any
		esperado string
	}{
		{"12 de marzo, 2024", "2024-03-12"},
		{"12 de marzo de 2024", "2024-03-12"},
		{"1 De Septiembre, 2023", "2023-09-01"},
		{"2024-03-12", "2024-03-12"},
		{time.Date(2024, 3, 12, 15, 4, 5, 0, time.UTC), "2024-03-12"},
		{primitive.NewDateTimeFromTime(time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)), "2024-03-12"},
		{int64(1710201600000), "2024-03-12"},
		{float64(1710201600000), "2024-03-12"},
	}
	for _, c := range casos {
		fecha, ok := ResolverFecha(c.entrada)
		require.True(t, ok, "%v", c.entrada)
		assert.Equal(t, c.esperado, fecha.Format("2006-01-02"))
	}
}

func TestResolverFechaIrresoluble(t *testing.T) {
	for _, entrada := range []any{nil, "ayer", "32 de enero, 2024", "12 de brumario, 2024", true} {
		_, ok := ResolverFecha(entrada)
		assert.False(t, ok, "%v", entrada)
	}
}
