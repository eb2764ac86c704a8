package reports

import (
	"strings"
	"time"

	"github.com/santosdevelop/Manto/internal/model"
)

// Tipos canónicos de mantenimiento, en el orden que la consola grafica.
const (
	TipoPreventivo = "preventivo"
	TipoCorrectivo = "correctivo"
	TipoPredictivo = "predictivo"
	TipoOtros      = "otros"
)

var Tipos = []string{TipoPreventivo, TipoCorrectivo, TipoPredictivo, TipoOtros}

var etiquetasMes = []string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

var etiquetasDia = []string{
	"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
}

// Serie is one chart-ready aggregation: labels plus one dataset per
// canonical type, every dataset as long as Etiquetas.
type Serie struct {
	Etiquetas []string         `json:"etiquetas"`
	Series    map[string][]int `json:"series"`
}

// ConteoTipos is the by-type aggregation. Unlike the calendar series it
// never drops a record: every maintenance event has a type bucket.
type ConteoTipos struct {
	Preventivo int `json:"preventivo"`
	Correctivo int `json:"correctivo"`
	Predictivo int `json:"predictivo"`
	Otros      int `json:"otros"`
}

// Clasificar buckets a free-text tipo by substring match, case-insensitive.
// Anything that names none of the three known kinds is "otros".
func Clasificar(tipo string) string {
	bajo := strings.ToLower(tipo)
	for _, t := range []string{TipoPreventivo, TipoCorrectivo, TipoPredictivo} {
		if strings.Contains(bajo, t) {
			return t
		}
	}
	return TipoOtros
}

// AgregarPorTipo counts records per canonical type.
func AgregarPorTipo(registros []model.Mantenimiento) ConteoTipos {
	var c ConteoTipos
	for _, r := range registros {
		switch Clasificar(r.Tipo) {
		case TipoPreventivo:
			c.Preventivo++
		case TipoCorrectivo:
			c.Correctivo++
		case TipoPredictivo:
			c.Predictivo++
		default:
			c.Otros++
		}
	}
	return c
}

// AgregarPorMes buckets records into 12 months x 4 types. Records whose
// fecha cannot be resolved are dropped from this series without error.
func AgregarPorMes(registros []model.Mantenimiento) Serie {
	return agregarCalendario(registros, etiquetasMes, func(t time.Time) int {
		return int(t.Month()) - 1
	})
}

// AgregarPorDiaSemana buckets records into 7 weekdays x 4 types,
// 0 = domingo. Same drop rule as AgregarPorMes.
func AgregarPorDiaSemana(registros []model.Mantenimiento) Serie {
	return agregarCalendario(registros, etiquetasDia, func(t time.Time) int {
		return int(t.Weekday())
	})
}

func agregarCalendario(registros []model.Mantenimiento, etiquetas []string, indice func(time.Time) int) Serie {
	s := Serie{Etiquetas: etiquetas, Series: make(map[string][]int, len(Tipos))}
	for _, t := range Tipos {
		s.Series[t] = make([]int, len(etiquetas))
	}
	for _, r := range registros {
		fecha, ok := ResolverFecha(r.Fecha)
		if !ok {
			continue
		}
		s.Series[Clasificar(r.Tipo)][indice(fecha)]++
	}
	return s
}
