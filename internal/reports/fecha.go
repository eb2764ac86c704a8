package reports

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// meses maps lower-cased Spanish month names to their number.
var meses = map[string]time.Month{
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June,
	"julio": time.July, "agosto": time.August, "septiembre": time.September,
	"octubre": time.October, "noviembre": time.November, "diciembre": time.December,
}

// "12 de marzo, 2024" and the "12 de marzo de 2024" variant.
var reFechaLarga = regexp.MustCompile(`^\s*(\d{1,2}) de ([a-záéíóúñ]+)(?: de)?,? (\d{4})\s*$`)

// ResolverFecha is the single dispatch point for the heterogeneous fecha
// field on maintenance documents. It accepts nil, native timestamps in the
// shapes the driver decodes to, and the localized long-form text the legacy
// console stored. ok is false for anything it cannot resolve; callers decide
// whether that drops the record.
func ResolverFecha(v any) (time.Time, bool) {
	switch f := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return f.UTC(), true
	case primitive.DateTime:
		return f.Time().UTC(), true
	case primitive.Timestamp:
		return time.Unix(int64(f.T), 0).UTC(), true
	case int64:
		return time.UnixMilli(f).UTC(), true
	case float64:
		return time.UnixMilli(int64(f)).UTC(), true
	case string:
		return resolverTexto(f)
	}
	return time.Time{}, false
}

func resolverTexto(s string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err == nil {
		return t, true
	}

	m := reFechaLarga.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return time.Time{}, false
	}
	dia, _ := strconv.Atoi(m[1])
	mes, ok := meses[m[2]]
	if !ok {
		return time.Time{}, false
	}
	anio, _ := strconv.Atoi(m[3])

	t := time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
	// time.Date normaliza desbordes ("31 de febrero" pasa a marzo); eso
	// cuenta como irresoluble.
	if t.Day() != dia || t.Month() != mes {
		return time.Time{}, false
	}
	return t, true
}
