package importer

import (
	"fmt"
	"regexp"
	"time"
)

// offsetSerial is the day offset between the spreadsheet 1900-date-system
// epoch and the Unix epoch: serial 25569 == 1970-01-01.
const offsetSerial = 25569

const formatoISO = "2006-01-02"

// ahora is swapped in tests to pin the fallback date.
var ahora = time.Now

// patronFecha is one accepted textual date shape. Orden gives the positions
// of year, month and day inside the regexp's capture groups.
type patronFecha struct {
	re    *regexp.Regexp
	orden [3]int // índices de grupo para año, mes, día
}

var patronesFecha = []patronFecha{
	{regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`), [3]int{1, 2, 3}},  // YYYY-MM-DD
	{regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`), [3]int{3, 1, 2}},  // MM/DD/YYYY
	{regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`), [3]int{3, 2, 1}},  // DD/MM/YYYY
	{regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})$`), [3]int{1, 2, 3}},  // YYYY/MM/DD
}

// NormalizarFecha converts a cell into a canonical ISO date string.
//
//   - Empty cells fall back to today (lenient by design — a row with no
//     acquisition date is still importable).
//   - Numeric cells are 1900-system spreadsheet serial dates.
//   - Text cells are tried against the fixed patterns in order; the first
//     one that matches AND yields a calendar-valid date wins.
//   - Anything else also falls back to today, never an error.
func NormalizarFecha(c Celda) string {
	switch c.Tipo {
	case CeldaVacia:
		return ahora().Format(formatoISO)
	case CeldaNumero:
		segundos := int64((c.Numero - offsetSerial) * 86400)
		return time.Unix(segundos, 0).UTC().Format(formatoISO)
	}

	for _, p := range patronesFecha {
		m := p.re.FindStringSubmatch(c.Texto)
		if m == nil {
			continue
		}
		candidata := fmt.Sprintf("%s-%s-%s", m[p.orden[0]], m[p.orden[1]], m[p.orden[2]])
		// time.Parse rejects impossible calendar dates (e.g. month 13).
		if _, err := time.Parse(formatoISO, candidata); err == nil {
			return candidata
		}
	}

	return ahora().Format(formatoISO)
}
