// Package datefmt formatea fechas de movimientos para mostrar (DD/MM/YYYY).
package datefmt

import (
	"strings"
	"time"
)

const Display = "02/01/2006"

// layouts que devuelve Postgres al castear date/timestamp/timestamptz a text,
// más los formatos ISO que aparecen cargados a mano en columnas de texto.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
	Display,
}

// Parse intenta interpretar raw con los layouts conocidos.
func Parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Format devuelve la fecha como DD/MM/YYYY; si no se puede interpretar,
// devuelve el valor crudo tal cual vino de la base.
func Format(raw string) string {
	t, ok := Parse(raw)
	if !ok {
		return raw
	}
	return t.Format(Display)
}
