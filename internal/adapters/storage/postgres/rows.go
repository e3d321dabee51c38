package postgres

import (
	"database/sql"
	"fmt"
	"time"
)

// scanFirstRowMap lee la primera fila como columna->texto.
// Devuelve nil, nil si no hay filas.
func scanFirstRowMap(rows *sql.Rows) (map[string]string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, rows.Err()
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(cols))
	for i, c := range cols {
		out[c] = stringify(vals[i])
	}
	return out, rows.Err()
}

// stringify convierte un valor del driver a texto; NULL => "".
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format("2006-01-02")
		}
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}
