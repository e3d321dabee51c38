package movimientos

import "procuraduria/internal/platform/datefmt"

// Columnas de movimiento_legajos.
const (
	ColNumber = "legajo_mov"
	ColYear   = "legajo_año_mov"
	ColDate   = "fecha_mov"
	ColType   = "tipo_mov"
	ColDetail = "detalle"
	ColUser   = "usuario"
)

// Movimiento es un evento del historial de un legajo.
// Date se guarda tal cual vino de la base; DisplayDate lo formatea.
type Movimiento struct {
	Date   string
	Type   string
	Detail string
	User   string
}

func (m Movimiento) DisplayDate() string {
	return datefmt.Format(m.Date)
}
