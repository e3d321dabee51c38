package movimientos

import "context"

type Repository interface {
	// ListByLegajo devuelve todos los movimientos del legajo, fecha desc, sin límite.
	ListByLegajo(ctx context.Context, number, year string) ([]Movimiento, error)
}
