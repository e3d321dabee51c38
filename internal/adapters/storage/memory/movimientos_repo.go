package memory

import (
	"context"

	"procuraduria/internal/domain/movimientos"
)

type movimientosRepo struct {
	store *Store
}

func NewMovimientosRepo(store *Store) movimientos.Repository {
	return &movimientosRepo{store: store}
}

func (r *movimientosRepo) ListByLegajo(ctx context.Context, number, year string) ([]movimientos.Movimiento, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := r.store.movementsOf(number, year)
	out := make([]movimientos.Movimiento, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.Movimiento)
	}
	return out, nil
}
