package postgres

import (
	"context"
	"database/sql"
	"time"

	"procuraduria/internal/domain/movimientos"
	"procuraduria/internal/platform/errs"

	"go.opentelemetry.io/otel/attribute"
)

type MovimientosRepo struct {
	db      *sql.DB
	timeout time.Duration
}

func NewMovimientosRepo(db *sql.DB, timeout time.Duration) *MovimientosRepo {
	return &MovimientosRepo{db: db, timeout: timeout}
}

const historyQuery = `
		SELECT
			CAST(fecha_mov AS TEXT),
			tipo_mov,
			detalle,
			usuario
		FROM movimiento_legajos
		WHERE CAST(legajo_mov AS TEXT) = $1
		  AND CAST(legajo_año_mov AS TEXT) = $2
		ORDER BY fecha_mov DESC
	`

func (r *MovimientosRepo) ListByLegajo(ctx context.Context, number, year string) (out []movimientos.Movimiento, err error) {
	ctx, span := startSpan(ctx, "movimientos.list")
	defer func() { endSpan(span, err) }()

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, historyQuery, number, year)
	if err != nil {
		return nil, errs.Query("movimientos.list", err)
	}
	defer rows.Close()

	out = make([]movimientos.Movimiento, 0)
	for rows.Next() {
		var date, typ, detail, user sql.NullString
		if err := rows.Scan(&date, &typ, &detail, &user); err != nil {
			return nil, errs.Query("movimientos.list", err)
		}
		out = append(out, movimientos.Movimiento{
			Date:   date.String,
			Type:   typ.String,
			Detail: detail.String,
			User:   user.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Query("movimientos.list", err)
	}

	span.SetAttributes(attribute.Int("movimientos.rows", len(out)))
	return out, nil
}
