package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"procuraduria/internal/domain/legajos"
	"procuraduria/internal/platform/errs"

	"go.opentelemetry.io/otel/attribute"
)

type LegajosRepo struct {
	db      *sql.DB
	timeout time.Duration
}

func NewLegajosRepo(db *sql.DB, timeout time.Duration) *LegajosRepo {
	return &LegajosRepo{db: db, timeout: timeout}
}

const searchSelect = `
		SELECT
			CAST(l.legajo_nro AS TEXT),
			CAST(l.legajo_año AS TEXT),
			l.exp_primera_instancia,
			l.nombre_abogado,
			CAST(l.estadolegajo_id AS TEXT),
			l.nombre_materia,
			l.demandante,
			l.estado_actual_resumen`

// El último movimiento por legajo sale del mismo SELECT (LATERAL ... LIMIT 1),
// sin una consulta extra por fila.
const latestSelect = `,
			CAST(um.fecha_mov AS TEXT),
			um.tipo_mov,
			um.detalle`

const latestJoin = `
		LEFT JOIN LATERAL (
			SELECT m.fecha_mov, m.tipo_mov, m.detalle
			FROM movimiento_legajos m
			WHERE CAST(m.legajo_mov AS TEXT) = CAST(l.legajo_nro AS TEXT)
			  AND CAST(m.legajo_año_mov AS TEXT) = CAST(l.legajo_año AS TEXT)
			ORDER BY m.fecha_mov DESC
			LIMIT 1
		) um ON TRUE`

// searchPredicates devuelve un predicado por filtro no vacío, con placeholders
// desde $1. Los filtros deben venir normalizados (trim).
func searchPredicates(f legajos.SearchFilter) ([]string, []any) {
	preds := make([]string, 0, 5)
	args := make([]any, 0, 5)

	add := func(expr string, arg any) {
		args = append(args, arg)
		preds = append(preds, fmt.Sprintf(expr, len(args)))
	}

	if f.Number != "" {
		add("CAST(l.legajo_nro AS TEXT) = $%d", f.Number)
	}
	if f.Year != "" {
		add("CAST(l.legajo_año AS TEXT) = $%d", f.Year)
	}
	if f.Docket != "" {
		add("l.exp_primera_instancia ILIKE $%d", contains(f.Docket))
	}
	if f.Attorney != "" {
		add("l.nombre_abogado ILIKE $%d", contains(f.Attorney))
	}
	if f.Status != "" {
		add("CAST(l.estadolegajo_id AS TEXT) ILIKE $%d", contains(f.Status))
	}

	return preds, args
}

func buildSearchQuery(f legajos.SearchFilter, opts legajos.SearchOptions) (string, []any) {
	preds, args := searchPredicates(f.Normalize())

	sb := strings.Builder{}
	sb.WriteString(searchSelect)
	if opts.WithLatest {
		sb.WriteString(latestSelect)
	}
	sb.WriteString("\n\t\tFROM legajos l")
	if opts.WithLatest {
		sb.WriteString(latestJoin)
	}
	sb.WriteString("\n\t\tWHERE 1=1")
	for _, p := range preds {
		sb.WriteString(" AND " + p)
	}

	limit := opts.Limit
	if limit <= 0 || limit > legajos.MaxResults {
		limit = legajos.MaxResults
	}

	sb.WriteString("\n\t\tORDER BY l.legajo_año DESC, l.legajo_nro DESC")
	args = append(args, limit)
	sb.WriteString(fmt.Sprintf("\n\t\tLIMIT $%d", len(args)))

	return sb.String(), args
}

// contains arma el patrón ILIKE '%frag%' escapando los comodines del usuario.
func contains(frag string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(frag) + "%"
}

func (r *LegajosRepo) Search(ctx context.Context, filter legajos.SearchFilter, opts legajos.SearchOptions) (out []legajos.Summary, err error) {
	query, args := buildSearchQuery(filter, opts)

	ctx, span := startSpan(ctx, "legajos.search",
		attribute.Int("legajos.filters", len(args)-1),
		attribute.Bool("legajos.with_latest", opts.WithLatest),
	)
	defer func() { endSpan(span, err) }()

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errs.Query("legajos.search", err)
	}
	defer rows.Close()

	out = make([]legajos.Summary, 0)
	for rows.Next() {
		var (
			number, year, docket, attorney, status sql.NullString
			matter, plaintiff, summary             sql.NullString
			latDate, latType, latDetail            sql.NullString
		)
		dest := []any{&number, &year, &docket, &attorney, &status, &matter, &plaintiff, &summary}
		if opts.WithLatest {
			dest = append(dest, &latDate, &latType, &latDetail)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, errs.Query("legajos.search", err)
		}

		s := legajos.Summary{
			Key:           legajos.Key{Number: number.String, Year: year.String},
			Docket:        docket.String,
			Attorney:      attorney.String,
			Status:        status.String,
			Matter:        matter.String,
			Plaintiff:     plaintiff.String,
			StatusSummary: summary.String,
		}
		if opts.WithLatest {
			s.Latest = &legajos.LatestMovement{
				Date:   latDate.String,
				Type:   latType.String,
				Detail: latDetail.String,
			}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Query("legajos.search", err)
	}

	span.SetAttributes(attribute.Int("legajos.rows", len(out)))
	return out, nil
}

func (r *LegajosRepo) GetByKey(ctx context.Context, key legajos.Key) (l legajos.Legajo, err error) {
	ctx, span := startSpan(ctx, "legajos.get")
	defer func() {
		if errors.Is(err, legajos.ErrNotFound) {
			endSpan(span, nil)
			return
		}
		endSpan(span, err)
	}()

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	// SELECT * a propósito: la ficha muestra lo que haya en la tabla.
	rows, err := r.db.QueryContext(ctx, `
		SELECT *
		FROM legajos
		WHERE CAST(legajo_nro AS TEXT) = $1
		  AND CAST(legajo_año AS TEXT) = $2
		LIMIT 1
	`, key.Number, key.Year)
	if err != nil {
		return legajos.Legajo{}, errs.Query("legajos.get", err)
	}
	defer rows.Close()

	fields, err := scanFirstRowMap(rows)
	if err != nil {
		return legajos.Legajo{}, errs.Query("legajos.get", err)
	}
	if fields == nil {
		return legajos.Legajo{}, legajos.ErrNotFound
	}

	return legajos.FromFields(fields), nil
}
