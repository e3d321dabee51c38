package legajos

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"procuraduria/internal/adapters/export/xlsx"
	"procuraduria/internal/domain/movimientos"
	"procuraduria/internal/middleware"
	"procuraduria/internal/platform/errs"
	"procuraduria/internal/platform/logger"
	"procuraduria/internal/presentation"

	"github.com/go-chi/chi/v5"
)

// Mensajes visibles para el usuario.
const (
	MsgNoFilter    = "Escribe al menos un filtro para buscar."
	MsgNoResults   = "No se encontraron resultados con esos filtros."
	MsgSearchError = "Error en búsqueda: no se pudo consultar la base de datos."
	MsgDetailError = "Error consultando base de datos."
)

func MsgFound(n int) string { return fmt.Sprintf("Encontrados: %d", n) }

func MsgNotFound(k Key) string {
	return fmt.Sprintf("El Legajo %s no existe en la base de datos.", k)
}

type RouteOptions struct {
	Layout presentation.Layout // nil => DefaultLayout()
	Logger logger.Logger
}

func RegisterRoutes(r chi.Router, svc *Service, movSvc *movimientos.Service, opts RouteOptions) {
	if opts.Layout == nil {
		opts.Layout = DefaultLayout()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}

	r.Route("/legajos", func(lr chi.Router) {
		lr.Get("/", searchHandler(svc, opts))
		lr.Get("/export.xlsx", exportHandler(svc, opts))

		// Ficha: cabecera + historial completo
		lr.Get("/{numero}/{anio}", detailHandler(svc, movSvc, opts))
	})
}

// summaryResponse es una fila del resultado de búsqueda.
type summaryResponse struct {
	Number        string          `json:"number"`
	Year          string          `json:"year"`
	Docket        string          `json:"docket"`
	Attorney      string          `json:"attorney"`
	Status        string          `json:"status"`
	Matter        string          `json:"matter"`
	Plaintiff     string          `json:"plaintiff"`
	StatusSummary string          `json:"status_summary"`
	Latest        *latestResponse `json:"latest,omitempty"`
}

// latestResponse es el último movimiento de un legajo (búsqueda con ultimo_mov=true).
type latestResponse struct {
	Date    string `json:"date"`
	DateRaw string `json:"date_raw"`
	Type    string `json:"type"`
	Detail  string `json:"detail"`
}

// searchResponse envuelve el resultado. Searched=false => no se ejecutó la consulta.
type searchResponse struct {
	Searched bool              `json:"searched"`
	Total    int               `json:"total"`
	Items    []summaryResponse `json:"items"`
	Message  string            `json:"message,omitempty"`
}

// tableResponse es la misma búsqueda con columnas renombradas y ordenadas para mostrar.
type tableResponse struct {
	Searched bool       `json:"searched"`
	Total    int        `json:"total"`
	Columns  []string   `json:"columns"`
	Rows     [][]string `json:"rows"`
	Message  string     `json:"message,omitempty"`
}

// legajoResponse es la cabecera de un legajo.
type legajoResponse struct {
	Number        string            `json:"number"`
	Year          string            `json:"year"`
	Docket        string            `json:"docket"`
	Court         string            `json:"court"`
	Plaintiff     string            `json:"plaintiff"`
	Defendant     string            `json:"defendant"`
	Matter        string            `json:"matter"`
	MatterSubtype string            `json:"matter_subtype"`
	Institution   string            `json:"institution"`
	Priority      string            `json:"priority"`
	ProcessType   string            `json:"process_type"`
	Status        string            `json:"status"`
	StatusSummary string            `json:"status_summary"`
	Attorney      string            `json:"attorney"`
	Location      string            `json:"location"`
	Fields        map[string]string `json:"fields"`
}

// detailResponse es la ficha completa.
type detailResponse struct {
	Title       string                     `json:"title"`
	Legajo      legajoResponse             `json:"legajo"`
	Movimientos []movimientos.ItemResponse `json:"movimientos"`
	Message     string                     `json:"message,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// searchHandler godoc
// @Summary Buscar legajos
// @Description Busca legajos por filtros opcionales. legajo y anio son igualdad exacta; expediente, abogado y estado buscan el texto en cualquier parte sin distinguir mayúsculas. Máximo 50 filas, ordenadas por año y número descendente. Si no hay filtros y el servicio exige al menos uno, no se consulta la base (searched=false).
// @Tags legajos
// @Produce json
// @Param legajo query string false "Número de legajo (exacto)"
// @Param anio query string false "Año (exacto)"
// @Param expediente query string false "Fragmento del expediente de primera instancia"
// @Param abogado query string false "Fragmento del nombre del abogado"
// @Param estado query string false "Fragmento del estado"
// @Param ultimo_mov query bool false "Agrega el último movimiento de cada legajo"
// @Param format query string false "json (default) o table" Enums(json, table)
// @Success 200 {object} searchResponse
// @Failure 400 {string} string "parámetros inválidos"
// @Failure 503 {object} searchResponse "error consultando la base"
// @Router /legajos [get]
func searchHandler(svc *Service, opts RouteOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, withLatest, err := parseSearch(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
		if format != "" && format != "json" && format != "table" {
			http.Error(w, "format must be json or table", http.StatusBadRequest)
			return
		}

		items, err := svc.Search(r.Context(), filter, withLatest)

		status := http.StatusOK
		searched := true
		var msg string
		switch {
		case errors.Is(err, ErrNoFilter):
			searched = false
			msg = MsgNoFilter
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case err != nil:
			// Falla de consulta: cero resultados + mensaje, no se propaga.
			logQueryError(opts.Logger, r, "search query failed", err)
			status = http.StatusServiceUnavailable
			msg = MsgSearchError
			items = nil
		case len(items) == 0:
			msg = MsgNoResults
		default:
			msg = MsgFound(len(items))
		}

		if format == "table" {
			t := opts.Layout.Apply(Table(items, withLatest))
			rows := t.Rows
			if rows == nil {
				rows = [][]string{}
			}
			writeJSON(w, status, tableResponse{
				Searched: searched,
				Total:    len(items),
				Columns:  t.Labels(),
				Rows:     rows,
				Message:  msg,
			})
			return
		}

		out := make([]summaryResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toSummaryResponse(it))
		}
		writeJSON(w, status, searchResponse{
			Searched: searched,
			Total:    len(items),
			Items:    out,
			Message:  msg,
		})
	}
}

// exportHandler godoc
// @Summary Exportar búsqueda a Excel
// @Description Ejecuta la misma búsqueda que GET /legajos y devuelve la tabla presentada como XLSX.
// @Tags legajos
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param legajo query string false "Número de legajo (exacto)"
// @Param anio query string false "Año (exacto)"
// @Param expediente query string false "Fragmento del expediente"
// @Param abogado query string false "Fragmento del nombre del abogado"
// @Param estado query string false "Fragmento del estado"
// @Param ultimo_mov query bool false "Agrega el último movimiento"
// @Success 200 {file} file
// @Failure 400 {string} string "sin filtros / parámetros inválidos"
// @Failure 503 {string} string "error consultando la base"
// @Router /legajos/export.xlsx [get]
func exportHandler(svc *Service, opts RouteOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, withLatest, err := parseSearch(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.Search(r.Context(), filter, withLatest)
		if err != nil {
			switch {
			case errors.Is(err, ErrNoFilter):
				http.Error(w, MsgNoFilter, http.StatusBadRequest)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				logQueryError(opts.Logger, r, "export query failed", err)
				http.Error(w, MsgSearchError, http.StatusServiceUnavailable)
			}
			return
		}

		t := opts.Layout.Apply(Table(items, withLatest))

		w.Header().Set("Content-Type", xlsx.ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="legajos.xlsx"`)
		if err := xlsx.Write(w, t); err != nil {
			// Los headers ya salieron; solo queda registrarlo.
			opts.Logger.Error("xlsx export failed", map[string]any{
				"request_id": middleware.GetRequestID(r.Context()),
				"err":        err,
			})
		}
	}
}

// detailHandler godoc
// @Summary Ficha de un legajo
// @Description Devuelve la cabecera del legajo (número + año) y su historial completo de movimientos. Si el legajo no existe responde 404 con un mensaje. Si falla solo el historial, la cabecera se devuelve igual con un mensaje.
// @Tags legajos
// @Produce json
// @Param numero path string true "Número de legajo"
// @Param anio path string true "Año del legajo"
// @Success 200 {object} detailResponse
// @Failure 400 {string} string "invalid input"
// @Failure 404 {object} messageResponse "legajo inexistente"
// @Failure 503 {object} messageResponse "error consultando la base"
// @Router /legajos/{numero}/{anio} [get]
func detailHandler(svc *Service, movSvc *movimientos.Service, opts RouteOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := Key{
			Number: chi.URLParam(r, "numero"),
			Year:   chi.URLParam(r, "anio"),
		}.Normalize()

		l, err := svc.GetByKey(r.Context(), key)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				writeJSON(w, http.StatusNotFound, messageResponse{Message: MsgNotFound(key)})
			default:
				logQueryError(opts.Logger, r, "detail query failed", err)
				writeJSON(w, http.StatusServiceUnavailable, messageResponse{Message: MsgDetailError})
			}
			return
		}

		resp := detailResponse{
			Title:       "Expediente " + key.String(),
			Legajo:      toLegajoResponse(l),
			Movimientos: []movimientos.ItemResponse{},
		}

		items, err := movSvc.History(r.Context(), key.Number, key.Year)
		switch {
		case err != nil:
			logQueryError(opts.Logger, r, "history query failed", err)
			resp.Message = movimientos.MsgHistoryError
		case len(items) == 0:
			resp.Message = movimientos.MsgNoMovements
		default:
			resp.Movimientos = movimientos.ToItemResponses(items)
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func parseSearch(r *http.Request) (SearchFilter, bool, error) {
	q := r.URL.Query()
	filter := SearchFilter{
		Number:   q.Get("legajo"),
		Year:     q.Get("anio"),
		Docket:   q.Get("expediente"),
		Attorney: q.Get("abogado"),
		Status:   q.Get("estado"),
	}

	withLatest := false
	if v := strings.TrimSpace(q.Get("ultimo_mov")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return SearchFilter{}, false, errors.New("ultimo_mov must be a boolean")
		}
		withLatest = b
	}

	return filter, withLatest, nil
}

func logQueryError(log logger.Logger, r *http.Request, msg string, err error) {
	log.Error(msg, map[string]any{
		"request_id": middleware.GetRequestID(r.Context()),
		"kind":       errs.KindOf(err).String(),
		"err":        err,
	})
}

func toSummaryResponse(s Summary) summaryResponse {
	out := summaryResponse{
		Number:        s.Number,
		Year:          s.Year,
		Docket:        s.Docket,
		Attorney:      s.Attorney,
		Status:        s.Status,
		Matter:        s.Matter,
		Plaintiff:     s.Plaintiff,
		StatusSummary: s.StatusSummary,
	}
	if s.Latest != nil {
		rec := s.Record()
		out.Latest = &latestResponse{
			Date:    rec[ColLatestDate],
			DateRaw: s.Latest.Date,
			Type:    s.Latest.Type,
			Detail:  s.Latest.Detail,
		}
	}
	return out
}

func toLegajoResponse(l Legajo) legajoResponse {
	fields := l.Fields
	if fields == nil {
		fields = map[string]string{}
	}
	return legajoResponse{
		Number:        l.Number,
		Year:          l.Year,
		Docket:        l.Docket,
		Court:         l.Court,
		Plaintiff:     l.Plaintiff,
		Defendant:     l.Defendant,
		Matter:        l.Matter,
		MatterSubtype: l.MatterSubtype,
		Institution:   l.Institution,
		Priority:      l.Priority,
		ProcessType:   l.ProcessType,
		Status:        l.Status,
		StatusSummary: l.StatusSummary,
		Attorney:      l.Attorney,
		Location:      l.Location,
		Fields:        fields,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
