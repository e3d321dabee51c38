package movimientos

import (
	"encoding/json"
	"errors"
	"net/http"

	"procuraduria/internal/middleware"
	"procuraduria/internal/platform/errs"
	"procuraduria/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	MsgNoMovements  = "Este legajo no registra movimientos."
	MsgHistoryError = "Error en historial: no se pudo consultar la base de datos."
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/legajos/{numero}/{anio}/movimientos", func(mr chi.Router) {
		mr.Get("/", listMovimientosHandler(svc, log))
	})
}

// ItemResponse es un movimiento tal como lo devuelve la API.
type ItemResponse struct {
	Date    string `json:"date"`     // DD/MM/YYYY, o el valor crudo si no se pudo interpretar
	DateRaw string `json:"date_raw"` // valor almacenado
	Type    string `json:"type"`
	Detail  string `json:"detail"`
	User    string `json:"user"`
}

// historyResponse es la respuesta del historial de un legajo.
type historyResponse struct {
	Total   int            `json:"total"`
	Items   []ItemResponse `json:"items"`
	Message string         `json:"message,omitempty"`
}

// listMovimientosHandler godoc
// @Summary Historial de movimientos de un legajo
// @Description Devuelve todos los movimientos del legajo (número + año), del más reciente al más antiguo. Un legajo sin movimientos devuelve una lista vacía.
// @Tags movimientos
// @Produce json
// @Param numero path string true "Número de legajo"
// @Param anio path string true "Año del legajo"
// @Success 200 {object} historyResponse
// @Failure 400 {string} string "invalid input"
// @Failure 503 {object} historyResponse "error consultando la base"
// @Router /legajos/{numero}/{anio}/movimientos [get]
func listMovimientosHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		numero := chi.URLParam(r, "numero")
		anio := chi.URLParam(r, "anio")

		items, err := svc.History(r.Context(), numero, anio)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "numero y anio son obligatorios", http.StatusBadRequest)
				return
			}
			log.Error("history query failed", map[string]any{
				"request_id": middleware.GetRequestID(r.Context()),
				"kind":       errs.KindOf(err).String(),
				"err":        err,
			})
			writeJSON(w, http.StatusServiceUnavailable, historyResponse{
				Items:   []ItemResponse{},
				Message: MsgHistoryError,
			})
			return
		}

		resp := historyResponse{
			Total: len(items),
			Items: ToItemResponses(items),
		}
		if len(items) == 0 {
			resp.Message = MsgNoMovements
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func ToItemResponses(items []Movimiento) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, m := range items {
		out = append(out, ItemResponse{
			Date:    m.DisplayDate(),
			DateRaw: m.Date,
			Type:    m.Type,
			Detail:  m.Detail,
			User:    m.User,
		})
	}
	return out
}

// writeJSON: cada módulo tiene el suyo, como legajos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
