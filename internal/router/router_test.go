package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"procuraduria/internal/adapters/export/xlsx"
	mem "procuraduria/internal/adapters/storage/memory"
	"procuraduria/internal/app"
	"procuraduria/internal/domain/legajos"
	"procuraduria/internal/domain/movimientos"
	"procuraduria/internal/platform/errs"
	"procuraduria/internal/router"

	"github.com/xuri/excelize/v2"
)

func newDevServer(t *testing.T, allowEmpty bool) *httptest.Server {
	t.Helper()
	svcs := app.NewServices(app.Deps{
		Memory:           mem.NewStore(mem.DevDataset()),
		AllowEmptySearch: allowEmpty,
	})
	ts := httptest.NewServer(router.NewRouter(router.Options{Services: svcs}))
	t.Cleanup(ts.Close)
	return ts
}

type searchBody struct {
	Searched bool   `json:"searched"`
	Total    int    `json:"total"`
	Message  string `json:"message"`
	Items    []struct {
		Number   string `json:"number"`
		Year     string `json:"year"`
		Attorney string `json:"attorney"`
		Latest   *struct {
			Date    string `json:"date"`
			DateRaw string `json:"date_raw"`
			Type    string `json:"type"`
		} `json:"latest"`
	} `json:"items"`
}

func TestHTTP_Search_ByNumberAndYear(t *testing.T) {
	ts := newDevServer(t, false)

	st, body := doReq(t, ts.URL, "/legajos?legajo=123&anio=2024")
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}

	var resp searchBody
	mustJSON(t, body, &resp)
	if !resp.Searched || resp.Total != 1 || len(resp.Items) != 1 {
		t.Fatalf("expected exactly one result, got %+v", resp)
	}
	if resp.Items[0].Number != "123" || resp.Items[0].Year != "2024" {
		t.Fatalf("unexpected item %+v", resp.Items[0])
	}
	if resp.Message != "Encontrados: 1" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if resp.Items[0].Latest != nil {
		t.Fatalf("latest must be absent without ultimo_mov")
	}
}

func TestHTTP_Search_AttorneyFragmentWithLatest(t *testing.T) {
	ts := newDevServer(t, false)

	st, body := doReq(t, ts.URL, "/legajos?abogado=garcia&ultimo_mov=true")
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}

	var resp searchBody
	mustJSON(t, body, &resp)
	if len(resp.Items) != 1 || resp.Items[0].Attorney != "María GARCIA Lopez" {
		t.Fatalf("expected María GARCIA Lopez, got %+v", resp.Items)
	}
	lat := resp.Items[0].Latest
	if lat == nil || lat.Date != "03/09/2024" || lat.DateRaw != "2024-09-03" || lat.Type != "AUDIENCIA" {
		t.Fatalf("unexpected latest %+v", lat)
	}
}

func TestHTTP_Search_NoFilterIsNotExecuted(t *testing.T) {
	ts := newDevServer(t, false)

	st, body := doReq(t, ts.URL, "/legajos?legajo=%20%20&abogado=")
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}

	var resp searchBody
	mustJSON(t, body, &resp)
	if resp.Searched || resp.Total != 0 || resp.Message != legajos.MsgNoFilter {
		t.Fatalf("expected no search performed, got %+v", resp)
	}
}

func TestHTTP_Search_NoFilterAllowed(t *testing.T) {
	ts := newDevServer(t, true)

	_, body := doReq(t, ts.URL, "/legajos")

	var resp searchBody
	mustJSON(t, body, &resp)
	if !resp.Searched || resp.Total != 3 {
		t.Fatalf("expected unfiltered search, got %+v", resp)
	}
	if resp.Items[0].Number != "1234" {
		t.Fatalf("expected year/number desc ordering, first=%s", resp.Items[0].Number)
	}
}

func TestHTTP_Search_NoResults(t *testing.T) {
	ts := newDevServer(t, false)

	_, body := doReq(t, ts.URL, "/legajos?expediente=NO-EXISTE")

	var resp searchBody
	mustJSON(t, body, &resp)
	if !resp.Searched || resp.Total != 0 || resp.Message != legajos.MsgNoResults {
		t.Fatalf("unexpected %+v", resp)
	}
	if resp.Items == nil {
		t.Fatalf("items must be an empty list, not null")
	}
}

func TestHTTP_Search_TableFormat(t *testing.T) {
	ts := newDevServer(t, false)

	st, body := doReq(t, ts.URL, "/legajos?anio=2024&format=table")
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}

	var resp struct {
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
	}
	mustJSON(t, body, &resp)

	want := "Legajo,Año,Expediente,Materia,Demandante,Abogado,Estado,Resumen"
	if got := strings.Join(resp.Columns, ","); got != want {
		t.Fatalf("columns mismatch\nwant %s\ngot  %s", want, got)
	}
	if len(resp.Rows) != 2 || resp.Rows[0][0] != "1234" {
		t.Fatalf("unexpected rows %+v", resp.Rows)
	}
}

func TestHTTP_Search_BadParams(t *testing.T) {
	ts := newDevServer(t, false)

	if st, _ := doReq(t, ts.URL, "/legajos?anio=2024&ultimo_mov=quizas"); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad ultimo_mov, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "/legajos?anio=2024&format=csv"); st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad format, got %d", st)
	}
}

func TestHTTP_Search_QueryErrorIsZeroResultsWithMessage(t *testing.T) {
	broken := &brokenRepo{err: errs.Query("legajos.search", errors.New("relation \"legajos\" does not exist"))}
	svcs := app.Services{
		Legajos:     legajos.NewService(broken),
		Movimientos: movimientos.NewService(mem.NewMovimientosRepo(mem.NewStore(mem.Dataset{}))),
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{Services: svcs}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "/legajos?anio=2024")
	if st != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d body=%s", st, string(body))
	}

	var resp searchBody
	mustJSON(t, body, &resp)
	if resp.Total != 0 || resp.Items == nil || len(resp.Items) != 0 || resp.Message != legajos.MsgSearchError {
		t.Fatalf("expected zero results with message, got %+v", resp)
	}
	if strings.Contains(string(body), "relation") {
		t.Fatalf("database error leaked to client: %s", string(body))
	}
}

func TestHTTP_Detail_WithHistory(t *testing.T) {
	ts := newDevServer(t, false)

	st, body := doReq(t, ts.URL, "/legajos/123/2024")
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}

	var resp struct {
		Title  string `json:"title"`
		Legajo struct {
			Matter    string `json:"matter"`
			Defendant string `json:"defendant"`
			Attorney  string `json:"attorney"`
		} `json:"legajo"`
		Movimientos []struct {
			Date string `json:"date"`
			Type string `json:"type"`
			User string `json:"user"`
		} `json:"movimientos"`
	}
	mustJSON(t, body, &resp)

	if resp.Title != "Expediente 123-2024" {
		t.Fatalf("unexpected title %q", resp.Title)
	}
	if resp.Legajo.Matter != "Civil" || resp.Legajo.Defendant != "Constructora Andina S.A.C." {
		t.Fatalf("unexpected header %+v", resp.Legajo)
	}
	if len(resp.Movimientos) != 3 || resp.Movimientos[0].Date != "03/09/2024" || resp.Movimientos[2].Date != "10/02/2024" {
		t.Fatalf("unexpected history %+v", resp.Movimientos)
	}
}

func TestHTTP_Detail_NotFound(t *testing.T) {
	ts := newDevServer(t, false)

	st, body := doReq(t, ts.URL, "/legajos/999/2024")
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", st, string(body))
	}

	var resp map[string]any
	mustJSON(t, body, &resp)
	if resp["message"] != "El Legajo 999-2024 no existe en la base de datos." {
		t.Fatalf("unexpected body %s", string(body))
	}
	if _, ok := resp["legajo"]; ok {
		t.Fatalf("no header fields expected on not found")
	}
}

func TestHTTP_Detail_NoMovements(t *testing.T) {
	ts := newDevServer(t, false)

	_, body := doReq(t, ts.URL, "/legajos/1234/2024")

	var resp struct {
		Movimientos []any  `json:"movimientos"`
		Message     string `json:"message"`
	}
	mustJSON(t, body, &resp)
	if resp.Movimientos == nil || len(resp.Movimientos) != 0 || resp.Message != movimientos.MsgNoMovements {
		t.Fatalf("unexpected %+v", resp)
	}
}

func TestHTTP_History(t *testing.T) {
	ts := newDevServer(t, false)

	st, body := doReq(t, ts.URL, "/legajos/87/2022/movimientos")
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}

	var resp struct {
		Total int `json:"total"`
		Items []struct {
			Date   string `json:"date"`
			Detail string `json:"detail"`
		} `json:"items"`
	}
	mustJSON(t, body, &resp)
	if resp.Total != 1 || resp.Items[0].Date != "15/01/2023" || resp.Items[0].Detail != "Archivo definitivo" {
		t.Fatalf("unexpected %+v", resp)
	}
}

func TestHTTP_ExportXLSX(t *testing.T) {
	ts := newDevServer(t, false)

	res, err := http.Get(ts.URL + "/legajos/export.xlsx?anio=2024&ultimo_mov=1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != xlsx.ContentType {
		t.Fatalf("unexpected content-type %q", ct)
	}

	f, err := excelize.OpenReader(res.Body)
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(xlsx.SheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 3 || rows[0][0] != "Legajo" || rows[0][7] != "Últ. Fecha" {
		t.Fatalf("unexpected sheet %+v", rows)
	}
}

func TestHTTP_ExportXLSX_RequiresFilter(t *testing.T) {
	ts := newDevServer(t, false)

	if st, _ := doReq(t, ts.URL, "/legajos/export.xlsx"); st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
}

func TestHTTP_HealthAndRequestID(t *testing.T) {
	ts := newDevServer(t, false)

	res, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	if res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header")
	}
}

type brokenRepo struct {
	err error
}

func (r *brokenRepo) Search(ctx context.Context, f legajos.SearchFilter, opts legajos.SearchOptions) ([]legajos.Summary, error) {
	return nil, r.err
}

func (r *brokenRepo) GetByKey(ctx context.Context, key legajos.Key) (legajos.Legajo, error) {
	return legajos.Legajo{}, r.err
}

func doReq(t *testing.T, baseURL, path string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func mustJSON(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(body))
	}
}
