package memory

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"procuraduria/internal/domain/movimientos"
	"procuraduria/internal/platform/datefmt"

	"golang.org/x/text/cases"
)

// MovimientoRow es una fila de movimiento_legajos con su clave de legajo.
type MovimientoRow struct {
	Number string
	Year   string
	movimientos.Movimiento
}

// Dataset es el contenido inicial del store. Legajos van como columna->valor
// para imitar SELECT * (columnas arbitrarias).
type Dataset struct {
	Legajos     []map[string]string
	Movimientos []MovimientoRow
}

// Store comparte los datos entre los repos en memoria (el join del último
// movimiento necesita ver ambas tablas).
type Store struct {
	mu          sync.RWMutex
	legajos     []map[string]string
	movimientos []MovimientoRow
}

func NewStore(data Dataset) *Store {
	s := &Store{}
	for _, l := range data.Legajos {
		cp := make(map[string]string, len(l))
		for k, v := range l {
			cp[k] = v
		}
		s.legajos = append(s.legajos, cp)
	}
	s.movimientos = append(s.movimientos, data.Movimientos...)
	return s
}

// containsFold emula ILIKE '%frag%': substring sin distinguir mayúsculas.
func containsFold(haystack, frag string) bool {
	fold := cases.Fold()
	return strings.Contains(fold.String(haystack), fold.String(frag))
}

// compareNatural compara como números si ambos lo son; si no, como texto.
func compareNatural(a, b string) int {
	ai, errA := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
	bi, errB := strconv.ParseInt(strings.TrimSpace(b), 10, 64)
	if errA == nil && errB == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}

// compareDates ordena fechas crudas; las que no se pueden interpretar
// se comparan como texto.
func compareDates(a, b string) int {
	ta, okA := datefmt.Parse(a)
	tb, okB := datefmt.Parse(b)
	if okA && okB {
		return ta.Compare(tb)
	}
	return strings.Compare(a, b)
}

func (s *Store) movementsOf(number, year string) []MovimientoRow {
	out := make([]MovimientoRow, 0)
	for _, m := range s.movimientos {
		if m.Number == number && m.Year == year {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return compareDates(out[i].Date, out[j].Date) > 0
	})
	return out
}
