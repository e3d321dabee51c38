package legajos

import (
	"context"
	"strings"
)

// MaxResults es el tope de filas de cualquier búsqueda.
const MaxResults = 50

type Repository interface {
	Search(ctx context.Context, filter SearchFilter, opts SearchOptions) ([]Summary, error)
	GetByKey(ctx context.Context, key Key) (Legajo, error)
}

// SearchFilter: los cinco filtros opcionales del buscador.
// Number/Year son igualdad exacta; el resto, substring sin distinguir mayúsculas.
type SearchFilter struct {
	Number   string `validate:"max=20"`
	Year     string `validate:"max=10"`
	Docket   string `validate:"max=100"`
	Attorney string `validate:"max=100"`
	Status   string `validate:"max=100"`
}

func (f SearchFilter) Normalize() SearchFilter {
	return SearchFilter{
		Number:   strings.TrimSpace(f.Number),
		Year:     strings.TrimSpace(f.Year),
		Docket:   strings.TrimSpace(f.Docket),
		Attorney: strings.TrimSpace(f.Attorney),
		Status:   strings.TrimSpace(f.Status),
	}
}

// IsEmpty es true si ningún filtro tiene contenido (ignorando espacios).
func (f SearchFilter) IsEmpty() bool {
	n := f.Normalize()
	return n.Number == "" && n.Year == "" && n.Docket == "" && n.Attorney == "" && n.Status == ""
}

type SearchOptions struct {
	WithLatest bool
	Limit      int
}
