package legajos

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"procuraduria/internal/platform/errs"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidInput = errs.E(errs.KindInvalidInput, "legajos", errors.New("invalid input"))
	ErrNotFound     = errs.E(errs.KindNotFound, "legajos", errors.New("legajo not found"))

	// ErrNoFilter indica que no se ejecutó la búsqueda (no es una falla).
	ErrNoFilter = errors.New("at least one filter is required")
)

type Service struct {
	repo          Repository
	validate      *validator.Validate
	requireFilter bool
}

type Option func(*Service)

// WithRequireFilter define si una búsqueda sin filtros se ejecuta (false)
// o se corta con ErrNoFilter (true, default).
func WithRequireFilter(require bool) Option {
	return func(s *Service) { s.requireFilter = require }
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:          repo,
		validate:      validator.New(),
		requireFilter: true,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) RequiresFilter() bool {
	return s.requireFilter
}

// Search aplica los filtros (ya recortados) y devuelve como máximo MaxResults filas,
// ordenadas por año desc y número desc. withLatest agrega el último movimiento.
func (s *Service) Search(ctx context.Context, filter SearchFilter, withLatest bool) ([]Summary, error) {
	filter = filter.Normalize()
	if err := s.check(filter); err != nil {
		return nil, err
	}
	if filter.IsEmpty() && s.requireFilter {
		return nil, ErrNoFilter
	}

	items, err := s.repo.Search(ctx, filter, SearchOptions{
		WithLatest: withLatest,
		Limit:      MaxResults,
	})
	if err != nil {
		return nil, err
	}
	if len(items) > MaxResults {
		items = items[:MaxResults]
	}
	return items, nil
}

// GetByKey devuelve la cabecera del legajo o ErrNotFound.
func (s *Service) GetByKey(ctx context.Context, key Key) (Legajo, error) {
	key = key.Normalize()
	if err := s.check(key); err != nil {
		return Legajo{}, err
	}
	return s.repo.GetByKey(ctx, key)
}

func (s *Service) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldName(fe.Field())+": "+fe.Tag())
	}
	sort.Strings(msgs)
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, ", "))
}

// fieldName traduce el nombre del campo Go al parámetro que ve el usuario.
func fieldName(f string) string {
	switch f {
	case "Number":
		return "legajo"
	case "Year":
		return "anio"
	case "Docket":
		return "expediente"
	case "Attorney":
		return "abogado"
	case "Status":
		return "estado"
	default:
		return strings.ToLower(f)
	}
}
