package movimientos

import (
	"context"
	"errors"
	"strings"

	"procuraduria/internal/platform/errs"
)

var (
	ErrInvalidInput = errs.E(errs.KindInvalidInput, "movimientos", errors.New("invalid input"))
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// History devuelve el historial completo. Sin movimientos => slice vacío, no error.
func (s *Service) History(ctx context.Context, number, year string) ([]Movimiento, error) {
	number = strings.TrimSpace(number)
	year = strings.TrimSpace(year)
	if number == "" || year == "" {
		return nil, ErrInvalidInput
	}

	items, err := s.repo.ListByLegajo(ctx, number, year)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Movimiento{}
	}
	return items, nil
}
