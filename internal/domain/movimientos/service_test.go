package movimientos

import (
	"context"
	"errors"
	"testing"

	"procuraduria/internal/platform/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	items          []Movimiento
	err            error
	gotNum, gotAno string
}

func (r *testRepo) ListByLegajo(ctx context.Context, number, year string) ([]Movimiento, error) {
	r.gotNum, r.gotAno = number, year
	return r.items, r.err
}

func TestService_History_EmptyIsNotError(t *testing.T) {
	svc := NewService(&testRepo{items: nil})

	items, err := svc.History(context.Background(), "1234", "2024")

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestService_History_TrimsKey(t *testing.T) {
	repo := &testRepo{items: []Movimiento{{Date: "2024-01-01", Type: "ESCRITO"}}}
	svc := NewService(repo)

	items, err := svc.History(context.Background(), " 123 ", " 2024")

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "123", repo.gotNum)
	assert.Equal(t, "2024", repo.gotAno)
}

func TestService_History_RequiresKey(t *testing.T) {
	svc := NewService(&testRepo{})

	_, err := svc.History(context.Background(), "123", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_History_QueryError(t *testing.T) {
	svc := NewService(&testRepo{err: errs.Query("movimientos.list", errors.New("timeout"))})

	_, err := svc.History(context.Background(), "123", "2024")
	assert.True(t, errs.Is(err, errs.KindQuery))
}

func TestMovimiento_DisplayDate_FallsBackToRaw(t *testing.T) {
	assert.Equal(t, "21/05/2024", Movimiento{Date: "2024-05-21"}.DisplayDate())
	assert.Equal(t, "sin fecha", Movimiento{Date: "sin fecha"}.DisplayDate())
}
