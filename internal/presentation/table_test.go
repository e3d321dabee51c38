package presentation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLayout = Layout{
	{Key: "legajo_nro", Label: "Legajo"},
	{Key: "legajo_año", Label: "Año"},
	{Key: "nombre_abogado", Label: "Abogado"},
	{Key: "ult_fecha_mov", Label: "Últ. Fecha"},
}

func TestLayout_Apply_RenamesAndReorders(t *testing.T) {
	in := NewTable(
		[]string{"nombre_abogado", "legajo_año", "legajo_nro"},
		[]map[string]string{
			{"legajo_nro": "123", "legajo_año": "2024", "nombre_abogado": "María GARCIA Lopez"},
		},
	)

	got := testLayout.Apply(in)

	assert.Equal(t, []string{"Legajo", "Año", "Abogado"}, got.Labels())
	if diff := cmp.Diff([][]string{{"123", "2024", "María GARCIA Lopez"}}, got.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_Apply_SkipsAbsentKeepsExtra(t *testing.T) {
	in := NewTable(
		[]string{"demandante", "legajo_nro", "prioridad"},
		[]map[string]string{
			{"legajo_nro": "7", "demandante": "Municipalidad", "prioridad": "ALTA"},
			{"legajo_nro": "8"},
		},
	)

	got := testLayout.Apply(in)

	// ult_fecha_mov y legajo_año no existen en el resultado: se ignoran.
	assert.Equal(t, []string{"Legajo", "demandante", "prioridad"}, got.Labels())
	if diff := cmp.Diff([][]string{
		{"7", "Municipalidad", "ALTA"},
		{"8", "", ""},
	}, got.Rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_Apply_NeverDuplicatesOrDrops(t *testing.T) {
	dup := Layout{
		{Key: "a", Label: "A"},
		{Key: "a", Label: "A otra vez"},
		{Key: "b", Label: ""},
	}
	in := NewTable([]string{"b", "a", "c"}, []map[string]string{{"a": "1", "b": "2", "c": "3"}})

	got := dup.Apply(in)

	assert.Len(t, got.Columns, len(in.Columns))
	assert.Equal(t, []string{"A", "b", "c"}, got.Labels())
	assert.Equal(t, [][]string{{"1", "2", "3"}}, got.Rows)
}

func TestLayout_Apply_EmptyTable(t *testing.T) {
	got := testLayout.Apply(Table{})
	assert.Empty(t, got.Columns)
	assert.Empty(t, got.Rows)
}

func TestLoadLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columnas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
columns:
  - key: legajo_nro
    label: N° Legajo
  - key: legajo_nro
    label: duplicada
  - key: " nombre_abogado "
    label: Abogado
`), 0o600))

	l, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, Layout{
		{Key: "legajo_nro", Label: "N° Legajo"},
		{Key: "nombre_abogado", Label: "Abogado"},
	}, l)
}

func TestLoadLayout_Errors(t *testing.T) {
	_, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns:\n  - label: sin key\n"), 0o600))
	_, err = LoadLayout(path)
	assert.ErrorContains(t, err, "column key required")
}
