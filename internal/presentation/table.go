// Package presentation renombra y reordena columnas de resultados para mostrarlas.
package presentation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Column asocia un identificador de almacenamiento con su etiqueta visible.
type Column struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
}

// Layout es la secuencia curada de columnas a mostrar.
type Layout []Column

// Table es un resultado tabular: Rows[i][j] corresponde a Columns[j].
type Table struct {
	Columns []Column
	Rows    [][]string
}

// NewTable arma una tabla a partir de registros columna->valor.
// keys fija qué columnas tiene el resultado y en qué orden; un key que no esté
// en un registro queda como "".
func NewTable(keys []string, records []map[string]string) Table {
	cols := make([]Column, 0, len(keys))
	for _, k := range keys {
		cols = append(cols, Column{Key: k, Label: k})
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(keys))
		for i, k := range keys {
			row[i] = rec[k]
		}
		rows = append(rows, row)
	}
	return Table{Columns: cols, Rows: rows}
}

func (t Table) Labels() []string {
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		out = append(out, c.Label)
	}
	return out
}

// Apply renombra y reordena t según el layout.
//   - columnas del layout ausentes en t se ignoran;
//   - columnas de t que el layout no nombra van al final, en su orden original;
//   - ninguna columna de t se pierde ni se duplica.
func (l Layout) Apply(t Table) Table {
	used := make([]bool, len(t.Columns))
	order := make([]int, 0, len(t.Columns))
	cols := make([]Column, 0, len(t.Columns))

	for _, lc := range l {
		for i, c := range t.Columns {
			if used[i] || c.Key != lc.Key {
				continue
			}
			used[i] = true
			order = append(order, i)

			label := lc.Label
			if strings.TrimSpace(label) == "" {
				label = c.Label
			}
			cols = append(cols, Column{Key: c.Key, Label: label})
			break
		}
	}

	for i, c := range t.Columns {
		if used[i] {
			continue
		}
		order = append(order, i)
		cols = append(cols, c)
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		nr := make([]string, len(order))
		for j, idx := range order {
			if idx < len(r) {
				nr[j] = r[idx]
			}
		}
		rows = append(rows, nr)
	}

	return Table{Columns: cols, Rows: rows}
}

type layoutFile struct {
	Columns []Column `yaml:"columns"`
}

// LoadLayout lee un layout YAML:
//
//	columns:
//	  - key: legajo_nro
//	    label: Legajo
func LoadLayout(path string) (Layout, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	var f layoutFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	out := make(Layout, 0, len(f.Columns))
	seen := map[string]struct{}{}
	for _, c := range f.Columns {
		c.Key = strings.TrimSpace(c.Key)
		if c.Key == "" {
			return nil, errors.New("parse layout: column key required")
		}
		if _, dup := seen[c.Key]; dup {
			continue
		}
		seen[c.Key] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}
