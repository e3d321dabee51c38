package main

import (
	"fmt"
	"io"

	"procuraduria/internal/presentation"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#101F38"))
	msgStyle    = lipgloss.NewStyle().Italic(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
)

func renderTitle(w io.Writer, s string) {
	fmt.Fprintln(w, titleStyle.Render(s))
}

func renderMessage(w io.Writer, s string) {
	fmt.Fprintln(w, msgStyle.Render(s))
}

// renderTable pinta la tabla ya presentada. Sin filas se muestran solo los encabezados.
func renderTable(w io.Writer, t presentation.Table) {
	tb := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Labels()...).
		Rows(t.Rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, tb.String())
}

// renderHeader pinta la cabecera de una ficha como "Etiqueta: valor".
func renderHeader(w io.Writer, layout presentation.Layout, field func(string) string) {
	for _, c := range layout {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(c.Label+":"), field(c.Key))
	}
}
