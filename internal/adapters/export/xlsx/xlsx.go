// Package xlsx exporta tablas de resultados a planillas Excel.
package xlsx

import (
	"fmt"
	"io"

	"procuraduria/internal/presentation"

	"github.com/xuri/excelize/v2"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	SheetName   = "Legajos"
)

// Write vuelca t en una hoja: fila 1 con las etiquetas, luego los datos.
func Write(w io.Writer, t presentation.Table) error {
	f, err := build(t)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}

// Save es como Write pero a un archivo.
func Save(path string, t presentation.Table) error {
	f, err := build(t)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx: save %s: %w", path, err)
	}
	return nil
}

func build(t presentation.Table) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("xlsx: sheet: %w", err)
	}

	header := make([]any, 0, len(t.Columns))
	for _, c := range t.Columns {
		header = append(header, c.Label)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("xlsx: header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(header) > 0 {
		_ = f.SetRowStyle(SheetName, 1, 1, bold)
	}

	for i, r := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("xlsx: cell: %w", err)
		}
		row := make([]any, 0, len(r))
		for _, v := range r {
			row = append(row, v)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("xlsx: row %d: %w", i+2, err)
		}
	}

	return f, nil
}
