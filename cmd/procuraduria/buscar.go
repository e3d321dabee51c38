package main

import (
	"errors"
	"fmt"

	"procuraduria/internal/adapters/export/xlsx"
	"procuraduria/internal/domain/legajos"
	"procuraduria/internal/platform/errs"

	"github.com/spf13/cobra"
)

type buscarFlags struct {
	filter     legajos.SearchFilter
	withLatest bool
	xlsxPath   string
}

func newBuscarCmd(open opener) *cobra.Command {
	var f buscarFlags

	cmd := &cobra.Command{
		Use:   "buscar",
		Short: "Busca legajos (máximo 50, año y número descendente)",
		Long: `Busca legajos combinando filtros opcionales.

--legajo y --anio comparan exacto; --expediente, --abogado y --estado
buscan el texto en cualquier parte sin distinguir mayúsculas.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, log, err := open()
			if err != nil {
				return err
			}
			defer func() {
				_ = rt.Close()
				_ = log.Sync()
			}()

			out := cmd.OutOrStdout()
			items, err := rt.Services.Legajos.Search(cmd.Context(), f.filter, f.withLatest)
			switch {
			case errors.Is(err, legajos.ErrNoFilter):
				renderMessage(out, legajos.MsgNoFilter)
				return nil
			case errors.Is(err, legajos.ErrInvalidInput):
				return err
			case err != nil:
				// Cero filas y el mensaje; el detalle queda en el log.
				log.Error("search query failed", map[string]any{
					"kind": errs.KindOf(err).String(),
					"err":  err,
				})
				renderMessage(out, legajos.MsgSearchError)
				items = nil
			case len(items) == 0:
				renderMessage(out, legajos.MsgNoResults)
			default:
				renderMessage(out, legajos.MsgFound(len(items)))
			}

			t := rt.Layout.Apply(legajos.Table(items, f.withLatest))
			renderTable(out, t)

			if f.xlsxPath != "" && err == nil {
				if err := xlsx.Save(f.xlsxPath, t); err != nil {
					return fmt.Errorf("exportar: %w", err)
				}
				renderMessage(out, "Exportado a "+f.xlsxPath)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.filter.Number, "legajo", "", "número de legajo (exacto)")
	fl.StringVar(&f.filter.Year, "anio", "", "año (exacto)")
	fl.StringVar(&f.filter.Docket, "expediente", "", "fragmento del expediente")
	fl.StringVar(&f.filter.Attorney, "abogado", "", "fragmento del nombre del abogado")
	fl.StringVar(&f.filter.Status, "estado", "", "fragmento del estado")
	fl.BoolVar(&f.withLatest, "ultimo-mov", false, "agrega el último movimiento de cada legajo")
	fl.StringVar(&f.xlsxPath, "xlsx", "", "guarda el resultado en un archivo .xlsx")

	return cmd
}
