package main

import (
	"errors"

	"procuraduria/internal/domain/legajos"
	"procuraduria/internal/domain/movimientos"
	"procuraduria/internal/platform/errs"

	"github.com/spf13/cobra"
)

func newVerCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "ver NUMERO ANIO",
		Short: "Muestra la ficha de un legajo con su historial",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, log, err := open()
			if err != nil {
				return err
			}
			defer func() {
				_ = rt.Close()
				_ = log.Sync()
			}()

			out := cmd.OutOrStdout()
			key := legajos.Key{Number: args[0], Year: args[1]}.Normalize()

			l, err := rt.Services.Legajos.GetByKey(cmd.Context(), key)
			switch {
			case errors.Is(err, legajos.ErrInvalidInput):
				return err
			case errors.Is(err, legajos.ErrNotFound):
				renderMessage(out, legajos.MsgNotFound(key))
				return nil
			case err != nil:
				log.Error("detail query failed", map[string]any{
					"kind": errs.KindOf(err).String(),
					"err":  err,
				})
				renderMessage(out, legajos.MsgDetailError)
				return nil
			}

			renderTitle(out, "Expediente "+key.String())
			renderHeader(out, legajos.HeaderLayout(), l.Field)

			items, err := rt.Services.Movimientos.History(cmd.Context(), key.Number, key.Year)
			switch {
			case err != nil:
				log.Error("history query failed", map[string]any{
					"kind": errs.KindOf(err).String(),
					"err":  err,
				})
				renderMessage(out, movimientos.MsgHistoryError)
			case len(items) == 0:
				renderMessage(out, movimientos.MsgNoMovements)
			default:
				renderTable(out, movimientos.Table(items))
			}
			return nil
		},
	}
}
