package movimientos

import "procuraduria/internal/presentation"

// Table arma el historial para mostrar: Fecha (DD/MM/YYYY), Tipo, Detalle, Usuario.
func Table(items []Movimiento) presentation.Table {
	records := make([]map[string]string, 0, len(items))
	for _, m := range items {
		records = append(records, map[string]string{
			ColDate:   m.DisplayDate(),
			ColType:   m.Type,
			ColDetail: m.Detail,
			ColUser:   m.User,
		})
	}

	t := presentation.NewTable([]string{ColDate, ColType, ColDetail, ColUser}, records)
	return presentation.Layout{
		{Key: ColDate, Label: "Fecha"},
		{Key: ColType, Label: "Tipo"},
		{Key: ColDetail, Label: "Detalle"},
		{Key: ColUser, Label: "Usuario"},
	}.Apply(t)
}
