package legajos

import "procuraduria/internal/presentation"

// DefaultLayout es el orden y las etiquetas con que se muestra la búsqueda.
func DefaultLayout() presentation.Layout {
	return presentation.Layout{
		{Key: ColNumber, Label: "Legajo"},
		{Key: ColYear, Label: "Año"},
		{Key: ColDocket, Label: "Expediente"},
		{Key: ColMatter, Label: "Materia"},
		{Key: ColPlaintiff, Label: "Demandante"},
		{Key: ColAttorney, Label: "Abogado"},
		{Key: ColStatus, Label: "Estado"},
		{Key: ColLatestDate, Label: "Últ. Fecha"},
		{Key: ColLatestType, Label: "Últ. Movimiento"},
		{Key: ColLatestDetail, Label: "Últ. Detalle"},
		{Key: ColStatusSummary, Label: "Resumen"},
	}
}

// Table arma la tabla de resultados (columnas de almacenamiento, sin renombrar).
func Table(items []Summary, withLatest bool) presentation.Table {
	keys := append([]string{}, SearchColumns...)
	if withLatest {
		keys = append(keys, LatestColumns...)
	}

	records := make([]map[string]string, 0, len(items))
	for _, it := range items {
		records = append(records, it.Record())
	}
	return presentation.NewTable(keys, records)
}

// HeaderLayout son los campos de cabecera de la ficha, en orden de lectura.
func HeaderLayout() presentation.Layout {
	return presentation.Layout{
		{Key: ColDocket, Label: "Expediente"},
		{Key: ColCourt, Label: "Juzgado"},
		{Key: ColPlaintiff, Label: "Demandante"},
		{Key: ColDefendant, Label: "Inculpado"},
		{Key: ColMatter, Label: "Materia"},
		{Key: ColMatterSubtype, Label: "Sub materia"},
		{Key: ColInstitution, Label: "Institución"},
		{Key: ColPriority, Label: "Prioridad"},
		{Key: ColProcessType, Label: "Tipo de proceso"},
		{Key: ColStatus, Label: "Estado"},
		{Key: ColStatusSummary, Label: "Resumen"},
		{Key: ColAttorney, Label: "Abogado"},
		{Key: ColLocation, Label: "Ubicación física"},
	}
}
