package memory

import (
	"procuraduria/internal/domain/legajos"
	"procuraduria/internal/domain/movimientos"
)

// DevDataset son unos pocos legajos de ejemplo para levantar el servicio sin base
// (DEV_SEED=true). Nombres y números son ficticios.
func DevDataset() Dataset {
	return Dataset{
		Legajos: []map[string]string{
			{
				legajos.ColNumber:        "123",
				legajos.ColYear:          "2024",
				legajos.ColDocket:        "00451-2023-0-1801-JR-CI-05",
				legajos.ColCourt:         "5° Juzgado Civil de Lima",
				legajos.ColPlaintiff:     "Municipalidad Distrital de Miraflores",
				legajos.ColDefendant:     "Constructora Andina S.A.C.",
				legajos.ColMatter:        "Civil",
				legajos.ColMatterSubtype: "Obligación de dar suma de dinero",
				legajos.ColInstitution:   "Municipalidad Distrital de Miraflores",
				legajos.ColPriority:      "ALTA",
				legajos.ColProcessType:   "Conocimiento",
				legajos.ColStatus:        "EN TRAMITE",
				legajos.ColStatusSummary: "Pendiente de audiencia de pruebas.",
				legajos.ColAttorney:      "María GARCIA Lopez",
				legajos.ColLocation:      "Archivo 2 - Estante B",
			},
			{
				legajos.ColNumber:        "1234",
				legajos.ColYear:          "2024",
				legajos.ColDocket:        "01120-2024-0-1801-JR-LA-02",
				legajos.ColPlaintiff:     "Juan Pérez Quispe",
				legajos.ColDefendant:     "Municipalidad Distrital de Miraflores",
				legajos.ColMatter:        "Laboral",
				legajos.ColStatus:        "EN TRAMITE",
				legajos.ColStatusSummary: "Contestación de demanda presentada.",
				legajos.ColAttorney:      "Carlos Rojas",
			},
			{
				legajos.ColNumber:        "87",
				legajos.ColYear:          "2022",
				legajos.ColDocket:        "00077-2022-0-1801-JR-PE-11",
				legajos.ColPlaintiff:     "Procuraduría Pública Municipal",
				legajos.ColDefendant:     "Luis Torres",
				legajos.ColMatter:        "Penal",
				legajos.ColStatus:        "ARCHIVADO",
				legajos.ColStatusSummary: "Archivado definitivo.",
				legajos.ColAttorney:      "Ana García",
			},
		},
		Movimientos: []MovimientoRow{
			{Number: "123", Year: "2024", Movimiento: movimientos.Movimiento{Date: "2024-02-10", Type: "ESCRITO", Detail: "Se presenta demanda", User: "mgarcia"}},
			{Number: "123", Year: "2024", Movimiento: movimientos.Movimiento{Date: "2024-05-21", Type: "RESOLUCION", Detail: "Admite a trámite", User: "mgarcia"}},
			{Number: "123", Year: "2024", Movimiento: movimientos.Movimiento{Date: "2024-09-03", Type: "AUDIENCIA", Detail: "Se programa audiencia de pruebas", User: "crojas"}},
			{Number: "87", Year: "2022", Movimiento: movimientos.Movimiento{Date: "2023-01-15", Type: "RESOLUCION", Detail: "Archivo definitivo", User: "agarcia"}},
		},
	}
}
