package legajos

import (
	"strings"

	"procuraduria/internal/platform/datefmt"
)

// Columnas de la tabla legajos (identificadores de almacenamiento).
const (
	ColNumber        = "legajo_nro"
	ColYear          = "legajo_año"
	ColDocket        = "exp_primera_instancia"
	ColCourt         = "juzgado"
	ColPlaintiff     = "demandante"
	ColDefendant     = "inculpado"
	ColMatter        = "nombre_materia"
	ColMatterSubtype = "sub_materia"
	ColInstitution   = "institucion"
	ColPriority      = "prioridad"
	ColProcessType   = "tipo_proceso"
	ColStatus        = "estadolegajo_id"
	ColStatusSummary = "estado_actual_resumen"
	ColAttorney      = "nombre_abogado"
	ColLocation      = "ubicacion_fisica"

	// Derivadas del último movimiento (solo en búsqueda enriquecida).
	ColLatestDate   = "ult_fecha_mov"
	ColLatestType   = "ult_tipo_mov"
	ColLatestDetail = "ult_detalle"
)

// SearchColumns es la lista fija que devuelve la búsqueda, en orden de SELECT.
var SearchColumns = []string{
	ColNumber,
	ColYear,
	ColDocket,
	ColAttorney,
	ColStatus,
	ColMatter,
	ColPlaintiff,
	ColStatusSummary,
}

var LatestColumns = []string{ColLatestDate, ColLatestType, ColLatestDetail}

// Key identifica un legajo: número + año, comparados como texto.
type Key struct {
	Number string `validate:"required,max=20"`
	Year   string `validate:"required,max=10"`
}

func (k Key) Normalize() Key {
	return Key{
		Number: strings.TrimSpace(k.Number),
		Year:   strings.TrimSpace(k.Year),
	}
}

func (k Key) String() string {
	return k.Number + "-" + k.Year
}

// LatestMovement es el último movimiento de un legajo. Date viene crudo de la base.
type LatestMovement struct {
	Date   string
	Type   string
	Detail string
}

// Summary es una fila del resultado de búsqueda.
type Summary struct {
	Key
	Docket        string
	Attorney      string
	Status        string
	Matter        string
	Plaintiff     string
	StatusSummary string

	// nil si la búsqueda no pidió enriquecimiento.
	Latest *LatestMovement
}

// Record devuelve la fila indexada por columna de almacenamiento.
// Las columnas del último movimiento solo aparecen si Latest != nil.
func (s Summary) Record() map[string]string {
	m := map[string]string{
		ColNumber:        s.Number,
		ColYear:          s.Year,
		ColDocket:        s.Docket,
		ColAttorney:      s.Attorney,
		ColStatus:        s.Status,
		ColMatter:        s.Matter,
		ColPlaintiff:     s.Plaintiff,
		ColStatusSummary: s.StatusSummary,
	}
	if s.Latest != nil {
		m[ColLatestDate] = datefmt.Format(s.Latest.Date)
		m[ColLatestType] = s.Latest.Type
		m[ColLatestDetail] = s.Latest.Detail
	}
	return m
}

// Legajo es la cabecera completa. Fields guarda todas las columnas que devolvió
// la base (SELECT *), así un cambio de esquema no rompe la ficha.
type Legajo struct {
	Key
	Docket        string
	Court         string
	Plaintiff     string
	Defendant     string
	Matter        string
	MatterSubtype string
	Institution   string
	Priority      string
	ProcessType   string
	Status        string
	StatusSummary string
	Attorney      string
	Location      string

	Fields map[string]string
}

// FromFields arma la cabecera desde un mapa columna->valor.
// Columnas ausentes quedan en "".
func FromFields(fields map[string]string) Legajo {
	if fields == nil {
		fields = map[string]string{}
	}
	get := func(col string) string { return fields[col] }

	return Legajo{
		Key:           Key{Number: get(ColNumber), Year: get(ColYear)},
		Docket:        get(ColDocket),
		Court:         get(ColCourt),
		Plaintiff:     get(ColPlaintiff),
		Defendant:     get(ColDefendant),
		Matter:        get(ColMatter),
		MatterSubtype: get(ColMatterSubtype),
		Institution:   get(ColInstitution),
		Priority:      get(ColPriority),
		ProcessType:   get(ColProcessType),
		Status:        get(ColStatus),
		StatusSummary: get(ColStatusSummary),
		Attorney:      get(ColAttorney),
		Location:      get(ColLocation),
		Fields:        fields,
	}
}

func (l Legajo) Field(col string) string {
	return l.Fields[col]
}
