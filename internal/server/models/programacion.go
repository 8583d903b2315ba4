package models

// DefaultHastaDias is the look-ahead window of the upcoming-schedules view.
const DefaultHastaDias = 60

// Programacion is a recurring maintenance schedule row. Dates are rendered
// as YYYY-MM-DD by the query.
type Programacion struct {
	ID               int64   `json:"id"`
	EquipoID         int64   `json:"equipo_id"`
	EtiquetaActivo   string  `json:"etiqueta_activo"`
	LaboratorioID    int64   `json:"laboratorio_id"`
	Laboratorio      string  `json:"laboratorio"`
	PeriodicidadDias int     `json:"periodicidad_dias"`
	FechaProxima     *string `json:"fecha_proxima"`
	FechaUltima      *string `json:"fecha_ultima"`
}

// ProgramacionProxima is a row of vista_programaciones_proximas.
type ProgramacionProxima struct {
	ID               int64   `json:"id"`
	EquipoID         int64   `json:"equipo_id"`
	EtiquetaActivo   string  `json:"etiqueta_activo"`
	LaboratorioID    int64   `json:"laboratorio_id"`
	Laboratorio      string  `json:"laboratorio"`
	PeriodicidadDias int     `json:"periodicidad_dias"`
	FechaProxima     *string `json:"fecha_proxima"`
	DiasRestantes    int     `json:"dias_restantes"`
}

type ProgramacionFilter struct {
	EquipoID      *int64
	LaboratorioID *int64
	Tipo          string
	Marca         string
}

// ProximasFilter adds the days-remaining threshold (inclusive).
type ProximasFilter struct {
	ProgramacionFilter
	HastaDias int
}

type ProgramacionCreate struct {
	EquipoID         Field[int64]  `json:"equipo_id" validate:"required"`
	PeriodicidadDias Field[int]    `json:"periodicidad_dias" validate:"required"`
	FechaProxima     Field[string] `json:"fecha_proxima" validate:"required"`
	FechaUltima      Field[string] `json:"fecha_ultima"`
}

func (r ProgramacionCreate) Values() Values {
	v := Values{}
	put(v, "equipo_id", r.EquipoID)
	put(v, "periodicidad_dias", r.PeriodicidadDias)
	put(v, "fecha_proxima", r.FechaProxima)
	put(v, "fecha_ultima", r.FechaUltima)
	return v
}

// ProgramacionUpdate cannot move a schedule to another equipment.
type ProgramacionUpdate struct {
	PeriodicidadDias Field[int]    `json:"periodicidad_dias"`
	FechaProxima     Field[string] `json:"fecha_proxima"`
	FechaUltima      Field[string] `json:"fecha_ultima"`
}

func (r ProgramacionUpdate) Values() Values {
	v := Values{}
	put(v, "periodicidad_dias", r.PeriodicidadDias)
	put(v, "fecha_proxima", r.FechaProxima)
	put(v, "fecha_ultima", r.FechaUltima)
	return v
}
