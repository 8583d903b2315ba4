package models

import "time"

// Work-order states.
const (
	EstadoAbierto   = "abierto"
	EstadoEnProceso = "en_proceso"
	EstadoCerrado   = "cerrado"
)

// Mantenimiento is a maintenance work-order row. Timestamps are rendered as
// YYYY-MM-DD HH:MM:SS by the query.
type Mantenimiento struct {
	ID             int64   `json:"id"`
	EquipoID       int64   `json:"equipo_id"`
	EtiquetaActivo string  `json:"etiqueta_activo"`
	Tipo           string  `json:"tipo"`
	Estado         string  `json:"estado"`
	FechaApertura  *string `json:"fecha_apertura"`
	FechaCierre    *string `json:"fecha_cierre"`
	Descripcion    *string `json:"descripcion"`
}

type MantenimientoFilter struct {
	EquipoID *int64
	Estado   string
	Tipo     string
	Desde    *time.Time
	Hasta    *time.Time
}

type MantenimientoCreate struct {
	EquipoID      Field[int64]  `json:"equipo_id" validate:"required"`
	Tipo          Field[string] `json:"tipo" validate:"required"`
	FechaApertura Field[string] `json:"fecha_apertura" validate:"required"`
	FechaCierre   Field[string] `json:"fecha_cierre"`
	Estado        Field[string] `json:"estado" validate:"omitempty,oneof=abierto en_proceso cerrado"`
	Descripcion   Field[string] `json:"descripcion"`
}

func (r MantenimientoCreate) Values() Values {
	v := Values{}
	put(v, "equipo_id", r.EquipoID)
	put(v, "tipo", r.Tipo)
	put(v, "fecha_apertura", r.FechaApertura)
	put(v, "fecha_cierre", r.FechaCierre)
	put(v, "estado", r.Estado)
	put(v, "descripcion", r.Descripcion)
	return v
}

type MantenimientoUpdate struct {
	EquipoID      Field[int64]  `json:"equipo_id"`
	Tipo          Field[string] `json:"tipo"`
	FechaApertura Field[string] `json:"fecha_apertura"`
	FechaCierre   Field[string] `json:"fecha_cierre"`
	Estado        Field[string] `json:"estado" validate:"omitempty,oneof=abierto en_proceso cerrado"`
	Descripcion   Field[string] `json:"descripcion"`
}

func (r MantenimientoUpdate) Values() Values {
	return MantenimientoCreate{
		EquipoID:      r.EquipoID,
		Tipo:          r.Tipo,
		FechaApertura: r.FechaApertura,
		FechaCierre:   r.FechaCierre,
		Estado:        r.Estado,
		Descripcion:   r.Descripcion,
	}.Values()
}
