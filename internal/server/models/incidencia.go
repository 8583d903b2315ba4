package models

import "time"

// Incidencia is an incident report row joined with the equipment tag and the
// reporter's username.
type Incidencia struct {
	ID                  int64   `json:"id"`
	EquipoID            int64   `json:"equipo_id"`
	EtiquetaActivo      string  `json:"etiqueta_activo"`
	MantenimientoID     *int64  `json:"mantenimiento_id"`
	Severidad           string  `json:"severidad"`
	FechaReporte        *string `json:"fecha_reporte"`
	Descripcion         *string `json:"descripcion"`
	ReportadaPor        *int64  `json:"reportada_por"`
	ReportadaPorUsuario *string `json:"reportada_por_usuario"`
}

type IncidenciaFilter struct {
	EquipoID        *int64
	Severidad       string
	MantenimientoID *int64
	Desde           *time.Time
	Hasta           *time.Time
}

type IncidenciaCreate struct {
	EquipoID        Field[int64]  `json:"equipo_id" validate:"required"`
	ReportadaPor    Field[int64]  `json:"reportada_por"`
	FechaReporte    Field[string] `json:"fecha_reporte" validate:"required"`
	Severidad       Field[string] `json:"severidad" validate:"required,oneof=baja media alta"`
	Descripcion     Field[string] `json:"descripcion"`
	MantenimientoID Field[int64]  `json:"mantenimiento_id"`
}

func (r IncidenciaCreate) Values() Values {
	v := Values{}
	put(v, "equipo_id", r.EquipoID)
	put(v, "reportada_por", r.ReportadaPor)
	put(v, "fecha_reporte", r.FechaReporte)
	put(v, "severidad", r.Severidad)
	put(v, "descripcion", r.Descripcion)
	put(v, "mantenimiento_id", r.MantenimientoID)
	return v
}

type IncidenciaUpdate struct {
	EquipoID        Field[int64]  `json:"equipo_id"`
	ReportadaPor    Field[int64]  `json:"reportada_por"`
	FechaReporte    Field[string] `json:"fecha_reporte"`
	Severidad       Field[string] `json:"severidad" validate:"omitempty,oneof=baja media alta"`
	Descripcion     Field[string] `json:"descripcion"`
	MantenimientoID Field[int64]  `json:"mantenimiento_id"`
}

func (r IncidenciaUpdate) Values() Values {
	v := Values{}
	put(v, "equipo_id", r.EquipoID)
	put(v, "reportada_por", r.ReportadaPor)
	put(v, "fecha_reporte", r.FechaReporte)
	put(v, "severidad", r.Severidad)
	put(v, "descripcion", r.Descripcion)
	put(v, "mantenimiento_id", r.MantenimientoID)
	return v
}
