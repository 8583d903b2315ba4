package models

// EstadoOperativo is the default status of new equipment; EstadoDeBaja is the
// suggested soft-delete status.
const (
	EstadoOperativo = "operativo"
	EstadoDeBaja    = "de_baja"
)

// Equipo is a list row: the equipment joined with its laboratory name.
type Equipo struct {
	ID             int64   `json:"id"`
	EtiquetaActivo string  `json:"etiqueta_activo"`
	Tipo           *string `json:"tipo"`
	Marca          *string `json:"marca"`
	Modelo         *string `json:"modelo"`
	Estado         *string `json:"estado"`
	LaboratorioID  int64   `json:"laboratorio_id"`
	Laboratorio    string  `json:"laboratorio"`
}

type EquipoFilter struct {
	LaboratorioID *int64
	Estado        string
	Tipo          string
	Marca         string
}

type EquipoCreate struct {
	EtiquetaActivo Field[string] `json:"etiqueta_activo" validate:"required"`
	LaboratorioID  Field[int64]  `json:"laboratorio_id" validate:"required"`
	Tipo           Field[string] `json:"tipo"`
	Marca          Field[string] `json:"marca"`
	Modelo         Field[string] `json:"modelo"`
	Estado         Field[string] `json:"estado"`
}

func (r EquipoCreate) Values() Values {
	v := Values{}
	put(v, "etiqueta_activo", r.EtiquetaActivo)
	put(v, "laboratorio_id", r.LaboratorioID)
	put(v, "tipo", r.Tipo)
	put(v, "marca", r.Marca)
	put(v, "modelo", r.Modelo)
	put(v, "estado", r.Estado)
	return v
}

type EquipoUpdate struct {
	EtiquetaActivo Field[string] `json:"etiqueta_activo"`
	LaboratorioID  Field[int64]  `json:"laboratorio_id"`
	Tipo           Field[string] `json:"tipo"`
	Marca          Field[string] `json:"marca"`
	Modelo         Field[string] `json:"modelo"`
	Estado         Field[string] `json:"estado"`
}

func (r EquipoUpdate) Values() Values {
	return EquipoCreate(r).Values()
}
