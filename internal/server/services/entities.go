package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/repomanager"
)

const (
	noFieldsAllowed  = "Sin cambios: no se enviaron campos permitidos"
	equipoReferenced = "No se puede eliminar: el equipo tiene referencias " +
		"(programaciones/mantenimientos/incidencias). Sugerencia: cambiar estado a 'de_baja'."
)

type (
	EquipoService        = EntityService[models.Equipo, models.EquipoFilter]
	MantenimientoService = EntityService[models.Mantenimiento, models.MantenimientoFilter]
	IncidenciaService    = EntityService[models.Incidencia, models.IncidenciaFilter]
)

// NewEquipoService re-checks the asset tag when an update changes it.
func NewEquipoService(db *sql.DB, m repomanager.RepositoryManager) *EquipoService {
	return &EquipoService{
		db:   db,
		repo: func(db dbx.DBTX) Repository[models.Equipo, models.EquipoFilter] { return m.Equipos(db) },
		msgs: Messages{
			Created:    "Equipo creado",
			Updated:    "Equipo actualizado",
			Deleted:    "Equipo eliminado",
			NotFound:   "Equipo no encontrado",
			NoFields:   noFieldsAllowed,
			Referenced: equipoReferenced,
		},
		beforeUpdate: func(ctx context.Context, tx dbx.DBTX, id int64, v models.Values) error {
			tag, ok := v["etiqueta_activo"].(string)
			if !ok {
				return nil
			}
			repo := m.Equipos(tx)
			current, err := repo.GetTag(ctx, id)
			if err != nil {
				return err
			}
			if tag == current {
				return nil
			}
			n, err := repo.CountByTag(ctx, tag)
			if err != nil {
				return err
			}
			if n > 0 {
				return common.Errorf(common.ErrorConflict, "La etiqueta ya existe")
			}
			return nil
		},
	}
}

func NewMantenimientoService(db *sql.DB, m repomanager.RepositoryManager) *MantenimientoService {
	return &MantenimientoService{
		db:   db,
		repo: func(db dbx.DBTX) Repository[models.Mantenimiento, models.MantenimientoFilter] { return m.Mantenimientos(db) },
		msgs: Messages{
			Created:    "Mantenimiento creado",
			Updated:    "Mantenimiento actualizado",
			Deleted:    "Mantenimiento eliminado",
			NotFound:   "Mantenimiento no encontrado",
			NoFields:   noFieldsAllowed,
			Referenced: "No se puede eliminar: existen incidencias referenciando este mantenimiento",
		},
	}
}

func NewIncidenciaService(db *sql.DB, m repomanager.RepositoryManager) *IncidenciaService {
	return &IncidenciaService{
		db:   db,
		repo: func(db dbx.DBTX) Repository[models.Incidencia, models.IncidenciaFilter] { return m.Incidencias(db) },
		msgs: Messages{
			Created:  "Incidencia creada",
			Updated:  "Incidencia actualizada",
			Deleted:  "Incidencia eliminada",
			NotFound: "Incidencia no encontrada",
			NoFields: noFieldsAllowed,
		},
	}
}

// ProgramacionService adds the upcoming-schedules query.
type ProgramacionService struct {
	*EntityService[models.Programacion, models.ProgramacionFilter]
	m repomanager.RepositoryManager
}

func NewProgramacionService(db *sql.DB, m repomanager.RepositoryManager) *ProgramacionService {
	return &ProgramacionService{
		EntityService: &EntityService[models.Programacion, models.ProgramacionFilter]{
			db:   db,
			repo: func(db dbx.DBTX) Repository[models.Programacion, models.ProgramacionFilter] { return m.Programaciones(db) },
			msgs: Messages{
				Created:  "Programación creada",
				Updated:  "Programación actualizada",
				Deleted:  "Programación eliminada",
				NotFound: "Programación no encontrada",
				NoFields: "Sin cambios: no se enviaron campos a actualizar",
			},
		},
		m: m,
	}
}

func (s *ProgramacionService) Proximas(ctx context.Context, f models.ProximasFilter) ([]models.ProgramacionProxima, error) {
	return s.m.Programaciones(s.db).Proximas(ctx, f)
}

// LaboratorioService is read-only.
type LaboratorioService struct {
	db *sql.DB
	m  repomanager.RepositoryManager
}

func NewLaboratorioService(db *sql.DB, m repomanager.RepositoryManager) *LaboratorioService {
	return &LaboratorioService{db: db, m: m}
}

func (s *LaboratorioService) List(ctx context.Context) ([]models.Laboratorio, error) {
	return s.m.Laboratorios(s.db).List(ctx)
}
