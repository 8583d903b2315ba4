package programaciones

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/crud"
)

// Table describes programaciones_mantenimiento. A schedule cannot be moved
// to another equipment once created.
var Table = &crud.Table{
	Name:       "programaciones_mantenimiento",
	Insertable: []string{"equipo_id", "periodicidad_dias", "fecha_proxima", "fecha_ultima"},
	Updatable:  []string{"periodicidad_dias", "fecha_proxima", "fecha_ultima"},
	Required:   []string{"equipo_id", "periodicidad_dias", "fecha_proxima"},
}

const proximasLimit = 200

type PostgresRepository struct {
	*crud.Writer
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{Writer: crud.NewWriter(Table, db), db: db}
}

func (r *PostgresRepository) List(ctx context.Context, f models.ProgramacionFilter) ([]models.Programacion, error) {
	var w dbx.Where
	w.AddInt64("p.equipo_id = $%d", f.EquipoID)
	w.AddInt64("e.laboratorio_id = $%d", f.LaboratorioID)
	w.AddString("e.tipo = $%d", f.Tipo)
	w.AddString("e.marca = $%d", f.Marca)

	query := `SELECT p.id, p.equipo_id, e.etiqueta_activo, e.laboratorio_id, l.nombre AS laboratorio,
		p.periodicidad_dias,
		to_char(p.fecha_proxima, 'YYYY-MM-DD') AS fecha_proxima,
		to_char(p.fecha_ultima, 'YYYY-MM-DD') AS fecha_ultima
		FROM programaciones_mantenimiento p
		JOIN equipos e ON e.id = p.equipo_id
		JOIN laboratorios l ON l.id = e.laboratorio_id
		` + w.Clause() + `
		ORDER BY p.fecha_proxima ASC`

	rows, err := r.db.QueryContext(ctx, query, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Programacion{}
	for rows.Next() {
		var p models.Programacion
		if err := rows.Scan(&p.ID, &p.EquipoID, &p.EtiquetaActivo, &p.LaboratorioID, &p.Laboratorio,
			&p.PeriodicidadDias, &p.FechaProxima, &p.FechaUltima); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Proximas(ctx context.Context, f models.ProximasFilter) ([]models.ProgramacionProxima, error) {
	var w dbx.Where
	w.Add("vp.dias_restantes <= $%d", f.HastaDias)
	w.AddInt64("vp.laboratorio_id = $%d", f.LaboratorioID)
	w.AddInt64("vp.equipo_id = $%d", f.EquipoID)
	w.AddString("e.tipo = $%d", f.Tipo)
	w.AddString("e.marca = $%d", f.Marca)

	query := fmt.Sprintf(`SELECT vp.id, vp.equipo_id, vp.etiqueta_activo,
		vp.laboratorio_id, vp.laboratorio,
		vp.periodicidad_dias,
		to_char(vp.fecha_proxima, 'YYYY-MM-DD') AS fecha_proxima,
		CAST(vp.dias_restantes AS INTEGER) AS dias_restantes
		FROM vista_programaciones_proximas vp
		JOIN equipos e ON e.id = vp.equipo_id
		%s
		ORDER BY vp.fecha_proxima ASC
		LIMIT %d`, w.Clause(), proximasLimit)

	rows, err := r.db.QueryContext(ctx, query, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.ProgramacionProxima{}
	for rows.Next() {
		var p models.ProgramacionProxima
		if err := rows.Scan(&p.ID, &p.EquipoID, &p.EtiquetaActivo, &p.LaboratorioID, &p.Laboratorio,
			&p.PeriodicidadDias, &p.FechaProxima, &p.DiasRestantes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
