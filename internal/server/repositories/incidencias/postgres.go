package incidencias

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/crud"
)

const timestampLayout = "2006-01-02 15:04:05"

const listLimit = 300

var Table = &crud.Table{
	Name:       "incidencias",
	Insertable: []string{"equipo_id", "reportada_por", "fecha_reporte", "severidad", "descripcion", "mantenimiento_id"},
	Updatable:  []string{"equipo_id", "reportada_por", "fecha_reporte", "severidad", "descripcion", "mantenimiento_id"},
	Required:   []string{"equipo_id", "fecha_reporte", "severidad"},
}

type PostgresRepository struct {
	*crud.Writer
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{Writer: crud.NewWriter(Table, db), db: db}
}

// List joins the reporter's username; incidents without a reporter keep a
// null reportada_por_usuario.
func (r *PostgresRepository) List(ctx context.Context, f models.IncidenciaFilter) ([]models.Incidencia, error) {
	var w dbx.Where
	w.AddInt64("i.equipo_id = $%d", f.EquipoID)
	w.AddString("i.severidad = $%d", f.Severidad)
	w.AddInt64("i.mantenimiento_id = $%d", f.MantenimientoID)
	if f.Desde != nil {
		w.Add("i.fecha_reporte >= $%d", f.Desde.Format(timestampLayout))
	}
	if f.Hasta != nil {
		w.Add("i.fecha_reporte <= $%d", f.Hasta.Format(timestampLayout))
	}

	query := fmt.Sprintf(`SELECT i.id, i.equipo_id, e.etiqueta_activo,
		i.mantenimiento_id,
		i.severidad,
		to_char(i.fecha_reporte, 'YYYY-MM-DD HH24:MI:SS') AS fecha_reporte,
		i.descripcion,
		i.reportada_por, u.usuario AS reportada_por_usuario
		FROM incidencias i
		JOIN equipos e ON e.id = i.equipo_id
		LEFT JOIN usuarios u ON u.id = i.reportada_por
		%s
		ORDER BY i.fecha_reporte DESC
		LIMIT %d`, w.Clause(), listLimit)

	rows, err := r.db.QueryContext(ctx, query, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Incidencia{}
	for rows.Next() {
		var i models.Incidencia
		if err := rows.Scan(&i.ID, &i.EquipoID, &i.EtiquetaActivo, &i.MantenimientoID, &i.Severidad,
			&i.FechaReporte, &i.Descripcion, &i.ReportadaPor, &i.ReportadaPorUsuario); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
