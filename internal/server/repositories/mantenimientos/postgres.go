package mantenimientos

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/crud"
)

const timestampLayout = "2006-01-02 15:04:05"

const listLimit = 300

// Table describes the mantenimientos table. A work order referenced by an
// incident cannot be deleted.
var Table = &crud.Table{
	Name:       "mantenimientos",
	Insertable: []string{"equipo_id", "tipo", "fecha_apertura", "fecha_cierre", "estado", "descripcion"},
	Updatable:  []string{"equipo_id", "tipo", "fecha_apertura", "fecha_cierre", "estado", "descripcion"},
	Required:   []string{"equipo_id", "tipo", "fecha_apertura"},
	Defaults:   models.Values{"estado": models.EstadoAbierto},
	References: []crud.Reference{
		{Table: "incidencias", Column: "mantenimiento_id"},
	},
}

type PostgresRepository struct {
	*crud.Writer
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{Writer: crud.NewWriter(Table, db), db: db}
}

func (r *PostgresRepository) List(ctx context.Context, f models.MantenimientoFilter) ([]models.Mantenimiento, error) {
	var w dbx.Where
	w.AddInt64("m.equipo_id = $%d", f.EquipoID)
	w.AddString("m.estado = $%d", f.Estado)
	w.AddString("m.tipo = $%d", f.Tipo)
	if f.Desde != nil {
		w.Add("m.fecha_apertura >= $%d", f.Desde.Format(timestampLayout))
	}
	if f.Hasta != nil {
		w.Add("m.fecha_apertura <= $%d", f.Hasta.Format(timestampLayout))
	}

	query := fmt.Sprintf(`SELECT m.id, m.equipo_id, e.etiqueta_activo,
		m.tipo, m.estado,
		to_char(m.fecha_apertura, 'YYYY-MM-DD HH24:MI:SS') AS fecha_apertura,
		to_char(m.fecha_cierre, 'YYYY-MM-DD HH24:MI:SS') AS fecha_cierre,
		m.descripcion
		FROM mantenimientos m
		JOIN equipos e ON e.id = m.equipo_id
		%s
		ORDER BY m.fecha_apertura DESC
		LIMIT %d`, w.Clause(), listLimit)

	rows, err := r.db.QueryContext(ctx, query, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Mantenimiento{}
	for rows.Next() {
		var m models.Mantenimiento
		if err := rows.Scan(&m.ID, &m.EquipoID, &m.EtiquetaActivo, &m.Tipo, &m.Estado,
			&m.FechaApertura, &m.FechaCierre, &m.Descripcion); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
