package equipos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/crud"
)

// Table describes the equipos table. Equipment referenced by schedules,
// work orders or incidents cannot be deleted.
var Table = &crud.Table{
	Name:       "equipos",
	Insertable: []string{"etiqueta_activo", "laboratorio_id", "tipo", "marca", "modelo", "estado"},
	Updatable:  []string{"etiqueta_activo", "laboratorio_id", "tipo", "marca", "modelo", "estado"},
	Required:   []string{"etiqueta_activo", "laboratorio_id"},
	Defaults:   models.Values{"estado": models.EstadoOperativo},
	References: []crud.Reference{
		{Table: "programaciones_mantenimiento", Column: "equipo_id"},
		{Table: "mantenimientos", Column: "equipo_id"},
		{Table: "incidencias", Column: "equipo_id"},
	},
}

type PostgresRepository struct {
	*crud.Writer
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{Writer: crud.NewWriter(Table, db), db: db}
}

func (r *PostgresRepository) List(ctx context.Context, f models.EquipoFilter) ([]models.Equipo, error) {
	var w dbx.Where
	w.AddInt64("e.laboratorio_id = $%d", f.LaboratorioID)
	w.AddString("e.estado = $%d", f.Estado)
	w.AddString("e.tipo = $%d", f.Tipo)
	w.AddString("e.marca = $%d", f.Marca)

	query := `SELECT e.id, e.etiqueta_activo, e.tipo, e.marca, e.modelo, e.estado,
		l.id AS laboratorio_id, l.nombre AS laboratorio
		FROM equipos e
		JOIN laboratorios l ON l.id = e.laboratorio_id
		` + w.Clause() + `
		ORDER BY e.id DESC`

	rows, err := r.db.QueryContext(ctx, query, w.Args()...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Equipo{}
	for rows.Next() {
		var e models.Equipo
		if err := rows.Scan(&e.ID, &e.EtiquetaActivo, &e.Tipo, &e.Marca, &e.Modelo, &e.Estado,
			&e.LaboratorioID, &e.Laboratorio); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) GetTag(ctx context.Context, id int64) (string, error) {
	var tag string
	err := r.db.QueryRowContext(ctx, `SELECT etiqueta_activo FROM equipos WHERE id = $1`, id).Scan(&tag)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return tag, nil
}

func (r *PostgresRepository) CountByTag(ctx context.Context, tag string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM equipos WHERE etiqueta_activo = $1`, tag).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
