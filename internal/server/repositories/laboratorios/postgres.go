package laboratorios

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Laboratorio, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nombre, ubicacion FROM laboratorios ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Laboratorio{}
	for rows.Next() {
		var l models.Laboratorio
		if err := rows.Scan(&l.ID, &l.Nombre, &l.Ubicacion); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
