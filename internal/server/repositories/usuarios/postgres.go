package usuarios

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, u *models.Usuario) (*models.Usuario, error) {
	query :=
		`INSERT INTO usuarios (usuario, contrasena, rol)
		 VALUES ($1, $2, $3)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query, u.Usuario, u.Contrasena, u.Rol).Scan(&u.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

// GetByLogin matches the username exactly.
func (r *PostgresRepository) GetByLogin(ctx context.Context, usuario string) (*models.Usuario, error) {
	query :=
		`SELECT id, usuario, contrasena, rol FROM usuarios
		 WHERE usuario = $1`

	u := &models.Usuario{}
	err := r.db.QueryRowContext(ctx, query, usuario).Scan(&u.ID, &u.Usuario, &u.Contrasena, &u.Rol)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}
