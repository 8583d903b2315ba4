// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/migrations"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/equipos"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/incidencias"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/laboratorios"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/mantenimientos"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/programaciones"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/usuarios"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Usuarios(db dbx.DBTX) usuarios.Repository {
	return usuarios.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Laboratorios(db dbx.DBTX) laboratorios.Repository {
	return laboratorios.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Equipos(db dbx.DBTX) equipos.Repository {
	return equipos.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Programaciones(db dbx.DBTX) programaciones.Repository {
	return programaciones.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Mantenimientos(db dbx.DBTX) mantenimientos.Repository {
	return mantenimientos.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Incidencias(db dbx.DBTX) incidencias.Repository {
	return incidencias.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
