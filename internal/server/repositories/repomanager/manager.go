package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/equipos"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/incidencias"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/laboratorios"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/mantenimientos"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/programaciones"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/usuarios"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code runs
// against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Usuarios(db dbx.DBTX) usuarios.Repository
	Laboratorios(db dbx.DBTX) laboratorios.Repository
	Equipos(db dbx.DBTX) equipos.Repository
	Programaciones(db dbx.DBTX) programaciones.Repository
	Mantenimientos(db dbx.DBTX) mantenimientos.Repository
	Incidencias(db dbx.DBTX) incidencias.Repository
}
