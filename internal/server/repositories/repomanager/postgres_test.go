package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/labmaint/internal/server/repositories/equipos"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/incidencias"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/laboratorios"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/mantenimientos"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/programaciones"
	"github.com/dmitrijs2005/labmaint/internal/server/repositories/usuarios"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewPostgresRepositoryManager_ImplementsInterface(t *testing.T) {
	var _ RepositoryManager = NewPostgresRepositoryManager()
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := NewPostgresRepositoryManager()

	if _, ok := m.Usuarios(db).(*usuarios.PostgresRepository); !ok {
		t.Fatal("Usuarios() is not a PostgresRepository")
	}
	if _, ok := m.Laboratorios(db).(*laboratorios.PostgresRepository); !ok {
		t.Fatal("Laboratorios() is not a PostgresRepository")
	}
	if r := m.Equipos(db); r.Schema() != equipos.Table {
		t.Fatal("Equipos() bound to the wrong table")
	}
	if r := m.Programaciones(db); r.Schema() != programaciones.Table {
		t.Fatal("Programaciones() bound to the wrong table")
	}
	if r := m.Mantenimientos(db); r.Schema() != mantenimientos.Table {
		t.Fatal("Mantenimientos() bound to the wrong table")
	}
	if r := m.Incidencias(db); r.Schema() != incidencias.Table {
		t.Fatal("Incidencias() bound to the wrong table")
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
