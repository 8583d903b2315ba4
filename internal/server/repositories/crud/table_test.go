package crud

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

var testTable = &Table{
	Name:       "mantenimientos",
	Insertable: []string{"equipo_id", "tipo", "fecha_apertura", "estado", "descripcion"},
	Updatable:  []string{"tipo", "estado", "descripcion"},
	Required:   []string{"equipo_id", "tipo"},
	Defaults:   models.Values{"estado": "abierto"},
	References: []Reference{
		{Table: "incidencias", Column: "mantenimiento_id"},
		{Table: "adjuntos", Column: "mantenimiento_id"},
	},
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestMissing(t *testing.T) {
	assert.Equal(t, []string{"equipo_id", "tipo"}, testTable.Missing(models.Values{}))
	assert.Empty(t, testTable.Missing(models.Values{"equipo_id": int64(0), "tipo": ""}))
	assert.Equal(t, []string{"equipo_id"}, testTable.Missing(models.Values{"equipo_id": nil, "tipo": "preventivo"}))
	assert.Empty(t, testTable.Missing(models.Values{"equipo_id": int64(1), "tipo": "preventivo"}))
}

func TestUpdates_FiltersByAllowList(t *testing.T) {
	got := testTable.Updates(models.Values{"tipo": "x", "equipo_id": int64(3), "id": int64(9)})
	assert.Equal(t, models.Values{"tipo": "x"}, got)
}

func TestInsert_AppliesDefaultsAndIgnoresUnknown(t *testing.T) {
	db, mock := newMock(t)

	q := `^INSERT INTO mantenimientos \(equipo_id, tipo, estado\) VALUES \(\$1, \$2, \$3\) RETURNING id$`
	mock.ExpectQuery(q).
		WithArgs(int64(7), "preventivo", "abierto").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

	id, err := testTable.Insert(context.Background(), db, models.Values{
		"equipo_id": int64(7),
		"tipo":      "preventivo",
		"hack":      "x; DROP TABLE equipos",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_ExplicitValueOverridesDefault(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`^INSERT INTO mantenimientos \(equipo_id, tipo, estado, descripcion\)`).
		WithArgs(int64(7), "correctivo", "cerrado", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	_, err := testTable.Insert(context.Background(), db, models.Values{
		"equipo_id":   int64(7),
		"tipo":        "correctivo",
		"estado":      "cerrado",
		"descripcion": nil,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_MissingFieldsSkipsStore(t *testing.T) {
	db, mock := newMock(t)

	_, err := testTable.Insert(context.Background(), db, models.Values{"tipo": "x"})

	var missing *common.MissingFieldsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"equipo_id"}, missing.Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_DBError(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`^INSERT INTO mantenimientos`).WillReturnError(errors.New("fk violation"))

	_, err := testTable.Insert(context.Background(), db, models.Values{"equipo_id": int64(1), "tipo": "x"})
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*fk violation`), err.Error())
}

func TestUpdate_BuildsSetInAllowListOrder(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(`^UPDATE mantenimientos SET tipo = \$1, descripcion = \$2 WHERE id = \$3$`).
		WithArgs("correctivo", nil, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := testTable.Update(context.Background(), db, 5, models.Values{
		"descripcion": nil,
		"tipo":        "correctivo",
		"equipo_id":   int64(99),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NoAllowedFields(t *testing.T) {
	db, mock := newMock(t)

	_, err := testTable.Update(context.Background(), db, 5, models.Values{"equipo_id": int64(1)})
	assert.ErrorIs(t, err, common.ErrorNoFields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec(`^DELETE FROM mantenimientos WHERE id = \$1$`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := testTable.Delete(context.Background(), db, 3)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestExists(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`^SELECT 1 FROM mantenimientos WHERE id = \$1$`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(`^SELECT 1 FROM mantenimientos WHERE id = \$1$`).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`^SELECT 1 FROM mantenimientos WHERE id = \$1$`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("conn reset"))

	ok, err := testTable.Exists(context.Background(), db, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = testTable.Exists(context.Background(), db, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = testTable.Exists(context.Background(), db, 3)
	assert.Error(t, err)
}

func TestCountReferences_SumsEveryReference(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM incidencias WHERE mantenimiento_id = \$1$`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))
	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM adjuntos WHERE mantenimiento_id = \$1$`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	n, err := testTable.CountReferences(context.Background(), db, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWriter_DelegatesToTable(t *testing.T) {
	db, mock := newMock(t)
	w := NewWriter(testTable, db)

	assert.Same(t, testTable, w.Schema())

	mock.ExpectExec(`^DELETE FROM mantenimientos WHERE id = \$1$`).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := w.Delete(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
