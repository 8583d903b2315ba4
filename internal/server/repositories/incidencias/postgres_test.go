package incidencias

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

var cols = []string{"id", "equipo_id", "etiqueta_activo", "mantenimiento_id", "severidad",
	"fecha_reporte", "descripcion", "reportada_por", "reportada_por_usuario"}

func TestList_LeftJoinReporter(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)LEFT JOIN usuarios u ON u\.id = i\.reportada_por\s+ORDER BY i\.fecha_reporte DESC\s+LIMIT 300$`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(2), int64(1), "LAB-001", int64(3), "alta", "2024-03-02 10:00:00", "fuga", int64(1), "admin").
			AddRow(int64(1), int64(1), "LAB-001", nil, "baja", "2024-03-01 10:00:00", nil, nil, nil))

	got, err := repo.List(context.Background(), models.IncidenciaFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "admin", *got[0].ReportadaPorUsuario)
	assert.Equal(t, int64(3), *got[0].MantenimientoID)
	assert.Nil(t, got[1].ReportadaPor)
	assert.Nil(t, got[1].ReportadaPorUsuario)
}

func TestList_Filters(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	eq, mant := int64(1), int64(3)
	desde := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`(?s)WHERE i\.equipo_id = \$1 AND i\.severidad = \$2 AND i\.mantenimiento_id = \$3 AND i\.fecha_reporte >= \$4\s+ORDER BY`).
		WithArgs(int64(1), "alta", int64(3), "2024-03-01 00:00:00").
		WillReturnRows(sqlmock.NewRows(cols))

	got, err := repo.List(context.Background(), models.IncidenciaFilter{
		EquipoID: &eq, Severidad: "alta", MantenimientoID: &mant, Desde: &desde,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM incidencias i`).WillReturnError(errors.New("boom"))

	_, err := repo.List(context.Background(), models.IncidenciaFilter{})
	assert.ErrorContains(t, err, "db error: boom")
}

func TestInsert_RequiresSeveridad(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	_, err := repo.Insert(context.Background(), models.Values{"equipo_id": int64(1), "fecha_reporte": "2024-03-01"})
	assert.ErrorIs(t, err, common.ErrorMissingFields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoReferencesBlockDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	n, err := repo.CountReferences(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
