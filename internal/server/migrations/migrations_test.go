package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// statement returns the first statement of the init migration starting with prefix.
func statement(t *testing.T, prefix string) string {
	t.Helper()

	b, err := Migrations.ReadFile("00001_init.sql")
	require.NoError(t, err)

	for _, stmt := range strings.Split(string(b), ";") {
		stmt = strings.TrimSpace(stmt)
		if i := strings.Index(stmt, prefix); i >= 0 {
			return stmt[i:]
		}
	}
	t.Fatalf("statement %q not found", prefix)
	return ""
}

func TestEquipos_DuplicateTagsAllowed(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	_, err = db.Exec(statement(t, "CREATE TABLE IF NOT EXISTS equipos"))
	require.NoError(t, err)
	_, err = db.Exec(statement(t, "CREATE INDEX IF NOT EXISTS idx_equipos_etiqueta"))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = db.Exec(`INSERT INTO equipos (etiqueta_activo, laboratorio_id) VALUES ('EQ-1', 1)`)
		require.NoError(t, err)
	}

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM equipos WHERE etiqueta_activo = 'EQ-1'`).Scan(&n))
	assert.Equal(t, 2, n)

	var estado string
	require.NoError(t, db.QueryRow(`SELECT estado FROM equipos LIMIT 1`).Scan(&estado))
	assert.Equal(t, "operativo", estado)
}
