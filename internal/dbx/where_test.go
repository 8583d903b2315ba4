package dbx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhere_Empty(t *testing.T) {
	var w Where
	assert.Equal(t, "", w.Clause())
	assert.Empty(t, w.Args())
	assert.Equal(t, 0, w.Len())
}

func TestWhere_NumbersPlaceholdersInOrder(t *testing.T) {
	var w Where
	lab := int64(3)
	w.AddInt64("e.laboratorio_id = $%d", &lab)
	w.AddInt64("e.id = $%d", nil)
	w.AddString("e.estado = $%d", "")
	w.AddString("e.tipo = $%d", "centrifuga")
	w.Add("e.marca = $%d", "Eppendorf")

	assert.Equal(t, "WHERE e.laboratorio_id = $1 AND e.tipo = $2 AND e.marca = $3", w.Clause())
	assert.Equal(t, []any{int64(3), "centrifuga", "Eppendorf"}, w.Args())
	assert.Equal(t, 3, w.Len())
}
