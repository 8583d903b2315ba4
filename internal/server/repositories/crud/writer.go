package crud

import (
	"context"

	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

// Store is the write side every entity repository exposes.
type Store interface {
	Schema() *Table
	Insert(ctx context.Context, v models.Values) (int64, error)
	Update(ctx context.Context, id int64, v models.Values) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	CountReferences(ctx context.Context, id int64) (int64, error)
}

var _ Store = (*Writer)(nil)

// Writer binds a Table to a database handle. Entity repositories embed it to
// get the write operations.
type Writer struct {
	table *Table
	db    dbx.DBTX
}

func NewWriter(table *Table, db dbx.DBTX) *Writer {
	return &Writer{table: table, db: db}
}

// Schema returns the table definition.
func (w *Writer) Schema() *Table {
	return w.table
}

func (w *Writer) Insert(ctx context.Context, v models.Values) (int64, error) {
	return w.table.Insert(ctx, w.db, v)
}

func (w *Writer) Update(ctx context.Context, id int64, v models.Values) (int64, error) {
	return w.table.Update(ctx, w.db, id, v)
}

func (w *Writer) Delete(ctx context.Context, id int64) (int64, error) {
	return w.table.Delete(ctx, w.db, id)
}

func (w *Writer) Exists(ctx context.Context, id int64) (bool, error) {
	return w.table.Exists(ctx, w.db, id)
}

func (w *Writer) CountReferences(ctx context.Context, id int64) (int64, error) {
	return w.table.CountReferences(ctx, w.db, id)
}
