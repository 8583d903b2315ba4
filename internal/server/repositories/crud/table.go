// Package crud implements the write side shared by every entity table:
// insert with defaults, partial update over an allow-list, delete, existence
// checks and counting of blocking references.
//
// Column and table names come only from the Table definition, never from
// request data; all values are bound as positional parameters.
package crud

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/labmaint/internal/common"
	"github.com/dmitrijs2005/labmaint/internal/dbx"
	"github.com/dmitrijs2005/labmaint/internal/server/models"
)

// Reference is a foreign key column in another table that points at the
// table's id and blocks deletion while any row holds it.
type Reference struct {
	Table  string
	Column string
}

// Table describes a writable entity table.
type Table struct {
	Name string

	// Insertable lists the columns accepted by Insert, in statement order.
	Insertable []string
	// Updatable is the allow-list of columns accepted by Update.
	Updatable []string
	// Required columns must be present and non-null on Insert.
	Required []string
	// Defaults are applied on Insert to columns absent from the request.
	Defaults models.Values
	// References block Delete while rows point at the id.
	References []Reference
}

// Missing returns the required columns that are absent or null in v, in the
// order they were declared. Empty strings and zeros count as present.
func (t *Table) Missing(v models.Values) []string {
	var missing []string
	for _, col := range t.Required {
		if v[col] == nil {
			missing = append(missing, col)
		}
	}
	return missing
}

// Updates keeps only the allow-listed columns of v.
func (t *Table) Updates(v models.Values) models.Values {
	out := models.Values{}
	for _, col := range t.Updatable {
		if val, ok := v[col]; ok {
			out[col] = val
		}
	}
	return out
}

// Insert writes a new row and returns its id. Defaults fill absent columns;
// keys outside Insertable are ignored.
func (t *Table) Insert(ctx context.Context, db dbx.DBTX, v models.Values) (int64, error) {
	if missing := t.Missing(v); len(missing) > 0 {
		return 0, &common.MissingFieldsError{Fields: missing}
	}

	var cols, placeholders []string
	var args []any
	for _, col := range t.Insertable {
		val, ok := v[col]
		if !ok {
			val, ok = t.Defaults[col]
		}
		if !ok {
			continue
		}
		args = append(args, val)
		cols = append(cols, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.Name, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	var id int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

// Update sets the allow-listed columns present in v on row id and returns
// the number of affected rows. It fails with common.ErrorNoFields when v has
// no allow-listed column.
func (t *Table) Update(ctx context.Context, db dbx.DBTX, id int64, v models.Values) (int64, error) {
	var sets []string
	var args []any
	for _, col := range t.Updatable {
		val, ok := v[col]
		if !ok {
			continue
		}
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(sets) == 0 {
		return 0, common.ErrorNoFields
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", t.Name, strings.Join(sets, ", "), len(args))

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return rowsAffected(res)
}

// Delete removes row id and returns the number of affected rows.
func (t *Table) Delete(ctx context.Context, db dbx.DBTX, id int64) (int64, error) {
	res, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", t.Name), id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return rowsAffected(res)
}

// Exists reports whether row id is present.
func (t *Table) Exists(ctx context.Context, db dbx.DBTX, id int64) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, fmt.Sprintf("SELECT 1 FROM %s WHERE id = $1", t.Name), id).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

// CountReferences sums the rows of every Reference pointing at id.
func (t *Table) CountReferences(ctx context.Context, db dbx.DBTX, id int64) (int64, error) {
	var total int64
	for _, ref := range t.References {
		var n int64
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", ref.Table, ref.Column)
		if err := db.QueryRowContext(ctx, query, id).Scan(&n); err != nil {
			return 0, fmt.Errorf("db error: %w", err)
		}
		total += n
	}
	return total, nil
}

func rowsAffected(res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
