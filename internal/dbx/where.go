package dbx

import (
	"fmt"
	"strings"
)

// Where accumulates AND-ed predicates together with their bound arguments.
// Predicates are written by the caller with a single %d verb that receives
// the next positional placeholder number, so values never end up in SQL text:
//
//	var w dbx.Where
//	w.Add("e.estado = $%d", "operativo")
//	query := "SELECT ... FROM equipos e " + w.Clause()
//	rows, err := db.QueryContext(ctx, query, w.Args()...)
type Where struct {
	conds []string
	args  []any
}

// Add appends a predicate bound to arg.
func (w *Where) Add(predicate string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(predicate, len(w.args)))
}

// AddInt64 appends the predicate only when v is non-nil.
func (w *Where) AddInt64(predicate string, v *int64) {
	if v != nil {
		w.Add(predicate, *v)
	}
}

// AddString appends the predicate only when v is not empty.
func (w *Where) AddString(predicate string, v string) {
	if v != "" {
		w.Add(predicate, v)
	}
}

// Len reports how many predicates were added.
func (w *Where) Len() int {
	return len(w.conds)
}

// Clause renders "WHERE p1 AND p2 ..." or an empty string.
func (w *Where) Clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}

// Args returns the bound arguments in placeholder order.
func (w *Where) Args() []any {
	return w.args
}
