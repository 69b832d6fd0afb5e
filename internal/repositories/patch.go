package repositories

import (
	"errors"
	"fmt"
	"strings"
)

var ErrColumnNotAllowed = errors.New("column not allowed in patch")

// Patch collects the assignments of a partial UPDATE. Column names never
// come from the caller: only the allow-list given to NewPatch can be set,
// and every value travels as a bind parameter.
type Patch struct {
	table   string
	allowed map[string]struct{}
	columns []string
	values  []interface{}
}

func NewPatch(table string, allowed ...string) *Patch {
	p := &Patch{
		table:   table,
		allowed: make(map[string]struct{}, len(allowed)),
	}
	for _, c := range allowed {
		p.allowed[c] = struct{}{}
	}
	return p
}

// Set assigns value to column. Setting the same column twice keeps the
// last value.
func (p *Patch) Set(column string, value interface{}) error {
	if _, ok := p.allowed[column]; !ok {
		return fmt.Errorf("%w: %s.%s", ErrColumnNotAllowed, p.table, column)
	}
	for i, c := range p.columns {
		if c == column {
			p.values[i] = value
			return nil
		}
	}
	p.columns = append(p.columns, column)
	p.values = append(p.values, value)
	return nil
}

// Assign sets column only when value is non-nil.
func Assign[T any](p *Patch, column string, value *T) error {
	if value == nil {
		return nil
	}
	return p.Set(column, *value)
}

func (p *Patch) Len() int { return len(p.columns) }

func (p *Patch) Columns() []string {
	out := make([]string, len(p.columns))
	copy(out, p.columns)
	return out
}

// Build renders "UPDATE … SET … WHERE id = ? RETURNING *" with the
// assignments in the order they were set, followed by updated_at.
func (p *Patch) Build(id int64, updatedAt int64) (string, []interface{}) {
	assignments := make([]string, 0, len(p.columns)+1)
	args := make([]interface{}, 0, len(p.values)+2)

	for i, c := range p.columns {
		assignments = append(assignments, quoteIdent(c)+" = ?")
		args = append(args, p.values[i])
	}
	assignments = append(assignments, quoteIdent("updated_at")+" = ?")
	args = append(args, updatedAt, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? RETURNING *",
		quoteIdent(p.table), strings.Join(assignments, ", "), quoteIdent("id"))
	return query, args
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
