package query

import (
	"fmt"
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Builder constructs SELECT queries for the catalog stores. The same
// builder renders Spanner statements with named parameters and Postgres
// queries with positional ones. Every method returns a new Builder.
type Builder struct {
	table   string
	columns []string
	where   []Condition
	order   string
	dir     Direction
}

// From starts a query against table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select appends columns to the projection. With none, the query selects *.
func (b *Builder) Select(columns ...string) *Builder {
	next := b.clone()
	next.columns = append(next.columns, columns...)
	return next
}

// Where adds a condition. Conditions are joined with AND.
func (b *Builder) Where(c Condition) *Builder {
	next := b.clone()
	next.where = append(next.where, c)
	return next
}

// OrderBy sets the single sort column.
func (b *Builder) OrderBy(column string, dir Direction) *Builder {
	next := b.clone()
	next.order, next.dir = column, dir
	return next
}

// Build renders a spanner.Statement with @pN parameters.
func (b *Builder) Build() spanner.Statement {
	sql, args := b.render(Named)

	params := make(map[string]interface{}, len(args))
	for i, v := range args {
		params[fmt.Sprintf("p%d", i)] = v
	}
	return spanner.Statement{SQL: sql, Params: params}
}

// BuildPositional renders the query with $N placeholders for pgx.
func (b *Builder) BuildPositional() (string, []interface{}) {
	return b.render(Positional)
}

func (b *Builder) render(ph Placeholder) (string, []interface{}) {
	projection := "*"
	if len(b.columns) > 0 {
		projection = strings.Join(b.columns, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", projection, b.table)

	var args []interface{}
	for i, c := range b.where {
		fragment, bound := c.SQL(len(args), ph)
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(fragment)
		args = append(args, bound...)
	}

	if b.order != "" {
		dir := "ASC"
		if b.dir == Desc {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, " ORDER BY %s %s", b.order, dir)
	}

	return sb.String(), args
}

func (b *Builder) clone() *Builder {
	next := *b
	next.columns = append([]string(nil), b.columns...)
	next.where = append([]Condition(nil), b.where...)
	return &next
}

// String returns the rendered Spanner statement for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nParams: %v", stmt.SQL, stmt.Params)
}
